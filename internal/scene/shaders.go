package scene

// GLSL 330 sources for the shader-driven objects. Attribute and matrix names follow
// raylib's defaults (vertexPosition, vertexTexCoord, mvp) so the renderer can bind
// them without extra plumbing.
const (
	planeVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
uniform mat4 mvp;
out vec2 fragTexCoord;
void main() {
  fragTexCoord = vertexTexCoord;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// planeFS tints a slow two-layer wave field by color and lifts it around
	// the pointer; iMouse.z is 1 while a button is held.
	planeFS = `#version 330
in vec2 fragTexCoord;
out vec4 finalColor;
uniform float iTime;
uniform vec3 iResolution;
uniform vec4 iMouse;
uniform vec3 color;
void main() {
  vec2 uv = gl_FragCoord.xy / max(iResolution.xy, vec2(1.0));
  float t = iTime * 0.15;
  float w = sin(uv.x * 6.0 + t) * 0.5 + sin(uv.y * 9.0 - t * 1.3) * 0.5;
  vec3 base = color + vec3(0.04, 0.05, 0.08) * (w * 0.5 + 0.5);
  vec2 m = iMouse.xy / max(iResolution.xy, vec2(1.0));
  float d = distance(uv * vec2(iResolution.x / max(iResolution.y, 1.0), 1.0),
                     m * vec2(iResolution.x / max(iResolution.y, 1.0), 1.0));
  float glow = exp(-d * 8.0) * (0.08 + 0.22 * iMouse.z);
  finalColor = vec4(base + vec3(glow), 1.0);
}
`
	gridFS = `#version 330
out vec4 finalColor;
uniform float iTime;
uniform vec3 iResolution;
void main() {
  vec2 uv = gl_FragCoord.xy / max(iResolution.xy, vec2(1.0));
  float pulse = 0.5 + 0.5 * sin(iTime + uv.x * 3.14159);
  finalColor = vec4(vec3(0.3 + 0.4 * pulse), 1.0);
}
`
)
