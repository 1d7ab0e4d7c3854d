package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/scenegraph"
)

// Lit shader for physical materials: ambient, one directional and one point
// light, Blinn-Phong specular. Attribute and matrix names are raylib's defaults.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 dirToLight;
uniform vec3 dirColor;
uniform vec3 pointPos;
uniform vec3 pointColor;
uniform float pointDistance;
uniform float pointDecay;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 tint = colDiffuse.rgb;

  vec3 L = normalize(dirToLight);
  float NdotL = max(dot(N, L), 0.0);
  vec3 light = ambient + dirColor * NdotL;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * (NdotL > 0.0 ? 1.0 : 0.0);
  vec3 specular = dirColor * spec;

  vec3 toPoint = pointPos - fragPosition;
  float d = length(toPoint);
  float att = 1.0;
  if (pointDistance > 0.0) {
    att = pow(clamp(1.0 - d / pointDistance, 0.0, 1.0), pointDecay);
  }
  vec3 P = toPoint / max(d, 0.0001);
  float NdotP = max(dot(N, P), 0.0);
  light += pointColor * NdotP * att;
  specular += pointColor * att * pow(max(dot(N, normalize(P + V)), 0.0), specularPower) * (NdotP > 0.0 ? 1.0 : 0.0);

  finalColor = vec4(tint * light + specular * specularStrength, colDiffuse.a);
}
`
)

// Specular exponent range mapped from roughness 0 (sharp) to 1 (broad).
const (
	sharpSpecular = float32(128)
	broadSpecular = float32(4)
)

func vec3Uniform(shader rl.Shader, name string, v mgl32.Vec3) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		val := [3]float32{v[0], v[1], v[2]}
		rl.SetShaderValueV(shader, loc, val[:], rl.ShaderUniformVec3, 1)
	}
}

func floatUniform(shader rl.Shader, name string, v float32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

// setLitUniforms pushes this frame's lights and the material's surface terms.
func setLitUniforms(shader rl.Shader, ls scenegraph.LightSet, viewPos mgl32.Vec3, m *scenegraph.PhysicalMaterial) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vec3Uniform(shader, "viewPos", viewPos)
	vec3Uniform(shader, "ambient", ls.Ambient)
	vec3Uniform(shader, "dirToLight", ls.DirToLight)
	vec3Uniform(shader, "dirColor", ls.DirColor)
	vec3Uniform(shader, "pointPos", ls.PointPos)
	vec3Uniform(shader, "pointColor", ls.PointColor)
	floatUniform(shader, "pointDistance", ls.PointDistance)
	floatUniform(shader, "pointDecay", ls.PointDecay)
	power := sharpSpecular + (broadSpecular-sharpSpecular)*math32.Max(0, math32.Min(1, m.Roughness))
	floatUniform(shader, "specularPower", power)
	floatUniform(shader, "specularStrength", m.Reflectivity)
}
