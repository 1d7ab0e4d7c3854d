package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// Color is a normalized RGB triple.
type Color struct {
	R, G, B float32
}

// ColorHex unpacks 0xRRGGBB into a Color.
func ColorHex(hex uint32) Color {
	var c Color
	c.SetHex(hex)
	return c
}

// SetHex replaces c with the packed 0xRRGGBB value.
func (c *Color) SetHex(hex uint32) {
	c.R = float32(hex>>16&0xff) / 255
	c.G = float32(hex>>8&0xff) / 255
	c.B = float32(hex&0xff) / 255
}

// Vec3 returns c as a vector, the form shaders take it in.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Material describes how a mesh is shaded. Implementations are pointer types so a
// single instance can be shared between meshes and edited in place.
type Material interface {
	material()
}

// Side selects which faces of a mesh are drawn.
type Side int

const (
	FrontSide Side = iota
	DoubleSide
)

// StandardMaterial is a lit roughness/metalness surface.
type StandardMaterial struct {
	Color     Color
	Emissive  Color
	Roughness float32
	Metalness float32
	Wireframe bool
	Side      Side
}

// PhysicalMaterial extends the standard surface with a reflectivity term.
type PhysicalMaterial struct {
	Color        Color
	Reflectivity float32
	Roughness    float32
	Metalness    float32
}

// BasicMaterial is unlit, used for helper gizmos.
type BasicMaterial struct {
	Color     Color
	Wireframe bool
}

// ShaderMaterial is a custom program compiled from vertex and fragment sources.
// An empty VertexShader selects the renderer's default vertex stage.
type ShaderMaterial struct {
	VertexShader   string
	FragmentShader string
	Uniforms       Uniforms
	Lights         bool
	DepthTest      bool
	DepthWrite     bool
	Side           Side
}

func (*StandardMaterial) material() {}
func (*PhysicalMaterial) material() {}
func (*BasicMaterial) material()    {}
func (*ShaderMaterial) material()   {}

// Uniforms maps uniform names to values: float32 or an mgl32.Vec2, Vec3 or Vec4.
type Uniforms map[string]any

// Float returns the named float uniform, or 0 when absent or of another type.
func (u Uniforms) Float(name string) float32 {
	v, _ := u[name].(float32)
	return v
}

// Vec3 returns the named vec3 uniform, or the zero vector.
func (u Uniforms) Vec3(name string) mgl32.Vec3 {
	v, _ := u[name].(mgl32.Vec3)
	return v
}

// Vec4 returns the named vec4 uniform, or the zero vector.
func (u Uniforms) Vec4(name string) mgl32.Vec4 {
	v, _ := u[name].(mgl32.Vec4)
	return v
}
