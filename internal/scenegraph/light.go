package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// Light is carried by an Object; the object's world position places it.
type Light interface {
	light()
}

type AmbientLight struct {
	Color     Color
	Intensity float32
}

// DirectionalLight shines from its object's position towards Target.
type DirectionalLight struct {
	Color     Color
	Intensity float32
	Target    mgl32.Vec3
}

// PointLight radiates in all directions. Distance 0 means unlimited range.
type PointLight struct {
	Color     Color
	Intensity float32
	Distance  float32
	Decay     float32
}

func (*AmbientLight) light()     {}
func (*DirectionalLight) light() {}
func (*PointLight) light()       {}
