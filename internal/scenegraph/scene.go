package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the root of the graph.
type Scene struct {
	Root *Object
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{Root: NewObject("scene")}
}

// Add attaches o to the scene root.
func (s *Scene) Add(o *Object) { s.Root.Add(o) }

// Remove detaches o from the scene root.
func (s *Scene) Remove(o *Object) { s.Root.Remove(o) }

// Contains reports whether o is reachable from the root.
func (s *Scene) Contains(o *Object) bool {
	for a := o; a != nil; a = a.parent {
		if a == s.Root {
			return true
		}
	}
	return false
}

// Traverse visits every object below the root (the root itself excluded).
func (s *Scene) Traverse(fn func(*Object)) {
	for _, c := range s.Root.children {
		c.Traverse(fn)
	}
}

// Lights returns every light-carrying object in traversal order.
func (s *Scene) Lights() []*Object {
	var out []*Object
	s.Traverse(func(o *Object) {
		if o.Light != nil {
			out = append(out, o)
		}
	})
	return out
}

// Camera is a perspective camera. Fov is the vertical field of view in degrees.
type Camera struct {
	Fov        float32
	Aspect     float32
	Near       float32
	Far        float32
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	Up         mgl32.Vec3
	Layers     Layers
	Projection mgl32.Mat4
}

// NewPerspectiveCamera returns a camera looking down -Z from the origin, seeing layer 0.
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Layers: LayerMask(0),
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes Projection from Fov, Aspect, Near and Far.
// Call it after changing any of them.
func (c *Camera) UpdateProjectionMatrix() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Sees reports whether o is on a layer this camera renders.
func (c *Camera) Sees(o *Object) bool {
	return c.Layers.Test(o.Layers)
}
