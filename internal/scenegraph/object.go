// Package scenegraph is the engine-neutral scene the application builds and the
// renderer walks once per frame: objects with layers and render order, their
// materials and uniforms, lights, and a perspective camera.
package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is any shape a mesh can carry (see package geometry).
type Geometry interface {
	FaceCount() int
}

// Mesh pairs geometry with the material it is drawn with.
type Mesh struct {
	Geometry Geometry
	Material Material
}

// Object is a node in the scene graph. It may carry a mesh, a light, or neither (a group).
type Object struct {
	Name        string
	Position    mgl32.Vec3
	Layers      Layers
	RenderOrder int
	Visible     bool
	Mesh        *Mesh
	Light       Light

	parent   *Object
	children []*Object
}

// NewObject returns a visible group object on layer 0.
func NewObject(name string) *Object {
	return &Object{Name: name, Layers: LayerMask(0), Visible: true}
}

// NewMesh returns a visible mesh object on layer 0.
func NewMesh(name string, g Geometry, m Material) *Object {
	o := NewObject(name)
	o.Mesh = &Mesh{Geometry: g, Material: m}
	return o
}

// Add attaches child to o, detaching it from any previous parent first.
func (o *Object) Add(child *Object) {
	if child == nil || child == o {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = o
	o.children = append(o.children, child)
}

// Remove detaches child from o. It is a no-op if child is not attached to o.
func (o *Object) Remove(child *Object) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the object o is attached to, or nil.
func (o *Object) Parent() *Object {
	return o.parent
}

// Children returns a copy of o's direct children.
func (o *Object) Children() []*Object {
	out := make([]*Object, len(o.children))
	copy(out, o.children)
	return out
}

// WorldPosition sums the positions of o and its ancestors. Objects carry no rotation or scale.
func (o *Object) WorldPosition() mgl32.Vec3 {
	p := o.Position
	for a := o.parent; a != nil; a = a.parent {
		p = p.Add(a.Position)
	}
	return p
}

// Traverse calls fn for o and every descendant, depth first, parents before children.
func (o *Object) Traverse(fn func(*Object)) {
	fn(o)
	for _, c := range o.children {
		c.Traverse(fn)
	}
}
