// Package geometry holds the engine-neutral shape data the scene is built from:
// the camera view rectangle, plane and sphere descriptors, the random triangle
// batch and the grid lines. Nothing here touches the GPU.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewSize is the world-space rectangle visible at a given depth.
type ViewSize struct {
	Width  float32
	Height float32
}

// ViewSizeAtDepth returns the rectangle a perspective camera at cameraZ with the given
// vertical field of view (degrees) sees at depth. The height is always non-negative.
func ViewSizeAtDepth(fovDeg, cameraZ, depth, aspect float32) ViewSize {
	fov := fovDeg * math32.Pi / 180
	height := math32.Abs((cameraZ - depth) * math32.Tan(fov/2) * 2)
	return ViewSize{Width: height * aspect, Height: height}
}

// Plane is a flat rectangle in the XY plane, centered on the origin and facing +Z.
type Plane struct {
	Width  float32
	Height float32
}

func (p *Plane) FaceCount() int { return 2 }

// Sphere is a UV sphere with the given segment counts.
type Sphere struct {
	Radius         float32
	WidthSegments  int
	HeightSegments int
}

// SphereSegments is the fixed tessellation used for the scene sphere.
const SphereSegments = 128

// FaceCount matches a UV sphere whose pole rows are single triangles.
func (s *Sphere) FaceCount() int {
	if s.WidthSegments <= 0 || s.HeightSegments <= 0 {
		return 0
	}
	if s.HeightSegments == 1 {
		return s.WidthSegments
	}
	return s.WidthSegments * (2*s.HeightSegments - 2)
}

// Triangle is a single flat-shaded face.
type Triangle struct {
	Vertices [3]mgl32.Vec3
	Normal   mgl32.Vec3
}

func (t *Triangle) FaceCount() int { return 1 }

// NewTriangle builds a face from three vertices and computes its normal
// with counter-clockwise winding. Degenerate faces get a zero normal.
func NewTriangle(a, b, c mgl32.Vec3) *Triangle {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	return &Triangle{Vertices: [3]mgl32.Vec3{a, b, c}, Normal: n}
}

// Line is a single segment between two points.
type Line struct {
	Points [2]mgl32.Vec3
}

func (l *Line) FaceCount() int { return 0 }
