package geometry

import "github.com/go-gl/mathgl/mgl32"

const (
	gridRowHalfWidth    = 1.2
	gridColumnHalfHeight = 0.5
)

// GridRows returns count horizontal lines spanning x in [-1.2, 1.2].
// Row i sits at size - size*i/2, so rows step down by half their size.
func GridRows(count int, size float32) []*Line {
	if count <= 0 {
		return nil
	}
	out := make([]*Line, 0, count)
	for i := 0; i < count; i++ {
		y := size - size*float32(i)/2
		out = append(out, &Line{Points: [2]mgl32.Vec3{{-gridRowHalfWidth, y, 0}, {gridRowHalfWidth, y, 0}}})
	}
	return out
}

// GridColumns returns count vertical lines spanning y in [-0.5, 0.5],
// starting at x = -(1-size) and stepping by size.
func GridColumns(count int, size float32) []*Line {
	if count <= 0 {
		return nil
	}
	out := make([]*Line, 0, count)
	for j := 0; j < count; j++ {
		x := -(1 - size) + size*float32(j)
		out = append(out, &Line{Points: [2]mgl32.Vec3{{x, gridColumnHalfHeight, 0}, {x, -gridColumnHalfHeight, 0}}})
	}
	return out
}
