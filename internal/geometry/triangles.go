package geometry

import "github.com/go-gl/mathgl/mgl32"

// Rand is the random source used by the triangle generator.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// TriangleDepth is the base Z at which triangle meshes sit, just in front of the camera.
const TriangleDepth = 48

// ScatteredTriangle is one generated triangle and the Z offset of the mesh that carries it.
type ScatteredTriangle struct {
	*Triangle
	Z float32
}

// ScatterTriangles generates n triangles of the given size at random offsets in
// [-1,1]×[-0.75,1.25]. The middle vertex is pulled a little towards the camera
// for parallax. n <= 0 yields none; negative sizes yield inverted faces.
func ScatterTriangles(n int, size float32, rnd Rand) []ScatteredTriangle {
	if n <= 0 {
		return nil
	}
	out := make([]ScatteredTriangle, 0, n)
	for i := 0; i < n; i++ {
		x := rnd.Float32()*2 - 1
		y := rnd.Float32()*2 - 0.75
		a := mgl32.Vec3{x, y, 0}
		b := mgl32.Vec3{x + size, y - rnd.Float32()*0.07, rnd.Float32() * 0.3}
		c := mgl32.Vec3{x + size, y + size, 0}
		z := rnd.Float32()*0.08 - 0.06 + TriangleDepth
		out = append(out, ScatteredTriangle{Triangle: NewTriangle(a, b, c), Z: z})
	}
	return out
}
