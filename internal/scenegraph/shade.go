package scenegraph

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightSet is the per-frame summary of a scene's lights in world space.
// Colors are premultiplied by intensity.
type LightSet struct {
	Ambient mgl32.Vec3

	// DirToLight is the unit vector from a surface towards the directional light.
	DirToLight mgl32.Vec3
	DirColor   mgl32.Vec3

	PointPos      mgl32.Vec3
	PointColor    mgl32.Vec3
	PointDistance float32
	PointDecay    float32
}

// CollectLights sums ambient lights and keeps the last directional and point
// light found in traversal order.
func CollectLights(s *Scene) LightSet {
	var ls LightSet
	for _, o := range s.Lights() {
		switch l := o.Light.(type) {
		case *AmbientLight:
			ls.Ambient = ls.Ambient.Add(l.Color.Vec3().Mul(l.Intensity))
		case *DirectionalLight:
			dir := o.WorldPosition().Sub(l.Target)
			if dir.Len() > 0 {
				dir = dir.Normalize()
			}
			ls.DirToLight = dir
			ls.DirColor = l.Color.Vec3().Mul(l.Intensity)
		case *PointLight:
			ls.PointPos = o.WorldPosition()
			ls.PointColor = l.Color.Vec3().Mul(l.Intensity)
			ls.PointDistance = l.Distance
			ls.PointDecay = l.Decay
		}
	}
	return ls
}

// PointAttenuation is the point light's falloff at distance d: a smooth cutoff
// at PointDistance, or none when PointDistance is 0.
func (ls LightSet) PointAttenuation(d float32) float32 {
	if ls.PointDistance <= 0 {
		return 1
	}
	f := 1 - d/ls.PointDistance
	if f <= 0 {
		return 0
	}
	return math32.Pow(f, ls.PointDecay)
}

// Shade returns the flat-shaded color of a surface at pos with unit normal n.
// Back faces are lit as if facing the light. The result is clamped to [0,1].
func (ls LightSet) Shade(base, emissive Color, pos, n mgl32.Vec3) Color {
	light := ls.Ambient
	light = light.Add(ls.DirColor.Mul(math32.Abs(n.Dot(ls.DirToLight))))
	if toPoint := ls.PointPos.Sub(pos); toPoint.Len() > 0 {
		d := toPoint.Len()
		lambert := math32.Abs(n.Dot(toPoint.Mul(1 / d)))
		light = light.Add(ls.PointColor.Mul(lambert * ls.PointAttenuation(d)))
	}
	b, e := base.Vec3(), emissive.Vec3()
	return Color{
		R: clamp01(b[0]*light[0] + e[0]),
		G: clamp01(b[1]*light[1] + e[1]),
		B: clamp01(b[2]*light[2] + e[2]),
	}
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
