package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/config"
	"backdrop/internal/geometry"
	"backdrop/internal/scenegraph"
)

// lightZ places the ambient and point lights just behind the triangle field.
const lightZ = 47.8

// helperRadius is the size of the point light's wireframe gizmo.
const helperRadius = 1

// Rig is the fixed set of lights: one ambient, one directional, one point light
// and the point light's helper gizmo. Lights are never added or removed after
// BuildLights; only their properties change.
type Rig struct {
	Ambient     *scenegraph.Object
	Directional *scenegraph.Object
	Point       *scenegraph.Object
	Helper      *scenegraph.Object

	AmbientLight     *scenegraph.AmbientLight
	DirectionalLight *scenegraph.DirectionalLight
	PointLight       *scenegraph.PointLight
	helperMaterial   *scenegraph.BasicMaterial
}

// BuildLights creates the rig from cfg. The Enable flags are not consulted:
// all three lights and the helper are always built.
func BuildLights(cfg config.LightsConfig) *Rig {
	r := &Rig{
		AmbientLight: &scenegraph.AmbientLight{
			Color:     scenegraph.ColorHex(uint32(cfg.Ambient.Color)),
			Intensity: cfg.Ambient.Intensity,
		},
		DirectionalLight: &scenegraph.DirectionalLight{
			Color:     scenegraph.ColorHex(uint32(cfg.Directional.Color)),
			Intensity: cfg.Directional.Intensity,
		},
		PointLight: &scenegraph.PointLight{
			Color:     scenegraph.ColorHex(uint32(cfg.Point.Color)),
			Intensity: cfg.Point.Intensity,
			Distance:  cfg.Point.Distance,
			Decay:     cfg.Point.Decay,
		},
	}

	r.Ambient = scenegraph.NewObject("ambient-light")
	r.Ambient.Light = r.AmbientLight
	r.Ambient.Position = mgl32.Vec3{0, 0, lightZ}

	r.Directional = scenegraph.NewObject("directional-light")
	r.Directional.Light = r.DirectionalLight
	r.Directional.Position = mgl32.Vec3{0, 1, 0}

	r.Point = scenegraph.NewObject("point-light")
	r.Point.Light = r.PointLight
	r.Point.Position = mgl32.Vec3{0, 0, lightZ}

	r.helperMaterial = &scenegraph.BasicMaterial{Color: r.PointLight.Color, Wireframe: true}
	r.Helper = scenegraph.NewMesh("point-light-helper",
		&geometry.Sphere{Radius: helperRadius, WidthSegments: 4, HeightSegments: 2},
		r.helperMaterial)
	return r
}

// Attach adds the lights to s. The helper follows the point light's position.
func (r *Rig) Attach(s *scenegraph.Scene) {
	s.Add(r.Ambient)
	s.Add(r.Directional)
	s.Add(r.Point)
	r.Point.Add(r.Helper)
}

// SyncHelper repaints the helper gizmo in the point light's current color.
func (r *Rig) SyncHelper() {
	r.helperMaterial.Color = r.PointLight.Color
}
