package scene

import (
	"backdrop/internal/logger"
	"backdrop/internal/panel"
)

// Bind registers a control on p for every tunable config field. Each edit writes
// the config and then runs its update action immediately; edits are logged to log.
func Bind(p *panel.Panel, s *Scene, log *logger.Logger) {
	cfg := s.cfg
	on := func(c *panel.Control, action func()) {
		c.OnChange(func() {
			action()
			log.Logf("panel: %s/%s = %s", c.Folder().Name, c.Label(), c.ValueText())
		})
	}

	background := p.AddFolder("Background")
	on(panel.AddColor(background, "Color", &cfg.Plane.BackgroundColor), s.SetBackground)

	tri := p.AddFolder("Triangles")
	tc := &cfg.Triangles
	on(panel.AddNumber(tri, "Triangle Size", &tc.Size, 0, 100), s.RebuildTriangles)
	on(panel.AddNumber(tri, "Number of triangles", &tc.Number, 0, 100), s.RebuildTriangles)
	on(panel.AddColor(tri, "Color", &tc.Color), s.RebuildTriangles)
	on(panel.AddColor(tri, "Emissive Color", &tc.Emissive), s.RebuildTriangles)
	on(panel.AddBool(tri, "wireframe", &tc.Wireframe), s.RebuildTriangles)
	on(panel.AddNumber(tri, "Roughness", &tc.Roughness, 0, 1).Step(0.1), s.RebuildTriangles)
	on(panel.AddNumber(tri, "metalness", &tc.Metalness, 0, 1).Step(0.1), s.RebuildTriangles)

	sphere := p.AddFolder("Sphere")
	sc := &cfg.Sphere
	on(panel.AddNumber(sphere, "Size", &sc.Size, 0, 20), s.RebuildSphere)
	on(panel.AddColor(sphere, "Color", &sc.Color), s.ApplySphereMaterial)
	on(panel.AddNumber(sphere, "Reflectivity", &sc.Reflectivity, 0, 1).Step(0.05), s.ApplySphereMaterial)

	rig := s.Lights
	lc := &cfg.Lights

	dir := p.AddFolder("Directional Light")
	on(panel.AddColor(dir, "Color", &lc.Directional.Color), func() {
		rig.DirectionalLight.Color.SetHex(uint32(lc.Directional.Color))
	})
	on(panel.AddNumber(dir, "Intensity", &lc.Directional.Intensity, 0, 100), func() {
		rig.DirectionalLight.Intensity = lc.Directional.Intensity
	})

	amb := p.AddFolder("Ambient Light")
	on(panel.AddColor(amb, "Color", &lc.Ambient.Color), func() {
		rig.AmbientLight.Color.SetHex(uint32(lc.Ambient.Color))
	})
	on(panel.AddNumber(amb, "Intensity", &lc.Ambient.Intensity, 0, 100), func() {
		rig.AmbientLight.Intensity = lc.Ambient.Intensity
	})

	point := p.AddFolder("Point Light")
	on(panel.AddColor(point, "Color", &lc.Point.Color), func() {
		rig.PointLight.Color.SetHex(uint32(lc.Point.Color))
		rig.SyncHelper()
	})
	on(panel.AddNumber(point, "Intensity", &lc.Point.Intensity, 0, 100), func() {
		rig.PointLight.Intensity = lc.Point.Intensity
	})
	on(panel.AddNumber(point, "Decay", &lc.Point.Decay, 0, 100), func() {
		rig.PointLight.Decay = lc.Point.Decay
	})
	on(panel.AddNumber(point, "Distance", &lc.Point.Distance, 0, 100), func() {
		rig.PointLight.Distance = lc.Point.Distance
	})
}
