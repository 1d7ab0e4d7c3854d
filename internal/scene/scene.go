// Package scene builds the scene objects from a SceneConfig and keeps them in
// step with it: the background plane, the sphere, the triangle field, the grid,
// the light rig, and the panel bindings that re-run those builders on edit.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/config"
	"backdrop/internal/geometry"
	"backdrop/internal/scenegraph"
)

const (
	planeLayer       = 0
	planeRenderOrder = 0
	// Sphere and triangles draw on their own layer, after the plane.
	overlayLayer       = 1
	overlayRenderOrder = 2
)

// Uniform names carried by the plane's shader material.
const (
	UniformTime       = "iTime"
	UniformResolution = "iResolution"
	UniformMouse      = "iMouse"
	UniformColor      = "color"
)

// Scene owns every object derived from the config. Objects are rebuilt
// wholesale from the config; they never write back into it.
type Scene struct {
	cfg *config.SceneConfig
	rnd geometry.Rand

	Graph  *scenegraph.Scene
	Camera *scenegraph.Camera

	Plane         *scenegraph.Object
	PlaneMaterial *scenegraph.ShaderMaterial

	Sphere         *scenegraph.Object
	SphereMaterial *scenegraph.PhysicalMaterial

	// TriangleMaterial is shared by every triangle, so material edits apply to the whole field.
	TriangleMaterial *scenegraph.StandardMaterial
	triangles        []*scenegraph.Object

	grid []*scenegraph.Object

	Lights *Rig
}

// New builds the plane, sphere and lights (plus the triangle field and grid when
// enabled) for a viewport of the given aspect ratio. rnd drives triangle placement.
func New(cfg *config.SceneConfig, aspect float32, rnd geometry.Rand) *Scene {
	s := &Scene{
		cfg:   cfg,
		rnd:   rnd,
		Graph: scenegraph.NewScene(),
	}
	cc := cfg.Camera
	s.Camera = scenegraph.NewPerspectiveCamera(cc.Fov, aspect, cc.Near, cc.Far)
	s.Camera.Position = mgl32.Vec3{0, 0, cc.Z}
	s.Camera.Layers.Enable(planeLayer)
	s.Camera.Layers.Enable(overlayLayer)

	s.TriangleMaterial = &scenegraph.StandardMaterial{Side: scenegraph.DoubleSide}
	s.applyTriangleMaterial()

	s.drawPlane()
	s.buildSphere()
	if cfg.Triangles.Enabled {
		s.RebuildTriangles()
	}
	s.Lights = BuildLights(cfg.Lights)
	s.Lights.Attach(s.Graph)
	if cfg.Grid.Visible {
		s.drawGrid()
	}
	return s
}

// Config returns the live config the scene reads from.
func (s *Scene) Config() *config.SceneConfig { return s.cfg }

// ViewSize is the world rectangle the camera sees at depth.
func (s *Scene) ViewSize(depth float32) geometry.ViewSize {
	return geometry.ViewSizeAtDepth(s.Camera.Fov, s.Camera.Position.Z(), depth, s.Camera.Aspect)
}

func (s *Scene) drawPlane() {
	view := s.ViewSize(0)
	s.PlaneMaterial = &scenegraph.ShaderMaterial{
		VertexShader:   planeVS,
		FragmentShader: planeFS,
		Uniforms: scenegraph.Uniforms{
			UniformTime:       float32(0),
			UniformResolution: mgl32.Vec3{},
			UniformColor:      mgl32.Vec3{0.05, 0.05, 0.05},
			UniformMouse:      mgl32.Vec4{},
		},
		Lights:     true,
		DepthTest:  true,
		DepthWrite: false,
		Side:       scenegraph.DoubleSide,
	}
	s.Plane = scenegraph.NewMesh("plane", &geometry.Plane{Width: view.Width, Height: view.Height}, s.PlaneMaterial)
	s.Plane.Layers.Set(planeLayer)
	s.Plane.RenderOrder = planeRenderOrder
	s.Plane.Visible = true
	s.Graph.Add(s.Plane)
}

// SetBackground pushes the configured background color into the plane's tint uniform.
func (s *Scene) SetBackground() {
	r, g, b := s.cfg.Plane.BackgroundColor.RGB()
	s.PlaneMaterial.Uniforms[UniformColor] = mgl32.Vec3{r, g, b}
}

func (s *Scene) buildSphere() {
	s.SphereMaterial = &scenegraph.PhysicalMaterial{}
	s.Sphere = scenegraph.NewMesh("sphere", s.sphereGeometry(), s.SphereMaterial)
	s.ApplySphereMaterial()
	s.Sphere.Layers.Set(overlayLayer)
	s.Sphere.RenderOrder = overlayRenderOrder
	s.Graph.Add(s.Sphere)
}

func (s *Scene) sphereGeometry() *geometry.Sphere {
	return &geometry.Sphere{
		Radius:         s.cfg.Sphere.Size,
		WidthSegments:  geometry.SphereSegments,
		HeightSegments: geometry.SphereSegments,
	}
}

// RebuildSphere replaces the sphere geometry after a size change.
func (s *Scene) RebuildSphere() {
	s.Sphere.Mesh.Geometry = s.sphereGeometry()
}

// ApplySphereMaterial copies color and reflectivity onto the sphere material.
func (s *Scene) ApplySphereMaterial() {
	s.SphereMaterial.Color.SetHex(uint32(s.cfg.Sphere.Color))
	s.SphereMaterial.Reflectivity = s.cfg.Sphere.Reflectivity
}

func (s *Scene) applyTriangleMaterial() {
	tc := s.cfg.Triangles
	m := s.TriangleMaterial
	m.Color.SetHex(uint32(tc.Color))
	m.Emissive.SetHex(uint32(tc.Emissive))
	m.Roughness = tc.Roughness
	m.Metalness = tc.Metalness
	m.Wireframe = tc.Wireframe
}

// RebuildTriangles discards every previously generated triangle and scatters
// the configured number of new ones onto the plane.
func (s *Scene) RebuildTriangles() {
	for _, t := range s.triangles {
		if p := t.Parent(); p != nil {
			p.Remove(t)
		}
	}
	s.triangles = s.triangles[:0]
	s.applyTriangleMaterial()

	tc := s.cfg.Triangles
	for _, st := range geometry.ScatterTriangles(tc.Number, tc.Size, s.rnd) {
		mesh := scenegraph.NewMesh("triangle", st.Triangle, s.TriangleMaterial)
		mesh.Position = mgl32.Vec3{0, 0, st.Z}
		mesh.Layers.Set(overlayLayer)
		mesh.RenderOrder = overlayRenderOrder
		s.triangles = append(s.triangles, mesh)
		s.Plane.Add(mesh)
	}
}

// Triangles returns the current triangle meshes.
func (s *Scene) Triangles() []*scenegraph.Object {
	out := make([]*scenegraph.Object, len(s.triangles))
	copy(out, s.triangles)
	return out
}

func (s *Scene) drawGrid() {
	mat := &scenegraph.ShaderMaterial{
		VertexShader:   planeVS,
		FragmentShader: gridFS,
		Uniforms: scenegraph.Uniforms{
			UniformTime:       float32(0),
			UniformResolution: mgl32.Vec3{},
		},
		DepthTest:  true,
		DepthWrite: true,
	}
	g := s.cfg.Grid
	lines := append(geometry.GridRows(g.Rows.Count, g.Rows.Size), geometry.GridColumns(g.Columns.Count, g.Columns.Size)...)
	for _, l := range lines {
		o := scenegraph.NewMesh("grid-line", l, mat)
		s.grid = append(s.grid, o)
		s.Graph.Add(o)
	}
}

// ShaderMaterials returns every shader material whose time and resolution
// uniforms the render loop keeps current.
func (s *Scene) ShaderMaterials() []*scenegraph.ShaderMaterial {
	out := []*scenegraph.ShaderMaterial{s.PlaneMaterial}
	if len(s.grid) > 0 {
		out = append(out, s.grid[0].Mesh.Material.(*scenegraph.ShaderMaterial))
	}
	return out
}

// Dispose detaches every object from the graph.
func (s *Scene) Dispose() {
	for _, c := range s.Graph.Root.Children() {
		s.Graph.Remove(c)
	}
	s.triangles = nil
	s.grid = nil
}
