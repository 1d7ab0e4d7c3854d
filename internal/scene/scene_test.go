package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/config"
	"backdrop/internal/geometry"
	"backdrop/internal/logger"
	"backdrop/internal/panel"
	"backdrop/internal/scenegraph"
)

func newTestScene(t *testing.T) (*Scene, *config.SceneConfig) {
	t.Helper()
	cfg := config.Default()
	s := New(&cfg, 16.0/9, rand.New(rand.NewSource(3)))
	return s, &cfg
}

func TestDefaultSceneContents(t *testing.T) {
	s, _ := newTestScene(t)
	if !s.Graph.Contains(s.Plane) || !s.Graph.Contains(s.Sphere) {
		t.Fatal("plane and sphere must be in the scene graph")
	}
	if lights := s.Graph.Lights(); len(lights) != 3 {
		t.Fatalf("lights=%d; want 3", len(lights))
	}
	if !s.Graph.Contains(s.Lights.Helper) {
		t.Fatal("point light helper must be attached")
	}
	if !s.Sphere.Layers.Has(1) || s.Sphere.Layers.Has(0) || s.Sphere.RenderOrder != 2 {
		t.Fatalf("sphere layers=%b order=%d; want layer 1 order 2", s.Sphere.Layers, s.Sphere.RenderOrder)
	}
	if !s.Plane.Layers.Has(0) || s.Plane.Layers.Has(1) || s.Plane.RenderOrder != 0 {
		t.Fatalf("plane layers=%b order=%d; want layer 0 order 0", s.Plane.Layers, s.Plane.RenderOrder)
	}
	if !s.Camera.Layers.Has(0) || !s.Camera.Layers.Has(1) {
		t.Fatal("camera should see layers 0 and 1")
	}
	if got := len(s.Triangles()); got != 0 {
		t.Fatalf("triangles=%d; the field is not built until enabled or edited", got)
	}
	sphere := s.Sphere.Mesh.Geometry.(*geometry.Sphere)
	if sphere.Radius != 2 || sphere.WidthSegments != 128 || sphere.HeightSegments != 128 {
		t.Fatalf("sphere geometry %+v", sphere)
	}
	if s.PlaneMaterial.DepthWrite || !s.PlaneMaterial.DepthTest {
		t.Fatal("plane material should depth test without writing depth")
	}
}

func TestPlaneFillsView(t *testing.T) {
	s, _ := newTestScene(t)
	p := s.Plane.Mesh.Geometry.(*geometry.Plane)
	wantH := 2 * 50 * math.Tan(45*math.Pi/180/2)
	if math.Abs(float64(p.Height)-wantH) > 1e-3 {
		t.Fatalf("plane height=%v; want %v", p.Height, wantH)
	}
	if math.Abs(float64(p.Width)-wantH*16/9) > 1e-3 {
		t.Fatalf("plane width=%v; want %v", p.Width, wantH*16/9)
	}
}

func TestRebuildTrianglesCount(t *testing.T) {
	s, cfg := newTestScene(t)
	for _, n := range []int{30, 5, 100} {
		cfg.Triangles.Number = n
		s.RebuildTriangles()
		tris := s.Triangles()
		if len(tris) != n {
			t.Fatalf("triangles=%d; want %d", len(tris), n)
		}
		if got := len(s.Plane.Children()); got != n {
			t.Fatalf("plane children=%d; want %d (no stale meshes)", got, n)
		}
		for _, tr := range tris {
			if tr.Mesh.Geometry.FaceCount() != 1 {
				t.Fatal("each triangle must have a single face")
			}
			if tr.Mesh.Material != s.TriangleMaterial {
				t.Fatal("triangles share one material")
			}
			if !tr.Layers.Has(1) || tr.RenderOrder != 2 || tr.Parent() != s.Plane {
				t.Fatalf("triangle placement layers=%b order=%d", tr.Layers, tr.RenderOrder)
			}
		}
	}
}

func TestRebuildTrianglesZeroLeavesNothing(t *testing.T) {
	s, cfg := newTestScene(t)
	s.RebuildTriangles()
	old := s.Triangles()
	cfg.Triangles.Number = 0
	s.RebuildTriangles()
	if len(s.Triangles()) != 0 || len(s.Plane.Children()) != 0 {
		t.Fatal("N=0 should leave no triangles on the plane")
	}
	for _, o := range old {
		if o.Parent() != nil {
			t.Fatal("old triangle still attached")
		}
	}
	cfg.Triangles.Number = -4
	s.RebuildTriangles()
	if len(s.Triangles()) != 0 {
		t.Fatal("negative count should yield no triangles")
	}
}

func TestTrianglesEnabledAtStartup(t *testing.T) {
	cfg := config.Default()
	cfg.Triangles.Enabled = true
	s := New(&cfg, 1, rand.New(rand.NewSource(1)))
	if len(s.Triangles()) != 30 {
		t.Fatalf("triangles=%d; want 30", len(s.Triangles()))
	}
}

func TestGridVisible(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Visible = true
	s := New(&cfg, 1, rand.New(rand.NewSource(1)))
	if len(s.grid) != 15 {
		t.Fatalf("grid lines=%d; want 15", len(s.grid))
	}
	if len(s.ShaderMaterials()) != 2 {
		t.Fatal("grid material should be tracked for uniform updates")
	}
}

func TestDispose(t *testing.T) {
	s, _ := newTestScene(t)
	s.Dispose()
	if len(s.Graph.Root.Children()) != 0 {
		t.Fatal("Dispose should detach everything")
	}
}

func bindTestPanel(t *testing.T) (*Scene, *config.SceneConfig, *panel.Panel, *logger.Logger) {
	t.Helper()
	s, cfg := newTestScene(t)
	p := panel.New(panel.DefaultTheme())
	log := logger.New("")
	Bind(p, s, log)
	return s, cfg, p, log
}

func control(t *testing.T, p *panel.Panel, folder, label string) *panel.Control {
	t.Helper()
	for _, f := range p.Folders() {
		if f.Name != folder {
			continue
		}
		if c := f.Control(label); c != nil {
			return c
		}
	}
	t.Fatalf("no control %s/%s", folder, label)
	return nil
}

func TestBindingsFolders(t *testing.T) {
	_, _, p, _ := bindTestPanel(t)
	want := []string{"Background", "Triangles", "Sphere", "Directional Light", "Ambient Light", "Point Light"}
	got := p.Folders()
	if len(got) != len(want) {
		t.Fatalf("folders=%d; want %d", len(got), len(want))
	}
	for i, f := range got {
		if f.Name != want[i] {
			t.Fatalf("folder %d = %q; want %q", i, f.Name, want[i])
		}
	}
	if n := len(got[1].Controls()); n != 7 {
		t.Fatalf("triangle controls=%d; want 7", n)
	}
}

func TestBackgroundBinding(t *testing.T) {
	s, cfg, p, log := bindTestPanel(t)
	control(t, p, "Background", "Color").SetColor(0xff0000)
	if cfg.Plane.BackgroundColor != 0xff0000 {
		t.Fatal("config not written")
	}
	if got := s.PlaneMaterial.Uniforms.Vec3(UniformColor); got != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("color uniform=%v; want (1,0,0)", got)
	}
	lines := log.Lines()
	if len(lines) != 1 {
		t.Fatalf("log lines=%d; want 1", len(lines))
	}
}

func TestTriangleBindingsRebuild(t *testing.T) {
	s, cfg, p, _ := bindTestPanel(t)
	control(t, p, "Triangles", "Number of triangles").SetNumber(12)
	if cfg.Triangles.Number != 12 || len(s.Triangles()) != 12 {
		t.Fatalf("number=%d triangles=%d; want 12", cfg.Triangles.Number, len(s.Triangles()))
	}
	control(t, p, "Triangles", "Color").SetColor(0x00ff00)
	if s.TriangleMaterial.Color != (scenegraph.Color{G: 1}) {
		t.Fatalf("material color=%+v", s.TriangleMaterial.Color)
	}
	control(t, p, "Triangles", "Roughness").SetNumber(0.37)
	if math.Abs(float64(s.TriangleMaterial.Roughness)-0.4) > 1e-6 {
		t.Fatalf("roughness=%v; want 0.4", s.TriangleMaterial.Roughness)
	}
	control(t, p, "Triangles", "wireframe").SetBool(true)
	if !s.TriangleMaterial.Wireframe {
		t.Fatal("wireframe should reach the shared material")
	}
	if len(s.Triangles()) != 12 {
		t.Fatal("every edit rebuilds with the configured count")
	}
}

func TestLightBindingsTouchOnlyTheirLight(t *testing.T) {
	s, _, p, _ := bindTestPanel(t)
	rig := s.Lights
	before := struct {
		amb, dir, pt scenegraph.Color
		ai, di, pi   float32
	}{rig.AmbientLight.Color, rig.DirectionalLight.Color, rig.PointLight.Color,
		rig.AmbientLight.Intensity, rig.DirectionalLight.Intensity, rig.PointLight.Intensity}

	control(t, p, "Directional Light", "Intensity").SetNumber(42)
	if rig.DirectionalLight.Intensity != 42 {
		t.Fatalf("directional intensity=%v", rig.DirectionalLight.Intensity)
	}
	if rig.AmbientLight.Intensity != before.ai || rig.PointLight.Intensity != before.pi {
		t.Fatal("other lights' intensity changed")
	}

	control(t, p, "Ambient Light", "Color").SetColor(0x0000ff)
	if rig.AmbientLight.Color != (scenegraph.Color{B: 1}) {
		t.Fatalf("ambient color=%+v", rig.AmbientLight.Color)
	}
	if rig.DirectionalLight.Color != before.dir || rig.PointLight.Color != before.pt {
		t.Fatal("other lights' color changed")
	}

	control(t, p, "Point Light", "Color").SetColor(0xff0000)
	if rig.PointLight.Color != (scenegraph.Color{R: 1}) || rig.helperMaterial.Color != rig.PointLight.Color {
		t.Fatal("point color and helper should follow")
	}
	if rig.AmbientLight.Color != (scenegraph.Color{B: 1}) || rig.DirectionalLight.Color != before.dir {
		t.Fatal("point color edit leaked to other lights")
	}

	control(t, p, "Point Light", "Decay").SetNumber(3)
	control(t, p, "Point Light", "Distance").SetNumber(25)
	if rig.PointLight.Decay != 3 || rig.PointLight.Distance != 25 {
		t.Fatalf("point light %+v", rig.PointLight)
	}
	if rig.AmbientLight.Intensity != before.ai {
		t.Fatal("ambient changed by point edits")
	}
}

func TestSphereBindings(t *testing.T) {
	s, _, p, _ := bindTestPanel(t)
	control(t, p, "Sphere", "Size").SetNumber(5)
	if r := s.Sphere.Mesh.Geometry.(*geometry.Sphere).Radius; r != 5 {
		t.Fatalf("radius=%v; want 5", r)
	}
	control(t, p, "Sphere", "Reflectivity").SetNumber(0.52)
	if math.Abs(float64(s.SphereMaterial.Reflectivity)-0.5) > 1e-6 {
		t.Fatalf("reflectivity=%v; want 0.5", s.SphereMaterial.Reflectivity)
	}
}

func TestLightsIgnoreEnableFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Lights.Point.Enable = false
	cfg.Lights.Ambient.Enable = false
	s := New(&cfg, 1, rand.New(rand.NewSource(1)))
	if len(s.Graph.Lights()) != 3 {
		t.Fatal("enable flags are not consulted; all lights are attached")
	}
}
