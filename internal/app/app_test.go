package app

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/config"
	"backdrop/internal/logger"
	"backdrop/internal/panel"
	"backdrop/internal/platform"
	"backdrop/internal/scene"
	"backdrop/internal/scenegraph"
)

type fakeHost struct {
	w, h       int
	now        float64
	queued     [][]platform.Event
	closeAfter int
	polls      int
}

func (h *fakeHost) Poll() []platform.Event {
	h.polls++
	if len(h.queued) == 0 {
		return nil
	}
	ev := h.queued[0]
	h.queued = h.queued[1:]
	return ev
}

func (h *fakeHost) ContainerSize() (int, int) { return h.w, h.h }
func (h *fakeHost) Now() float64              { return h.now }
func (h *fakeHost) ShouldClose() bool         { return h.closeAfter > 0 && h.polls >= h.closeAfter }

type renderCall struct {
	scene  *scenegraph.Scene
	camera *scenegraph.Camera
	drawn  []*scenegraph.Object
}

type fakeRenderer struct {
	w, h     int
	calls    []renderCall
	closed   int
	onRender func()
}

func (r *fakeRenderer) Render(s *scenegraph.Scene, cam *scenegraph.Camera) {
	r.calls = append(r.calls, renderCall{scene: s, camera: cam, drawn: scenegraph.DrawList(s, cam)})
	if r.onRender != nil {
		r.onRender()
	}
}

func (r *fakeRenderer) SetSize(w, h int) { r.w, r.h = w, h }
func (r *fakeRenderer) Size() (int, int) { return r.w, r.h }
func (r *fakeRenderer) Close()           { r.closed++ }

func newTestApp(t *testing.T, host *fakeHost) (*App, *fakeRenderer, *config.SceneConfig) {
	t.Helper()
	cfg := config.Default()
	r := &fakeRenderer{}
	a := New(Options{
		Config:   &cfg,
		Host:     host,
		Renderer: r,
		Rand:     rand.New(rand.NewSource(1)),
		Log:      logger.New(""),
		Theme:    panel.DefaultTheme(),
	})
	return a, r, &cfg
}

func TestDefaultSceneAfterOneFrame(t *testing.T) {
	host := &fakeHost{w: 1280, h: 720, now: 10}
	a, r, _ := newTestApp(t, host)
	a.Frame()
	if len(r.calls) != 1 {
		t.Fatalf("render calls=%d; want 1", len(r.calls))
	}
	call := r.calls[0]
	if call.scene != a.Scene.Graph || call.camera != a.Scene.Camera {
		t.Fatal("render should receive the app's scene and camera")
	}
	if len(a.Scene.Graph.Lights()) != 3 {
		t.Fatalf("lights=%d; want 3", len(a.Scene.Graph.Lights()))
	}
	var sawPlane, sawSphere bool
	for i, o := range call.drawn {
		switch o {
		case a.Scene.Plane:
			sawPlane = true
			if i != 0 {
				t.Fatal("plane (render order 0) should draw first")
			}
		case a.Scene.Sphere:
			sawSphere = true
		}
	}
	if !sawPlane || !sawSphere {
		t.Fatalf("plane drawn=%v sphere drawn=%v", sawPlane, sawSphere)
	}
	if !a.Scene.Sphere.Layers.Has(1) || a.Scene.Sphere.RenderOrder != 2 {
		t.Fatal("sphere should be on layer 1 with render order 2")
	}
	if !a.Scene.Plane.Layers.Has(0) || a.Scene.Plane.RenderOrder != 0 {
		t.Fatal("plane should be on layer 0 with render order 0")
	}
	if r.w != 1280 || r.h != 720 {
		t.Fatalf("renderer size=%dx%d; want container size", r.w, r.h)
	}
}

func TestFrameWritesUniforms(t *testing.T) {
	host := &fakeHost{w: 800, h: 600, now: 100}
	a, _, _ := newTestApp(t, host)
	host.now = 102.5
	a.HandleEvent(platform.Event{Kind: platform.PointerMove, X: 30, Y: 50})
	a.HandleEvent(platform.Event{Kind: platform.PointerDown, X: 30, Y: 50})
	a.Frame()

	u := a.Scene.PlaneMaterial.Uniforms
	if u.Float(scene.UniformTime) != 2.5 {
		t.Fatalf("iTime=%v; want 2.5", u.Float(scene.UniformTime))
	}
	if u.Vec3(scene.UniformResolution) != (mgl32.Vec3{800, 600, 1}) {
		t.Fatalf("iResolution=%v", u.Vec3(scene.UniformResolution))
	}
	if u.Vec4(scene.UniformMouse) != (mgl32.Vec4{30, 550, 1, 0}) {
		t.Fatalf("iMouse=%v; want (30, 550, 1, 0)", u.Vec4(scene.UniformMouse))
	}

	a.HandleEvent(platform.Event{Kind: platform.PointerUp, X: 30, Y: 50})
	a.Frame()
	if a.Pointer().Z() != 0 {
		t.Fatal("pointer up should clear the pressed flag")
	}
	if st := a.Stats(); st.Frames != 2 || st.Elapsed != 2.5 {
		t.Fatalf("stats=%+v", st)
	}
}

func TestResize(t *testing.T) {
	host := &fakeHost{w: 800, h: 600}
	a, r, _ := newTestApp(t, host)
	host.w, host.h = 1000, 400
	a.HandleEvent(platform.Event{Kind: platform.Resize, X: 1000, Y: 400})
	if a.Scene.Camera.Aspect != float32(1000)/float32(400) {
		t.Fatalf("aspect=%v; want 2.5", a.Scene.Camera.Aspect)
	}
	want := mgl32.Perspective(mgl32.DegToRad(45), 2.5, 0.1, 1000)
	if a.Scene.Camera.Projection != want {
		t.Fatal("projection should be refreshed after resize")
	}
	if r.w != 1000 || r.h != 400 {
		t.Fatalf("renderer size=%dx%d; want 1000x400", r.w, r.h)
	}
}

func TestPanelReceivesPointer(t *testing.T) {
	host := &fakeHost{w: 1000, h: 800}
	a, _, cfg := newTestApp(t, host)
	var bg panel.Row
	for _, row := range a.Panel.Layout() {
		if row.Folder != nil && row.Folder.Name == "Background" {
			bg = row
		}
	}
	a.HandleEvent(platform.Event{Kind: platform.PointerDown, X: bg.Rect.X + 2, Y: bg.Rect.Y + 2})
	a.HandleEvent(platform.Event{Kind: platform.PointerUp, X: bg.Rect.X + 2, Y: bg.Rect.Y + 2})
	if !bg.Folder.IsOpen() {
		t.Fatal("click on the Background folder should open it")
	}
	var colorRow panel.Row
	for _, row := range a.Panel.Layout() {
		if row.Control != nil && row.Control.Folder() == bg.Folder {
			colorRow = row
		}
	}
	_, ch := panel.ChannelRects(colorRow.Widget)
	red := ch[0]
	a.HandleEvent(platform.Event{Kind: platform.PointerDown, X: red.X + red.W - 0.01, Y: red.Y + 1})
	if r, _, _ := cfg.Plane.BackgroundColor.Channels(); r < 250 {
		t.Fatalf("background=%v; want red channel raised", cfg.Plane.BackgroundColor)
	}
	if a.Scene.PlaneMaterial.Uniforms.Vec3(scene.UniformColor).X() < 0.98 {
		t.Fatal("background edit should reach the plane uniform")
	}
}

func TestRunStopsWhenHostCloses(t *testing.T) {
	host := &fakeHost{w: 640, h: 480, closeAfter: 3}
	a, r, _ := newTestApp(t, host)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if len(r.calls) != 3 {
		t.Fatalf("frames=%d; want 3", len(r.calls))
	}
}

func TestRunStop(t *testing.T) {
	host := &fakeHost{w: 640, h: 480}
	a, r, _ := newTestApp(t, host)
	r.onRender = func() {
		if len(r.calls) == 5 {
			a.Stop()
		}
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if len(r.calls) != 5 {
		t.Fatalf("frames=%d; want 5", len(r.calls))
	}
}

func TestRunContextCancel(t *testing.T) {
	host := &fakeHost{w: 640, h: 480}
	a, r, _ := newTestApp(t, host)
	ctx, cancel := context.WithCancel(context.Background())
	r.onRender = func() {
		if len(r.calls) == 2 {
			cancel()
		}
	}
	err := a.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err=%v; want context.Canceled", err)
	}
	if len(r.calls) != 2 {
		t.Fatalf("frames=%d; want 2", len(r.calls))
	}
}

func TestRunDispatchesEventsBeforeFrame(t *testing.T) {
	host := &fakeHost{w: 640, h: 480, closeAfter: 1}
	host.queued = [][]platform.Event{{{Kind: platform.PointerMove, X: 10, Y: 20}}}
	a, _, _ := newTestApp(t, host)
	if err := a.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := a.Scene.PlaneMaterial.Uniforms.Vec4(scene.UniformMouse); got.X() != 10 || got.Y() != 460 {
		t.Fatalf("iMouse=%v; want (10, 460)", got)
	}
}

func TestClose(t *testing.T) {
	host := &fakeHost{w: 640, h: 480}
	a, r, _ := newTestApp(t, host)
	a.Close()
	a.Close()
	if r.closed != 1 {
		t.Fatalf("renderer closed %d times; want 1", r.closed)
	}
	if len(a.Scene.Graph.Root.Children()) != 0 {
		t.Fatal("Close should detach the scene")
	}
	if err := a.Run(context.Background()); err != nil || len(r.calls) != 0 {
		t.Fatal("Run after Close should return immediately")
	}
}

func TestClock(t *testing.T) {
	now := 5.0
	c := NewClock(func() float64 { return now })
	now = 7.25
	if c.Elapsed() != 2.25 {
		t.Fatalf("Elapsed=%v; want 2.25", c.Elapsed())
	}
}
