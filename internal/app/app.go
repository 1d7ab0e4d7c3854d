// Package app is the top-level application object: it owns the scene, the
// parameter panel and the clock, routes host events to them, and drives one
// render call per frame until stopped.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"backdrop/internal/config"
	"backdrop/internal/geometry"
	"backdrop/internal/logger"
	"backdrop/internal/panel"
	"backdrop/internal/platform"
	"backdrop/internal/scene"
	"backdrop/internal/scenegraph"
)

// Renderer draws the scene graph. Render is called exactly once per frame.
type Renderer interface {
	Render(s *scenegraph.Scene, cam *scenegraph.Camera)
	// SetSize resizes the output surface.
	SetSize(w, h int)
	// Size is the drawing-buffer size in pixels.
	Size() (w, h int)
	Close()
}

// Options are the collaborators New wires together.
type Options struct {
	Config   *config.SceneConfig
	Host     platform.Host
	Renderer Renderer
	Rand     geometry.Rand
	Log      *logger.Logger
	Theme    panel.Theme
}

// App is constructed once at startup, runs its frame loop with Run, and is
// torn down with Close.
type App struct {
	cfg      *config.SceneConfig
	host     platform.Host
	renderer Renderer
	log      *logger.Logger

	Scene *scene.Scene
	Panel *panel.Panel
	clock *Clock

	// pointer is (x, y, pressed, 0) in drawing-buffer pixels with Y up.
	pointer mgl32.Vec4
	frames  uint64
	elapsed float32

	stopped   atomic.Bool
	closeOnce sync.Once
}

// New builds the scene and panel for the host's current size and starts the clock.
func New(opts Options) *App {
	w, h := opts.Host.ContainerSize()
	a := &App{
		cfg:      opts.Config,
		host:     opts.Host,
		renderer: opts.Renderer,
		log:      opts.Log,
	}
	a.Scene = scene.New(opts.Config, float32(w)/float32(h), opts.Rand)
	a.Panel = panel.New(opts.Theme)
	a.Panel.Resize(w, h)
	scene.Bind(a.Panel, a.Scene, a.log)
	a.renderer.SetSize(w, h)
	a.clock = NewClock(opts.Host.Now)
	a.log.Logf("app: scene built at %dx%d", w, h)
	return a
}

// Run drives the frame loop: each iteration dispatches pending host events and
// renders one frame. It returns nil when the host closes or Stop is called, and
// ctx.Err() when ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.log.Log("app: loop started")
	defer a.log.Log("app: loop stopped")
	for {
		if a.stopped.Load() || a.host.ShouldClose() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for _, ev := range a.host.Poll() {
			a.HandleEvent(ev)
		}
		a.Frame()
	}
}

// Stop makes Run return before its next frame. Safe to call from any goroutine.
func (a *App) Stop() {
	a.stopped.Store(true)
}

// Close detaches the scene and releases the renderer. Later calls do nothing.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.Stop()
		a.Scene.Dispose()
		a.renderer.Close()
	})
}

// Frame pushes time, resolution and pointer into the shader uniforms and renders once.
func (a *App) Frame() {
	a.elapsed = float32(a.clock.Elapsed())
	w, h := a.renderer.Size()
	res := mgl32.Vec3{float32(w), float32(h), 1}
	for _, m := range a.Scene.ShaderMaterials() {
		m.Uniforms[scene.UniformTime] = a.elapsed
		m.Uniforms[scene.UniformResolution] = res
	}
	a.Scene.PlaneMaterial.Uniforms[scene.UniformMouse] = a.pointer
	a.renderer.Render(a.Scene.Graph, a.Scene.Camera)
	a.frames++
}

// Stats is a snapshot for the debug overlay.
type Stats struct {
	Frames    uint64
	Elapsed   float32
	Triangles int
	Pointer   mgl32.Vec4
}

// Stats reports frame count, clock and scene counters.
func (a *App) Stats() Stats {
	return Stats{
		Frames:    a.frames,
		Elapsed:   a.elapsed,
		Triangles: len(a.Scene.Triangles()),
		Pointer:   a.pointer,
	}
}

// Pointer returns the pointer state fed to the iMouse uniform.
func (a *App) Pointer() mgl32.Vec4 { return a.pointer }

// Config returns the live scene config.
func (a *App) Config() *config.SceneConfig { return a.cfg }
