// Package graphics owns the raylib window: it opens it, turns raylib's input
// state into platform events once per frame, and reports size and time.
package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"backdrop/internal/platform"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultTitle  = "backdrop"
)

// Options configure the window.
type Options struct {
	Width, Height int
	Title         string
}

// Window is a resizable, vsynced raylib window. It implements platform.Host.
// All methods must be called from the thread that called Open.
type Window struct {
	events  []platform.Event
	lastX   float32
	lastY   float32
	hasLast bool
}

// Open creates the window and its OpenGL context.
func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint | rl.FlagMsaa4xHint | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("graphics: window could not be created")
	}
	rl.SetTargetFPS(int32(rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())))
	return &Window{}, nil
}

// Poll returns the pointer and resize events since the previous call. The
// returned slice is reused by the next call.
func (w *Window) Poll() []platform.Event {
	w.events = w.events[:0]
	pos := rl.GetMousePosition()
	if !w.hasLast || pos.X != w.lastX || pos.Y != w.lastY {
		w.events = append(w.events, platform.Event{Kind: platform.PointerMove, X: pos.X, Y: pos.Y})
		w.lastX, w.lastY, w.hasLast = pos.X, pos.Y, true
	}
	for _, b := range []rl.MouseButton{rl.MouseButtonLeft, rl.MouseButtonRight, rl.MouseButtonMiddle} {
		if rl.IsMouseButtonPressed(b) {
			w.events = append(w.events, platform.Event{Kind: platform.PointerDown, X: pos.X, Y: pos.Y})
		}
		if rl.IsMouseButtonReleased(b) {
			w.events = append(w.events, platform.Event{Kind: platform.PointerUp, X: pos.X, Y: pos.Y})
		}
	}
	if rl.IsWindowResized() {
		cw, ch := w.ContainerSize()
		w.events = append(w.events, platform.Event{Kind: platform.Resize, X: float32(cw), Y: float32(ch)})
	}
	return w.events
}

// ContainerSize is the client area in screen coordinates.
func (w *Window) ContainerSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Now is seconds since the window opened.
func (w *Window) Now() float64 { return rl.GetTime() }

// ShouldClose reports the close button or ESC.
func (w *Window) ShouldClose() bool { return rl.WindowShouldClose() }

// Close destroys the window and its context.
func (w *Window) Close() { rl.CloseWindow() }
