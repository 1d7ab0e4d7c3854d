package app

import (
	"backdrop/internal/panel"
	"backdrop/internal/platform"
)

// HandleEvent routes one host event. Pointer events go to the panel and to the
// pointer state alike; the shader sees the pointer even over the panel.
func (a *App) HandleEvent(ev platform.Event) {
	switch ev.Kind {
	case platform.PointerMove:
		a.Panel.HandlePointer(panel.PointerMove, ev.X, ev.Y)
		_, h := a.renderer.Size()
		// Raw client X; Y flipped to the drawing buffer's bottom-left origin.
		a.pointer[0] = ev.X
		a.pointer[1] = float32(h) - ev.Y
	case platform.PointerDown:
		a.Panel.HandlePointer(panel.PointerDown, ev.X, ev.Y)
		a.pointer[2] = 1
	case platform.PointerUp:
		a.Panel.HandlePointer(panel.PointerUp, ev.X, ev.Y)
		a.pointer[2] = 0
	case platform.Resize:
		a.Resize()
	}
}

// Resize matches the camera and output surface to the host's container.
// A zero-sized container is not guarded against.
func (a *App) Resize() {
	w, h := a.host.ContainerSize()
	cam := a.Scene.Camera
	cam.Aspect = float32(w) / float32(h)
	cam.UpdateProjectionMatrix()
	a.renderer.SetSize(w, h)
	a.Panel.Resize(w, h)
	a.log.Logf("app: resized to %dx%d", w, h)
}
