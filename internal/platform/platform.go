// Package platform describes the host surface the application runs on: the
// events it delivers once per frame and the queries the render loop makes.
// Implementations live elsewhere (see package window).
package platform

// EventKind identifies a host event.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerDown
	PointerUp
	Resize
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case Resize:
		return "resize"
	}
	return "unknown"
}

// Event is one host event. X and Y are client coordinates (origin top-left)
// for pointer events and the new container size for Resize.
type Event struct {
	Kind EventKind
	X, Y float32
}

// Host is the window or page the scene is drawn into.
type Host interface {
	// Poll returns the events gathered since the previous call.
	Poll() []Event
	// ContainerSize is the current client area in pixels.
	ContainerSize() (w, h int)
	// Now returns seconds elapsed since an arbitrary fixed reference.
	Now() float64
	// ShouldClose reports that the user asked to close the host.
	ShouldClose() bool
}
