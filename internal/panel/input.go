package panel

// PointerAction is what happened to the pointer.
type PointerAction int

const (
	PointerMove PointerAction = iota
	PointerDown
	PointerUp
)

// HandlePointer applies a pointer event in screen coordinates (origin top-left)
// and reports whether the panel consumed it. A drag that starts on a slider or
// channel bar keeps editing until the button is released, even outside the panel.
func (p *Panel) HandlePointer(action PointerAction, x, y float32) bool {
	switch action {
	case PointerMove:
		if p.drag != nil {
			p.dragTo(x)
			return true
		}
		return p.Bounds().Contains(x, y)
	case PointerUp:
		if p.drag != nil {
			p.drag = nil
			return true
		}
		return p.Bounds().Contains(x, y)
	case PointerDown:
		return p.press(x, y)
	}
	return false
}

// Dragging reports whether a slider or channel drag is in progress.
func (p *Panel) Dragging() bool { return p.drag != nil }

func (p *Panel) press(x, y float32) bool {
	for _, r := range p.Layout() {
		if !r.Rect.Contains(x, y) {
			continue
		}
		switch r.Kind {
		case RowTitle:
			p.collapsed = !p.collapsed
		case RowFolder:
			r.Folder.open = !r.Folder.open
		case RowControl:
			p.pressControl(r, x, y)
		}
		return true
	}
	return false
}

func (p *Panel) pressControl(r Row, x, y float32) {
	c := r.Control
	switch c.kind {
	case KindBool:
		c.SetBool(!c.Bool())
	case KindNumber:
		if !r.Widget.Contains(x, y) {
			return
		}
		p.drag, p.dragChannel, p.dragRect = c, -1, r.Widget
		p.dragTo(x)
	case KindColor:
		_, channels := ChannelRects(r.Widget)
		for i, cr := range channels {
			if cr.Contains(x, y) {
				p.drag, p.dragChannel, p.dragRect = c, i, cr
				p.dragTo(x)
				return
			}
		}
	}
}

func (p *Panel) dragTo(x float32) {
	r := p.dragRect
	if r.W <= 0 {
		return
	}
	f := (x - r.X) / r.W
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c := p.drag
	if p.dragChannel >= 0 {
		c.SetChannel(p.dragChannel, uint8(f*255+0.5))
		return
	}
	c.SetNumber(c.min + float64(f)*(c.max-c.min))
}
