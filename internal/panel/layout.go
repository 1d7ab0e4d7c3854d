package panel

// Rect is an axis-aligned screen rectangle in pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RowKind tells the renderer how to draw a row.
type RowKind int

const (
	RowTitle RowKind = iota
	RowFolder
	RowControl
)

// labelShare is the fraction of a control row taken by its label.
const labelShare = 0.4

// Row is one laid-out line of the panel.
type Row struct {
	Kind    RowKind
	Rect    Rect
	Label   string
	Open    bool     // folders, and the title (panel expanded)
	Folder  *Folder  // RowFolder
	Control *Control // RowControl
	// Widget is the interactive area right of the label. For colors it is split
	// into a swatch followed by the three channel bars (see ChannelRects).
	Widget Rect
}

// ChannelRects returns the swatch rectangle and the red, green and blue bars of a color widget.
func ChannelRects(widget Rect) (swatch Rect, channels [3]Rect) {
	w := widget.W / 4
	swatch = Rect{X: widget.X, Y: widget.Y, W: w - 2, H: widget.H}
	for i := range channels {
		channels[i] = Rect{X: widget.X + w*float32(i+1), Y: widget.Y, W: w - 2, H: widget.H}
	}
	return swatch, channels
}

// Layout returns the rows to draw, top to bottom, docked to the top-right corner.
func (p *Panel) Layout() []Row {
	t := p.theme
	x := float32(p.screenW - t.Width)
	if x < 0 {
		x = 0
	}
	w := float32(t.Width)
	h := float32(t.RowHeight)
	pad := float32(t.Padding)
	y := float32(0)

	title := "Close Controls"
	if p.collapsed {
		title = "Open Controls"
	}
	rows := []Row{{Kind: RowTitle, Rect: Rect{x, y, w, h}, Label: title, Open: !p.collapsed}}
	y += h
	if p.collapsed {
		return rows
	}
	for _, f := range p.folders {
		rows = append(rows, Row{Kind: RowFolder, Rect: Rect{x, y, w, h}, Label: f.Name, Open: f.open, Folder: f})
		y += h
		if !f.open {
			continue
		}
		for _, c := range f.controls {
			labelW := w * labelShare
			widget := Rect{X: x + labelW, Y: y + 3, W: w - labelW - pad, H: h - 6}
			rows = append(rows, Row{Kind: RowControl, Rect: Rect{x, y, w, h}, Label: c.label, Control: c, Widget: widget})
			y += h
		}
	}
	return rows
}

// Bounds is the rectangle covered by the panel in its current state.
func (p *Panel) Bounds() Rect {
	rows := p.Layout()
	last := rows[len(rows)-1].Rect
	return Rect{X: rows[0].Rect.X, Y: 0, W: rows[0].Rect.W, H: last.Y + last.H}
}
