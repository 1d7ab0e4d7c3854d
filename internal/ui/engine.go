// Package ui paints a panel.Panel with raylib. It owns nothing but the font:
// every frame it asks the panel for its layout and draws the rows as they are.
package ui

import (
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"backdrop/internal/panel"
)

// Engine draws one panel. If a font is loaded (LoadFont), text uses it;
// otherwise raylib's default pixel font is used.
type Engine struct {
	panel *panel.Panel
	font  rl.Font
}

// New returns an engine for p.
func New(p *panel.Panel) *Engine {
	return &Engine{panel: p}
}

// LoadFont loads a TTF/OTF font for panel text. On failure the current font is kept.
// Call after the window exists.
func (e *Engine) LoadFont(path string) error {
	size := e.panel.Theme().FontSize
	f := rl.LoadFontEx(path, size*2, nil)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	e.unloadFont()
	e.font = f
	return nil
}

func (e *Engine) unloadFont() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// Font is the loaded font, or the zero Font when none is loaded.
func (e *Engine) Font() rl.Font { return e.font }

// Close releases the font.
func (e *Engine) Close() { e.unloadFont() }

// Draw paints the panel's current layout.
func (e *Engine) Draw() {
	t := e.panel.Theme()
	b := e.panel.Bounds()
	rl.DrawRectangleRec(rect(b), rgba(t.Background))
	for _, row := range e.panel.Layout() {
		r := row.Rect
		switch row.Kind {
		case panel.RowTitle:
			rl.DrawRectangleRec(rect(r), rgba(t.TitleBg))
			w := e.measure(row.Label, t.FontSize)
			e.text(row.Label, r.X+(r.W-w)/2, r, t.FontSize, t.TitleText)
		case panel.RowFolder:
			rl.DrawRectangleRec(rect(r), rgba(t.FolderBg))
			marker := "+ "
			if row.Open {
				marker = "- "
			}
			e.text(marker+row.Label, r.X+float32(t.Padding), r, t.FontSize, t.FolderText)
		case panel.RowControl:
			e.text(row.Label, r.X+float32(t.Padding), r, t.FontSize, t.Label)
			e.drawWidget(t, row)
		}
		rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y+r.H-1, r.W, 1), rgba(t.Border))
	}
	rl.DrawRectangleLinesEx(rect(b), 1, rgba(t.Border))
}

func (e *Engine) drawWidget(t panel.Theme, row panel.Row) {
	c, w := row.Control, row.Widget
	small := t.FontSize - 2
	switch c.Kind() {
	case panel.KindNumber:
		rl.DrawRectangleRec(rect(w), rgba(t.Track))
		rl.DrawRectangleRec(rl.NewRectangle(w.X, w.Y, w.W*c.Fraction(), w.H), rgba(t.Fill))
		e.text(c.ValueText(), w.X+4, w, small, t.Text)
	case panel.KindColor:
		swatch, channels := panel.ChannelRects(w)
		hex := c.Color()
		rl.DrawRectangleRec(rect(swatch), rl.NewColor(uint8(hex>>16), uint8(hex>>8), uint8(hex), 255))
		for i, cr := range channels {
			v := uint8(hex >> uint(16-8*i))
			rl.DrawRectangleRec(rect(cr), rgba(t.Track))
			rl.DrawRectangleRec(rl.NewRectangle(cr.X, cr.Y, cr.W*float32(v)/255, cr.H), rgba(t.Channels[i]))
		}
	case panel.KindBool:
		box := rl.NewRectangle(w.X, w.Y, w.H, w.H)
		rl.DrawRectangleRec(box, rgba(t.CheckBg))
		if c.Bool() {
			inset := w.H / 4
			rl.DrawRectangleRec(rl.NewRectangle(box.X+inset, box.Y+inset, box.Width-2*inset, box.Height-2*inset), rgba(t.Check))
		}
	}
}

// text draws s at x, vertically centered in r.
func (e *Engine) text(s string, x float32, r panel.Rect, size int32, col panel.RGBA) {
	y := r.Y + (r.H-float32(size))/2
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, s, rl.NewVector2(x, y), float32(size), 1, rgba(col))
		return
	}
	rl.DrawText(s, int32(x), int32(y), size, rgba(col))
}

func (e *Engine) measure(s string, size int32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, s, float32(size), 1).X
	}
	return float32(rl.MeasureText(s, size))
}

func rect(r panel.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.W, r.H)
}

func rgba(c panel.RGBA) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
