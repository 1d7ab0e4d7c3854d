// Package panel is a small immediate-style parameter panel: folders of bound
// number, color and boolean controls. Each control reads and writes its value
// through a pointer and runs its change callback synchronously on every edit.
// The package only lays out rows and interprets pointer input; drawing is left
// to the renderer.
package panel

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Kind tells controls apart.
type Kind int

const (
	KindNumber Kind = iota
	KindColor
	KindBool
)

// Panel is the root of the control tree.
type Panel struct {
	theme     Theme
	folders   []*Folder
	collapsed bool
	screenW   int32
	screenH   int32

	drag        *Control
	dragChannel int
	dragRect    Rect
}

// New returns an empty, expanded panel.
func New(theme Theme) *Panel {
	return &Panel{theme: theme}
}

// Theme returns the theme the panel lays itself out with.
func (p *Panel) Theme() Theme { return p.theme }

// Resize tells the panel the size of the surface it is docked to (top-right corner).
func (p *Panel) Resize(w, h int) {
	p.screenW, p.screenH = int32(w), int32(h)
}

// Collapsed reports whether only the title row is shown.
func (p *Panel) Collapsed() bool { return p.collapsed }

// SetCollapsed shows or hides everything below the title row.
func (p *Panel) SetCollapsed(c bool) { p.collapsed = c }

// AddFolder appends a folder, initially closed.
func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{panel: p, Name: name}
	p.folders = append(p.folders, f)
	return f
}

// Folders returns the folders in insertion order.
func (p *Panel) Folders() []*Folder {
	out := make([]*Folder, len(p.folders))
	copy(out, p.folders)
	return out
}

// Folder groups controls under a collapsible header.
type Folder struct {
	panel    *Panel
	Name     string
	open     bool
	controls []*Control
}

func (f *Folder) Open()        { f.open = true }
func (f *Folder) Close()       { f.open = false }
func (f *Folder) IsOpen() bool { return f.open }

// Controls returns the folder's controls in insertion order.
func (f *Folder) Controls() []*Control {
	out := make([]*Control, len(f.controls))
	copy(out, f.controls)
	return out
}

// Control finds a control by label, or nil.
func (f *Folder) Control(label string) *Control {
	for _, c := range f.controls {
		if c.label == label {
			return c
		}
	}
	return nil
}

func (f *Folder) add(c *Control) *Control {
	c.folder = f
	f.controls = append(f.controls, c)
	return c
}

// Control is one bound value.
type Control struct {
	folder   *Folder
	kind     Kind
	label    string
	onChange func()

	min, max, step float64
	integer        bool
	getNum         func() float64
	setNum         func(float64)

	getColor func() uint32
	setColor func(uint32)

	getBool func() bool
	setBool func(bool)
}

// AddNumber binds a numeric field to a slider over [min, max].
func AddNumber[T constraints.Integer | constraints.Float](f *Folder, label string, ptr *T, min, max T) *Control {
	half := 0.5
	return f.add(&Control{
		kind:    KindNumber,
		label:   label,
		min:     float64(min),
		max:     float64(max),
		integer: float64(T(half)) == 0,
		getNum:  func() float64 { return float64(*ptr) },
		setNum:  func(v float64) { *ptr = T(v) },
	})
}

// AddColor binds a packed 0xRRGGBB field.
func AddColor[C ~uint32](f *Folder, label string, ptr *C) *Control {
	return f.add(&Control{
		kind:     KindColor,
		label:    label,
		getColor: func() uint32 { return uint32(*ptr) & 0xffffff },
		setColor: func(v uint32) { *ptr = C(v & 0xffffff) },
	})
}

// AddBool binds a boolean field to a checkbox.
func AddBool(f *Folder, label string, ptr *bool) *Control {
	return f.add(&Control{
		kind:    KindBool,
		label:   label,
		getBool: func() bool { return *ptr },
		setBool: func(v bool) { *ptr = v },
	})
}

// Step quantizes number edits to multiples of s. Zero disables quantizing.
func (c *Control) Step(s float64) *Control {
	c.step = s
	return c
}

// OnChange sets the callback run after every edit.
func (c *Control) OnChange(fn func()) *Control {
	c.onChange = fn
	return c
}

func (c *Control) Kind() Kind      { return c.kind }
func (c *Control) Label() string   { return c.label }
func (c *Control) Folder() *Folder { return c.folder }

// Range returns the numeric bounds.
func (c *Control) Range() (min, max float64) { return c.min, c.max }

// Number returns the current bound value.
func (c *Control) Number() float64 { return c.getNum() }

// Color returns the current bound color.
func (c *Control) Color() uint32 { return c.getColor() }

// Bool returns the current bound flag.
func (c *Control) Bool() bool { return c.getBool() }

// SetNumber quantizes v to the step, clamps it to the range, writes it and fires the callback.
func (c *Control) SetNumber(v float64) {
	if c.kind != KindNumber || math.IsNaN(v) {
		return
	}
	if c.step > 0 {
		v = math.Round(v/c.step) * c.step
	}
	if c.integer {
		v = math.Round(v)
	}
	v = math.Max(c.min, math.Min(c.max, v))
	c.setNum(v)
	c.changed()
}

// SetColor writes hex and fires the callback.
func (c *Control) SetColor(hex uint32) {
	if c.kind != KindColor {
		return
	}
	c.setColor(hex)
	c.changed()
}

// SetChannel replaces one 8-bit channel (0 red, 1 green, 2 blue) of a color control.
func (c *Control) SetChannel(channel int, v uint8) {
	if c.kind != KindColor || channel < 0 || channel > 2 {
		return
	}
	shift := uint(16 - 8*channel)
	hex := c.getColor()&^(0xff<<shift) | uint32(v)<<shift
	c.SetColor(hex)
}

// SetBool writes v and fires the callback.
func (c *Control) SetBool(v bool) {
	if c.kind != KindBool {
		return
	}
	c.setBool(v)
	c.changed()
}

func (c *Control) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Fraction is the number's position within its range, in [0,1].
func (c *Control) Fraction() float32 {
	if c.kind != KindNumber || c.max <= c.min {
		return 0
	}
	f := (c.getNum() - c.min) / (c.max - c.min)
	return float32(math.Max(0, math.Min(1, f)))
}

// ValueText formats the current value for display.
func (c *Control) ValueText() string {
	switch c.kind {
	case KindNumber:
		if c.integer {
			return strconv.FormatInt(int64(c.getNum()), 10)
		}
		s := strconv.FormatFloat(c.getNum(), 'f', 3, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	case KindColor:
		return "#" + leftPad(strconv.FormatUint(uint64(c.getColor()), 16), 6)
	case KindBool:
		return strconv.FormatBool(c.getBool())
	}
	return ""
}

func leftPad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
