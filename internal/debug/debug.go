package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime counters in the top-left corner. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	font       rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	stats      func() string
	frameCount uint32
	fpsText    string
	memText    string
	statsText  string
	memStats   runtime.MemStats
}

// New returns a Debug overlay with everything hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used for the overlay. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetStats installs a one-line scene summary shown under the FPS counter.
func (d *Debug) SetStats(fn func() string) {
	d.stats = fn
}

// Draw renders the enabled lines. Text is only recomputed every updateInterval
// frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.frameCount == 1

	y := float32(padding)
	if d.ShowFPS {
		if update || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			if d.stats != nil {
				d.statsText = d.stats()
			}
		}
		d.line(d.fpsText, y)
		y += lineHeight
		if d.statsText != "" {
			d.line(d.statsText, y)
			y += lineHeight
		}
	}
	if d.ShowMemAlloc {
		if update || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.line(d.memText, y)
	}
}

func (d *Debug) line(text string, y float32) {
	if d.font.Texture.ID != 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(padding, y), fontSize, 1, rl.Green)
		return
	}
	rl.DrawText(text, padding, int32(y), fontSize, rl.Green)
}
