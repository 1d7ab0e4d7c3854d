package panel

import (
	_ "embed"
	"strconv"
	"strings"
)

//go:embed theme.css
var defaultThemeCSS string

// RGBA is an 8-bit color. The renderer converts it to its own color type.
type RGBA struct {
	R, G, B, A uint8
}

// Theme holds the resolved colors and metrics the panel is drawn with.
type Theme struct {
	Background RGBA
	Text       RGBA
	Border     RGBA
	TitleBg    RGBA
	TitleText  RGBA
	FolderBg   RGBA
	FolderText RGBA
	Label      RGBA
	Track      RGBA
	Fill       RGBA
	CheckBg    RGBA
	Check      RGBA
	Channels   [3]RGBA

	Width     int32
	RowHeight int32
	Padding   int32
	FontSize  int32
}

// DefaultTheme resolves the embedded stylesheet.
func DefaultTheme() Theme {
	return ThemeFromCSS(ParseCSS(defaultThemeCSS))
}

// ThemeFromCSS resolves a theme from sheet, falling back to built-in values for
// anything the sheet leaves out or gets wrong.
func ThemeFromCSS(sheet *Stylesheet) Theme {
	t := Theme{
		Background: RGBA{26, 26, 26, 255},
		Text:       RGBA{238, 238, 238, 255},
		Border:     RGBA{48, 48, 48, 255},
		TitleBg:    RGBA{0, 0, 0, 255},
		TitleText:  RGBA{255, 255, 255, 255},
		FolderBg:   RGBA{17, 17, 17, 255},
		FolderText: RGBA{255, 255, 255, 255},
		Label:      RGBA{221, 221, 221, 255},
		Track:      RGBA{48, 48, 48, 255},
		Fill:       RGBA{47, 161, 214, 255},
		CheckBg:    RGBA{48, 48, 48, 255},
		Check:      RGBA{128, 103, 135, 255},
		Channels:   [3]RGBA{{214, 64, 64, 255}, {64, 214, 64, 255}, {64, 96, 214, 255}},
		Width:      280,
		RowHeight:  24,
		Padding:    6,
		FontSize:   14,
	}
	panel := sheet.Lookup(".panel")
	setColor(&t.Background, panel["background"])
	setColor(&t.Text, panel["color"])
	setColor(&t.Border, panel["border"])
	setPx(&t.Width, panel["width"])
	setPx(&t.Padding, panel["padding"])
	setPx(&t.FontSize, panel["font-size"])
	setPx(&t.RowHeight, sheet.Lookup(".row")["height"])

	title := sheet.Lookup(".title")
	setColor(&t.TitleBg, title["background"])
	setColor(&t.TitleText, title["color"])
	folder := sheet.Lookup(".folder")
	setColor(&t.FolderBg, folder["background"])
	setColor(&t.FolderText, folder["color"])
	setColor(&t.Label, sheet.Lookup(".label")["color"])
	setColor(&t.Track, sheet.Lookup(".slider")["background"])
	setColor(&t.Fill, sheet.Lookup(".slider-fill")["background"])
	check := sheet.Lookup(".checkbox")
	setColor(&t.CheckBg, check["background"])
	setColor(&t.Check, check["color"])
	for i, sel := range []string{".channel-r", ".channel-g", ".channel-b"} {
		setColor(&t.Channels[i], sheet.Lookup(sel)["background"])
	}
	return t
}

func setColor(dst *RGBA, v string) {
	if c, ok := ParseHexColor(v); ok {
		*dst = c
	}
}

func setPx(dst *int32, v string) {
	if n, ok := ParsePx(v); ok && n > 0 {
		*dst = n
	}
}

// ParseHexColor parses #RGB or #RRGGBB with full alpha.
func ParseHexColor(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return RGBA{}, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	return RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}, true
}

// ParsePx parses an integer with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
