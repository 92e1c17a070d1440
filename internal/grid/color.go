package grid

import (
	"fmt"
	"math"
)

// Color is an 8-bit RGB triple
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB builds a Color from 0..1 channels, clamping out-of-range values
func RGB(r, g, b float64) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette
var (
	White       = Color{255, 255, 255}
	Green       = Color{0, 255, 0}
	Yellow      = Color{255, 255, 0}
	Blue        = Color{0, 0, 255}
	Magenta     = Color{255, 0, 255}
	Cyan        = Color{0, 255, 255}
	DarkGreen   = Color{0, 100, 0}
	Brown1      = Color{255, 64, 64}
	DarkBlue    = Color{0, 0, 139}
	DarkMagenta = Color{139, 0, 139}
	DarkCyan    = Color{0, 139, 139}
	Gray        = Color{190, 190, 190}
	DarkRed     = Color{139, 0, 0}
	Red         = Color{255, 0, 0}
	DarkGray    = Color{169, 169, 169}
	Purple      = Color{160, 32, 240}
	Gold        = Color{255, 215, 0}
	Black       = Color{0, 0, 0}
)

var iterationColors = [...]Color{
	White, Green, Yellow, Blue, Magenta, Cyan, White,
	DarkGreen, Brown1, DarkBlue, DarkMagenta, DarkCyan, Gray, DarkRed,
}

// IterationColor gives successive steps of an algorithm distinct colors.
// Anything past the table, negative values included, is Red.
func IterationColor(i int) Color {
	if i < 0 || i >= len(iterationColors) {
		return Red
	}
	return iterationColors[i]
}
