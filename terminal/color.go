package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorMode indicates how colors are encoded on the wire
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota // 24-bit RGB
	ColorMode256                        // xterm-256 palette
	ColorMode16                         // SGR 30-37/90-97
	ColorModeNone                       // colors are dropped
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	case ColorMode16:
		return "16"
	case ColorModeNone:
		return "none"
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(m))
}

// ParseColorMode resolves a flag value; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	case "16", "ansi":
		return ColorMode16, nil
	case "none", "ascii":
		return ColorModeNone, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	return colorModeFromProfile(termenv.EnvColorProfile())
}

func colorModeFromProfile(p termenv.Profile) ColorMode {
	switch p {
	case termenv.TrueColor:
		return ColorModeTrueColor
	case termenv.ANSI256:
		return ColorMode256
	case termenv.ANSI:
		return ColorMode16
	default:
		return ColorModeNone
	}
}

// paletteIndex returns the xterm palette index of c, or -1 when c is not a palette color
func paletteIndex(c tcell.Color) int {
	if !c.Valid() || c.IsRGB() {
		return -1
	}
	idx := int(c - tcell.ColorValid)
	if idx < 0 || idx > 255 {
		return -1
	}
	return idx
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// cubeLevel maps 0-255 to the nearest cube level 0-5
func cubeLevel(v int) uint8 {
	best := 0
	bestDist := abs(v - cubeValues[0])
	for j := 1; j < 6; j++ {
		if d := abs(v - cubeValues[j]); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(r, g, b int) uint8 {
	cr, cg, cb := cubeLevel(r), cubeLevel(g), cubeLevel(b)
	cube := Cube256(cr, cg, cb)

	// Close to grayscale: compare against the 232-255 ramp
	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}
	step := (gray - 8) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := 8 + step*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-cubeValues[cr]) + abs(g-cubeValues[cg]) + abs(b-cubeValues[cb])
	if grayDist < cubeDist {
		return Gray256(uint8(step))
	}
	return cube
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// Values outside [0,5] are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the xterm 256-palette index for a grayscale step in [0,23]
func Gray256(step uint8) uint8 {
	return 232 + min(step, 23)
}

// ansi16 holds the 16 base palette colors in Lab-comparable form
var ansi16 = func() [16]colorful.Color {
	var out [16]colorful.Color
	for i := range out {
		r, g, b := tcell.PaletteColor(i).RGB()
		out[i] = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}
	return out
}()

// RGBTo16 finds the perceptually nearest of the 16 base colors
func RGBTo16(r, g, b int) uint8 {
	want := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, want.DistanceLab(ansi16[0])
	for i := 1; i < len(ansi16); i++ {
		if d := want.DistanceLab(ansi16[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}
