package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		expect  uint8
	}{
		{"black", 0, 0, 0, 16},
		{"white", 255, 255, 255, 231},
		{"red", 255, 0, 0, 196},
		{"blue", 0, 0, 255, 21},
		{"mid gray", 128, 128, 128, 244},
		{"cube orange", 255, 135, 0, 208},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.r, tt.g, tt.b); got != tt.expect {
				t.Errorf("Expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestCubeAndGrayClamp(t *testing.T) {
	if got := Cube256(9, 9, 9); got != 231 {
		t.Errorf("Expected clamped cube 231, got %d", got)
	}
	if got := Gray256(40); got != 255 {
		t.Errorf("Expected clamped gray 255, got %d", got)
	}
}

func TestRGBTo16(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		expect  uint8
	}{
		{"black", 0, 0, 0, 0},
		{"bright red", 255, 0, 0, 9},
		{"white", 255, 255, 255, 15},
		{"near navy", 0, 0, 120, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo16(tt.r, tt.g, tt.b); got != tt.expect {
				t.Errorf("Expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestPaletteIndex(t *testing.T) {
	if got := paletteIndex(tcell.ColorRed); got != 9 {
		t.Errorf("Expected 9, got %d", got)
	}
	if got := paletteIndex(tcell.NewRGBColor(1, 2, 3)); got != -1 {
		t.Errorf("Expected -1 for RGB, got %d", got)
	}
	if got := paletteIndex(tcell.ColorReset); got != -1 {
		t.Errorf("Expected -1 for reset, got %d", got)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input  string
		expect ColorMode
		fails  bool
	}{
		{"truecolor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"256", ColorMode256, false},
		{"ANSI", ColorMode16, false},
		{"none", ColorModeNone, false},
		{"sepia", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.fails {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil || got != tt.expect {
				t.Errorf("Expected %v, got %v (err %v)", tt.expect, got, err)
			}
		})
	}
}

func TestColorModeFromProfile(t *testing.T) {
	tests := map[termenv.Profile]ColorMode{
		termenv.TrueColor: ColorModeTrueColor,
		termenv.ANSI256:   ColorMode256,
		termenv.ANSI:      ColorMode16,
		termenv.Ascii:     ColorModeNone,
	}
	for profile, want := range tests {
		if got := colorModeFromProfile(profile); got != want {
			t.Errorf("Profile %v: expected %v, got %v", profile, want, got)
		}
	}
}
