package terminal

import (
	"bufio"

	"github.com/gdamore/tcell/v2"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH
	csiDSR        = []byte("\x1b[6n")

	// Screen modes
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiBg256     = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B;m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [10]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward writes cursor forward N positions
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write([]byte("\x1b[C"))
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('C')
}

// writeColor emits a complete SGR sequence selecting c as foreground (fg=true)
// or background. ColorDefault and ColorNone emit nothing.
func writeColor(w *bufio.Writer, mode ColorMode, c tcell.Color, fg bool) {
	if mode == ColorModeNone || c == tcell.ColorDefault || c == tcell.ColorNone {
		return
	}
	if c == tcell.ColorReset {
		if fg {
			w.Write(csiDefaultFg)
		} else {
			w.Write(csiDefaultBg)
		}
		return
	}

	idx := paletteIndex(c)
	if idx >= 0 && idx < 16 {
		writeBase16(w, idx, fg)
		return
	}

	r, g, b := c.RGB()
	switch {
	case idx >= 0 && mode != ColorMode16:
		write256(w, idx, fg)
	case mode == ColorModeTrueColor:
		if fg {
			w.Write(csiFgRGB)
		} else {
			w.Write(csiBgRGB)
		}
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		w.WriteByte('m')
	case mode == ColorMode256:
		write256(w, int(RGBTo256(int(r), int(g), int(b))), fg)
	default:
		writeBase16(w, int(RGBTo16(int(r), int(g), int(b))), fg)
	}
}

// writeBase16 writes SGR 30-37/90-97 (fg) or 40-47/100-107 (bg)
func writeBase16(w *bufio.Writer, idx int, fg bool) {
	base := 30
	if !fg {
		base = 40
	}
	if idx >= 8 {
		base += 60
		idx -= 8
	}
	w.Write(csi)
	writeInt(w, base+idx)
	w.WriteByte('m')
}

func write256(w *bufio.Writer, idx int, fg bool) {
	if fg {
		w.Write(csiFg256)
	} else {
		w.Write(csiBg256)
	}
	writeInt(w, idx)
	w.WriteByte('m')
}
