package terminal

import (
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Console is the set of terminal primitives the diff engine drives.
// Coordinates are 0-indexed (column, row). Implementations are not safe for
// concurrent use; callers serialize all renders.
type Console interface {
	// SetCursorPosition moves the cursor
	SetCursorPosition(x, y int) error

	// CursorPosition returns the current cursor position
	CursorPosition() (x, y int)

	// SetForeground selects the color used by subsequent writes
	SetForeground(c tcell.Color) error

	// SetBackground selects the background used by subsequent writes
	SetBackground(c tcell.Color) error

	Foreground() tcell.Color
	Background() tcell.Color

	// WriteRune writes one character at the cursor and advances it one column
	WriteRune(r rune) error

	SetCursorVisible(visible bool) error
	CursorVisible() bool

	// BufferHeight returns the number of addressable rows
	BufferHeight() int

	// SetBufferHeight grows the scroll buffer. A no-op where the terminal auto-grows
	SetBufferHeight(height int) error
}

// Flusher is implemented by consoles that buffer output
type Flusher interface {
	Flush() error
}

// Flush flushes c when it buffers output
func Flush(c Console) error {
	if f, ok := c.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// EmergencyReset restores a sane terminal state after a crash
// Writes directly to w, bypassing any console buffering
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort
	resetTerminalMode()
}

var (
	_ Console = (*ANSIConsole)(nil)
	_ Console = (*ScreenConsole)(nil)
	_ Console = (*MockConsole)(nil)
	_ Flusher = (*ANSIConsole)(nil)
	_ Flusher = (*ScreenConsole)(nil)
)
