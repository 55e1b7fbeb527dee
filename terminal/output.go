package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
)

// cursorQueryTimeout bounds the wait for a DSR cursor position reply
const cursorQueryTimeout = 250 * time.Millisecond

// ErrNoCursorReport is returned by OpenTTY when the terminal does not answer
// the cursor position query and no starting position was configured
var ErrNoCursorReport = errors.New("no cursor position report")

// ANSIConsole implements Console by emitting ANSI/VT sequences.
// Terminals cannot be queried for colors or visibility, so the console tracks
// the state it has set itself. Output is buffered until Flush.
//
// Rows are logical: row 0 is the top screen row when the console was created.
// Growing the buffer scrolls the screen with line feeds, after which logical
// row top is shown on the first screen row.
type ANSIConsole struct {
	writer    *bufio.Writer
	backend   Backend // nil when not opened on a tty
	colorMode ColorMode

	cursorX int
	cursorY int
	fg      tcell.Color
	bg      tcell.Color
	visible bool

	rows        int // screen rows
	top         int // logical row on the first screen row
	height      int // logical rows, top+rows or more
	fixedHeight bool
	cursorSet   bool
}

// ANSIOption configures an ANSIConsole
type ANSIOption func(*ANSIConsole)

// WithColorMode overrides color mode detection
func WithColorMode(mode ColorMode) ANSIOption {
	return func(c *ANSIConsole) {
		c.colorMode = mode
	}
}

// WithHeight sets the screen height instead of asking the tty
func WithHeight(height int) ANSIOption {
	return func(c *ANSIConsole) {
		c.rows, c.height = height, height
		c.fixedHeight = true
	}
}

// WithCursor sets the starting cursor position. OpenTTY falls back to it
// when the terminal does not report one.
func WithCursor(x, y int) ANSIOption {
	return func(c *ANSIConsole) {
		c.cursorX, c.cursorY = x, y
		c.cursorSet = true
	}
}

// NewANSIConsole creates a console writing to w. The terminal is assumed to be
// in its default colors with a visible cursor at (0,0) unless configured.
func NewANSIConsole(w io.Writer, opts ...ANSIOption) *ANSIConsole {
	c := &ANSIConsole{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: DetectColorMode(),
		fg:        tcell.ColorReset,
		bg:        tcell.ColorReset,
		visible:   true,
		rows:      24,
		height:    24,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenTTY puts in into raw mode, asks the terminal where the cursor is and
// reads the window size. Close restores the tty.
// Without a reply the position given by WithCursor is used; when none was
// given the tty is restored and the error wraps ErrNoCursorReport.
func OpenTTY(in, out *os.File, opts ...ANSIOption) (*ANSIConsole, error) {
	b := newTTYBackend(in, out)
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("tty init: %w", err)
	}

	c := NewANSIConsole(b, opts...)
	c.backend = b
	if !c.fixedHeight {
		if _, h := b.Size(); h > 0 {
			c.rows, c.height = h, h
		}
	}

	x, y, err := c.queryCursor()
	switch {
	case err == nil:
		c.cursorX, c.cursorY = x, y
	case !c.cursorSet:
		b.Fini()
		return nil, fmt.Errorf("cursor query: %w", err)
	}
	return c, nil
}

// Close resets attributes, shows the cursor and leaves raw mode
func (c *ANSIConsole) Close() error {
	c.writer.Write(csiSGR0)
	c.writer.Write(csiCursorShow)
	err := c.writer.Flush()
	if c.backend != nil {
		c.backend.Fini()
	}
	return err
}

// ColorMode returns the active color encoding
func (c *ANSIConsole) ColorMode() ColorMode {
	return c.colorMode
}

// SetCursorPosition moves the cursor, using a short forward move on the same row.
// Rows scrolled off the top and rows past the buffer are out of range.
func (c *ANSIConsole) SetCursorPosition(x, y int) error {
	if x < 0 || y < c.top || y >= c.height {
		return fmt.Errorf("cursor position (%d,%d) out of range (rows %d-%d)", x, y, c.top, c.height-1)
	}
	if y == c.cursorY && x > c.cursorX && x-c.cursorX < 4 {
		writeCursorForward(c.writer, x-c.cursorX)
	} else if x != c.cursorX || y != c.cursorY {
		writeCursorPos(c.writer, x, y-c.top)
	}
	c.cursorX, c.cursorY = x, y
	return nil
}

// CursorPosition returns the tracked cursor position
func (c *ANSIConsole) CursorPosition() (int, int) {
	return c.cursorX, c.cursorY
}

// SetForeground emits SGR for c; ColorDefault and ColorNone leave it unchanged
func (c *ANSIConsole) SetForeground(color tcell.Color) error {
	if color == tcell.ColorDefault || color == tcell.ColorNone {
		return nil
	}
	writeColor(c.writer, c.colorMode, color, true)
	c.fg = color
	return nil
}

// SetBackground emits SGR for c; ColorDefault and ColorNone leave it unchanged
func (c *ANSIConsole) SetBackground(color tcell.Color) error {
	if color == tcell.ColorDefault || color == tcell.ColorNone {
		return nil
	}
	writeColor(c.writer, c.colorMode, color, false)
	c.bg = color
	return nil
}

func (c *ANSIConsole) Foreground() tcell.Color { return c.fg }
func (c *ANSIConsole) Background() tcell.Color { return c.bg }

// WriteRune writes r and advances the tracked cursor
func (c *ANSIConsole) WriteRune(r rune) error {
	var err error
	if r < 0x80 {
		err = c.writer.WriteByte(byte(r))
	} else {
		_, err = c.writer.WriteRune(r)
	}
	if err != nil {
		return err
	}
	c.cursorX++
	return nil
}

// SetCursorVisible emits DECTCEM when visibility changes
func (c *ANSIConsole) SetCursorVisible(visible bool) error {
	if visible == c.visible {
		return nil
	}
	if visible {
		c.writer.Write(csiCursorShow)
	} else {
		c.writer.Write(csiCursorHide)
	}
	c.visible = visible
	return nil
}

func (c *ANSIConsole) CursorVisible() bool {
	return c.visible
}

// BufferHeight returns the number of logical rows, including any scrolled off the top
func (c *ANSIConsole) BufferHeight() int {
	if c.backend != nil && !c.fixedHeight {
		if _, h := c.backend.Size(); h > c.rows {
			c.rows = h
		}
	}
	c.height = max(c.height, c.top+c.rows)
	return c.height
}

// SetBufferHeight scrolls the screen up by the missing rows. The cursor is
// parked on the bottom screen row and line feeds push content up; logical
// rows keep their numbers, so positions already handed out stay valid.
func (c *ANSIConsole) SetBufferHeight(height int) error {
	n := height - c.BufferHeight()
	if n <= 0 {
		return nil
	}
	bottom := c.top + c.rows - 1
	if c.cursorX != 0 || c.cursorY != bottom {
		writeCursorPos(c.writer, 0, c.rows-1)
	}
	for i := 0; i < n; i++ {
		c.writer.WriteByte('\n')
	}
	c.top += n
	c.height = height
	c.cursorX, c.cursorY = 0, c.top+c.rows-1
	return nil
}

// Top returns the logical row shown on the first screen row
func (c *ANSIConsole) Top() int {
	return c.top
}

// Flush writes buffered output to the terminal
func (c *ANSIConsole) Flush() error {
	return c.writer.Flush()
}

// queryCursor sends DSR and parses the CPR reply
func (c *ANSIConsole) queryCursor() (int, int, error) {
	if c.backend == nil {
		return 0, 0, errors.New("cursor query needs a tty")
	}
	c.writer.Write(csiDSR)
	if err := c.writer.Flush(); err != nil {
		return 0, 0, err
	}

	var reply []byte
	deadline := time.Now().Add(cursorQueryTimeout)
	for time.Now().Before(deadline) {
		data, err := c.backend.Read(time.Until(deadline))
		if err != nil {
			return 0, 0, err
		}
		if data == nil {
			break
		}
		reply = append(reply, data...)
		if x, y, ok := parseCursorReport(reply); ok {
			return x, y, nil
		}
	}
	return 0, 0, ErrNoCursorReport
}

// parseCursorReport extracts the 0-indexed position from "ESC [ row ; col R".
// Bytes before the report (typed input) are skipped.
func parseCursorReport(b []byte) (x, y int, ok bool) {
	end := bytes.IndexByte(b, 'R')
	for end >= 0 {
		start := bytes.LastIndex(b[:end], csi)
		if start >= 0 {
			body := b[start+len(csi) : end]
			if sep := bytes.IndexByte(body, ';'); sep > 0 {
				row, err1 := strconv.Atoi(string(body[:sep]))
				col, err2 := strconv.Atoi(string(body[sep+1:]))
				if err1 == nil && err2 == nil && row > 0 && col > 0 {
					return col - 1, row - 1, true
				}
			}
		}
		next := bytes.IndexByte(b[end+1:], 'R')
		if next < 0 {
			break
		}
		end += next + 1
	}
	return 0, 0, false
}
