package diff

import (
	"fmt"

	"github.com/lixenwraith/termdiff/core"
	"github.com/lixenwraith/termdiff/terminal"
)

// ConsoleCanvas renders core cells to a terminal.Console, one Coalesce scope per pass
type ConsoleCanvas struct {
	con   terminal.Console
	stats Stats
}

// NewConsoleCanvas creates a canvas over con
func NewConsoleCanvas(con terminal.Console) *ConsoleCanvas {
	return &ConsoleCanvas{con: con}
}

// Console returns the underlying console
func (c *ConsoleCanvas) Console() terminal.Console {
	return c.con
}

// Pass runs fn inside a coalescing writer scope
func (c *ConsoleCanvas) Pass(fn func(Painter[core.Cell]) error) error {
	return Coalesce(c.con, func(w *Writer) error {
		defer func() { c.stats.add(w.Stats()) }()
		return fn(w)
	})
}

// Grow makes rows below height addressable
func (c *ConsoleCanvas) Grow(height int) error {
	if height <= c.con.BufferHeight() {
		return nil
	}
	if err := c.con.SetBufferHeight(height); err != nil {
		return fmt.Errorf("grow buffer to %d rows: %w", height, err)
	}
	return terminal.Flush(c.con)
}

// Home moves the cursor to (0, row), growing the buffer first when row lies past it
func (c *ConsoleCanvas) Home(row int) error {
	if err := c.Grow(row + 1); err != nil {
		return err
	}
	if x, y := c.con.CursorPosition(); x == 0 && y == row {
		return nil
	}
	if err := c.con.SetCursorPosition(0, row); err != nil {
		return err
	}
	c.stats.CursorMoves++
	return terminal.Flush(c.con)
}

// Cursor returns the console cursor position
func (c *ConsoleCanvas) Cursor() Point {
	x, y := c.con.CursorPosition()
	return Point{X: x, Y: y}
}

// Stats returns operations issued since creation or the last ResetStats
func (c *ConsoleCanvas) Stats() Stats {
	return c.stats
}

func (c *ConsoleCanvas) ResetStats() {
	c.stats = Stats{}
}

var (
	_ Canvas[core.Cell]  = (*ConsoleCanvas)(nil)
	_ Painter[core.Cell] = (*Writer)(nil)
)
