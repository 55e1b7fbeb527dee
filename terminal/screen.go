package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenConsole adapts a tcell.Screen to Console. tcell keeps its own back
// buffer, so cursor and colors are tracked here and applied per SetContent.
type ScreenConsole struct {
	screen tcell.Screen

	cursorX int
	cursorY int
	fg      tcell.Color
	bg      tcell.Color
	visible bool
	height  int
}

// NewScreenConsole wraps an initialized screen. tcell starts with the cursor hidden
func NewScreenConsole(screen tcell.Screen) *ScreenConsole {
	_, h := screen.Size()
	return &ScreenConsole{
		screen: screen,
		fg:     tcell.ColorReset,
		bg:     tcell.ColorReset,
		height: h,
	}
}

// Screen returns the wrapped screen
func (c *ScreenConsole) Screen() tcell.Screen {
	return c.screen
}

func (c *ScreenConsole) SetCursorPosition(x, y int) error {
	c.cursorX, c.cursorY = x, y
	if c.visible {
		c.screen.ShowCursor(x, y)
	}
	return nil
}

func (c *ScreenConsole) CursorPosition() (int, int) {
	return c.cursorX, c.cursorY
}

func (c *ScreenConsole) SetForeground(color tcell.Color) error {
	if color != tcell.ColorDefault && color != tcell.ColorNone {
		c.fg = color
	}
	return nil
}

func (c *ScreenConsole) SetBackground(color tcell.Color) error {
	if color != tcell.ColorDefault && color != tcell.ColorNone {
		c.bg = color
	}
	return nil
}

func (c *ScreenConsole) Foreground() tcell.Color { return c.fg }
func (c *ScreenConsole) Background() tcell.Color { return c.bg }

// WriteRune stores r in the back buffer. ColorReset maps to tcell's default style color
func (c *ScreenConsole) WriteRune(r rune) error {
	style := tcell.StyleDefault.Foreground(c.fg).Background(c.bg)
	c.screen.SetContent(c.cursorX, c.cursorY, r, nil, style)
	c.cursorX++
	return nil
}

func (c *ScreenConsole) SetCursorVisible(visible bool) error {
	c.visible = visible
	if visible {
		c.screen.ShowCursor(c.cursorX, c.cursorY)
	} else {
		c.screen.HideCursor()
	}
	return nil
}

func (c *ScreenConsole) CursorVisible() bool {
	return c.visible
}

// BufferHeight is the screen height, or the logical height once grown past it
func (c *ScreenConsole) BufferHeight() int {
	if _, h := c.screen.Size(); h > c.height {
		c.height = h
	}
	return c.height
}

func (c *ScreenConsole) SetBufferHeight(height int) error {
	if height > c.height {
		c.height = height
	}
	return nil
}

// Flush pushes the back buffer to the terminal
func (c *ScreenConsole) Flush() error {
	c.screen.Show()
	return nil
}
