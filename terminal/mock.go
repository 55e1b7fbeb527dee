package terminal

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrMockWriteFailed is returned by MockConsole once its write budget is spent
var ErrMockWriteFailed = errors.New("mock console write failed")

// MockCell is one written grid position
type MockCell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

type mockPoint struct{ x, y int }

// MockConsole is an in-memory Console recording every operation.
// Unwritten positions read as a space in ColorReset.
type MockConsole struct {
	cells map[mockPoint]MockCell

	cursorX int
	cursorY int
	fg      tcell.Color
	bg      tcell.Color
	visible bool
	height  int

	// Operation counters, cleared by ResetCounters
	CursorMoves       int
	FgSets            int
	BgSets            int
	RuneWrites        int
	VisibilityChanges int
	BufferGrowths     int
	Flushes           int

	failAfter int // remaining rune writes before failing; <0 disables
}

// NewMockConsole creates a mock with a visible cursor at (0,0) and the given height
func NewMockConsole(height int) *MockConsole {
	return &MockConsole{
		cells:     make(map[mockPoint]MockCell),
		fg:        tcell.ColorReset,
		bg:        tcell.ColorReset,
		visible:   true,
		height:    height,
		failAfter: -1,
	}
}

// FailAfter makes WriteRune fail once n more runes have been written
func (m *MockConsole) FailAfter(n int) {
	m.failAfter = n
}

// ResetCounters zeroes all operation counters
func (m *MockConsole) ResetCounters() {
	m.CursorMoves = 0
	m.FgSets = 0
	m.BgSets = 0
	m.RuneWrites = 0
	m.VisibilityChanges = 0
	m.BufferGrowths = 0
	m.Flushes = 0
}

// ColorSets returns FgSets + BgSets
func (m *MockConsole) ColorSets() int {
	return m.FgSets + m.BgSets
}

func (m *MockConsole) SetCursorPosition(x, y int) error {
	m.CursorMoves++
	m.cursorX, m.cursorY = x, y
	return nil
}

func (m *MockConsole) CursorPosition() (int, int) {
	return m.cursorX, m.cursorY
}

func (m *MockConsole) SetForeground(c tcell.Color) error {
	m.FgSets++
	m.fg = c
	return nil
}

func (m *MockConsole) SetBackground(c tcell.Color) error {
	m.BgSets++
	m.bg = c
	return nil
}

func (m *MockConsole) Foreground() tcell.Color { return m.fg }
func (m *MockConsole) Background() tcell.Color { return m.bg }

func (m *MockConsole) WriteRune(r rune) error {
	if m.failAfter == 0 {
		return ErrMockWriteFailed
	}
	if m.failAfter > 0 {
		m.failAfter--
	}
	m.RuneWrites++
	m.cells[mockPoint{m.cursorX, m.cursorY}] = MockCell{Rune: r, Fg: m.fg, Bg: m.bg}
	m.cursorX++
	return nil
}

func (m *MockConsole) SetCursorVisible(visible bool) error {
	if visible != m.visible {
		m.VisibilityChanges++
	}
	m.visible = visible
	return nil
}

func (m *MockConsole) CursorVisible() bool {
	return m.visible
}

func (m *MockConsole) BufferHeight() int {
	return m.height
}

func (m *MockConsole) SetBufferHeight(height int) error {
	if height > m.height {
		m.BufferGrowths++
		m.height = height
	}
	return nil
}

// Flush counts flushes
func (m *MockConsole) Flush() error {
	m.Flushes++
	return nil
}

// CellAt returns the cell last written at (x, y)
func (m *MockConsole) CellAt(x, y int) MockCell {
	if c, ok := m.cells[mockPoint{x, y}]; ok {
		return c
	}
	return MockCell{Rune: ' ', Fg: tcell.ColorReset, Bg: tcell.ColorReset}
}

// Written reports whether anything was ever written at (x, y)
func (m *MockConsole) Written(x, y int) bool {
	_, ok := m.cells[mockPoint{x, y}]
	return ok
}

// Row returns the characters of row y from column 0 to width-1
func (m *MockConsole) Row(y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		sb.WriteRune(m.CellAt(x, y).Rune)
	}
	return sb.String()
}
