package diff

import (
	"github.com/lixenwraith/termdiff/core"
	"github.com/lixenwraith/termdiff/terminal"
)

// Lines diffs styled blocks onto a console region
type Lines struct {
	canvas  *ConsoleCanvas
	tracker *BlockTracker[core.Cell]
}

// NewLines tracks a block anchored at origin
func NewLines(con terminal.Console, origin Point) *Lines {
	canvas := NewConsoleCanvas(con)
	return &Lines{canvas: canvas, tracker: NewBlockTracker[core.Cell](canvas, origin)}
}

// NewLinesAtCursor tracks a block anchored at the console's current cursor
func NewLinesAtCursor(con terminal.Console) *Lines {
	canvas := NewConsoleCanvas(con)
	return &Lines{canvas: canvas, tracker: NewBlockTrackerAtCursor[core.Cell](canvas)}
}

func (l *Lines) Origin() Point {
	return l.tracker.Origin()
}

// RenderDiff writes the cells of lines that differ from what is on screen
func (l *Lines) RenderDiff(lines core.Lines) error {
	rows := make([][]core.Cell, lines.Len())
	for i, s := range lines.Strings() {
		rows[i] = s.Cells()
	}
	return l.tracker.RenderDiff(rows)
}

// Clear blanks the tracked region
func (l *Lines) Clear() error {
	return l.tracker.Clear()
}

// Repaint rewrites the whole tracked block, for when other output has drawn over it
func (l *Lines) Repaint() error {
	return l.tracker.Repaint()
}

// Written returns the block currently on screen
func (l *Lines) Written() core.Lines {
	var out core.Lines
	for _, row := range l.tracker.Written() {
		out.AppendLine(core.StringOf(row...))
	}
	return out
}

// Stats returns the console operations issued so far
func (l *Lines) Stats() Stats {
	return l.canvas.Stats()
}

func (l *Lines) ResetStats() {
	l.canvas.ResetStats()
}

func (l *Lines) String() string {
	return l.Written().String()
}

// Line diffs a single styled string onto a console row. The cursor is left
// where the last write put it.
type Line struct {
	canvas  *ConsoleCanvas
	tracker *RowTracker[core.Cell]
}

// NewLine tracks a row starting at origin
func NewLine(con terminal.Console, origin Point) *Line {
	return &Line{canvas: NewConsoleCanvas(con), tracker: NewRowTracker[core.Cell](origin, nil)}
}

// NewLineAtCursor tracks a row starting at the console's current cursor
func NewLineAtCursor(con terminal.Console) *Line {
	canvas := NewConsoleCanvas(con)
	return &Line{canvas: canvas, tracker: NewRowTracker[core.Cell](canvas.Cursor(), nil)}
}

func (l *Line) Origin() Point {
	return l.tracker.Origin()
}

// RenderDiff writes the cells of s that differ from what is on screen
func (l *Line) RenderDiff(s core.String) error {
	return l.tracker.RenderDiff(l.canvas, s.Cells())
}

func (l *Line) Clear() error {
	return l.tracker.Clear(l.canvas)
}

// Repaint rewrites the whole tracked row
func (l *Line) Repaint() error {
	return l.tracker.Repaint(l.canvas)
}

// Written returns the string currently on screen
func (l *Line) Written() core.String {
	return core.StringOf(l.tracker.Written()...)
}

func (l *Line) Stats() Stats {
	return l.canvas.Stats()
}

func (l *Line) String() string {
	return l.Written().String()
}
