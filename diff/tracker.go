package diff

import (
	"fmt"

	"github.com/lixenwraith/termdiff/core"
)

// Point is a 0-indexed grid coordinate
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Glyph is the value a tracker remembers per grid position: comparable, with a blank value
type Glyph[C any] interface {
	comparable
	Blank() C
}

// Painter writes glyphs during one pass
type Painter[C any] interface {
	// Paint writes c at the given position
	Paint(at Point, c C) error

	// Erase overwrites n columns starting at the given position with blanks, as one run
	Erase(at Point, n int) error
}

// Canvas is the surface trackers render to
type Canvas[C any] interface {
	// Pass runs fn inside one coalescing scope
	Pass(fn func(Painter[C]) error) error

	// Grow makes rows below height addressable. Where the surface scrolls to
	// grow, rows keep their numbers.
	Grow(height int) error

	// Home parks the cursor at column 0 of row, growing the buffer when needed
	Home(row int) error

	// Cursor returns the current cursor position
	Cursor() Point
}

// CellTracker remembers the glyph last rendered at one position.
// The first Render always writes, regardless of the initial value.
type CellTracker[C Glyph[C]] struct {
	origin   Point
	written  C
	rendered bool
}

// NewCellTracker creates a tracker at the given position holding initial
func NewCellTracker[C Glyph[C]](at Point, initial C) *CellTracker[C] {
	return &CellTracker[C]{origin: at, written: initial}
}

// NewBlankCellTracker creates a tracker holding the blank glyph
func NewBlankCellTracker[C Glyph[C]](at Point) *CellTracker[C] {
	var zero C
	return NewCellTracker(at, zero.Blank())
}

func (t *CellTracker[C]) Origin() Point {
	return t.origin
}

// Written returns the remembered glyph
func (t *CellTracker[C]) Written() C {
	return t.written
}

// IsDifferent reports whether rendering c would write anything
func (t *CellTracker[C]) IsDifferent(c C) bool {
	return !t.rendered || c != t.written
}

// Render paints c when it differs from the remembered glyph and reports whether it did.
// A failed paint leaves the tracker unchanged so the next pass retries.
func (t *CellTracker[C]) Render(p Painter[C], c C) (bool, error) {
	if !t.IsDifferent(c) {
		return false, nil
	}
	if err := p.Paint(t.origin, c); err != nil {
		return false, fmt.Errorf("paint at %s: %w", t.origin, err)
	}
	t.written = c
	t.rendered = true
	return true, nil
}

// Invalidate forgets that anything was rendered, so the next Render writes
func (t *CellTracker[C]) Invalidate() {
	t.rendered = false
}

// Clear renders the blank glyph
func (t *CellTracker[C]) Clear(p Painter[C]) (bool, error) {
	return t.Render(p, t.written.Blank())
}

func (t *CellTracker[C]) String() string {
	return fmt.Sprint(t.written)
}

// RowTracker tracks a contiguous run of cells starting at origin.
// Cell i always sits at origin.X+i on origin.Y.
type RowTracker[C Glyph[C]] struct {
	origin Point
	cells  []*CellTracker[C]
}

// NewRowTracker creates a row at origin remembering initial. Nothing is
// considered rendered yet.
func NewRowTracker[C Glyph[C]](origin Point, initial []C) *RowTracker[C] {
	r := &RowTracker[C]{origin: origin, cells: make([]*CellTracker[C], 0, len(initial))}
	for i, c := range initial {
		r.cells = append(r.cells, NewCellTracker(origin.Add(i, 0), c))
	}
	return r
}

func (r *RowTracker[C]) Origin() Point {
	return r.origin
}

// Len returns the number of tracked cells
func (r *RowTracker[C]) Len() int {
	return len(r.cells)
}

// At returns the tracker for column i of the row
func (r *RowTracker[C]) At(i int) (*CellTracker[C], error) {
	if i < 0 || i >= len(r.cells) {
		return nil, core.OutOfRange(i, len(r.cells))
	}
	return r.cells[i], nil
}

// Written returns the remembered glyphs in column order
func (r *RowTracker[C]) Written() []C {
	out := make([]C, len(r.cells))
	for i, t := range r.cells {
		out[i] = t.written
	}
	return out
}

// RenderDiff brings the row on screen from its remembered content to cells.
// Changed cells are written in one pass; excess columns are blanked with a
// single run and dropped. No pass is opened when nothing changed.
func (r *RowTracker[C]) RenderDiff(canvas Canvas[C], cells []C) error {
	for len(r.cells) < len(cells) {
		r.cells = append(r.cells, NewBlankCellTracker[C](r.origin.Add(len(r.cells), 0)))
	}

	if !r.needsPass(cells) {
		return nil
	}

	return canvas.Pass(func(p Painter[C]) error {
		for i, c := range cells {
			if _, err := r.cells[i].Render(p, c); err != nil {
				return err
			}
		}

		if excess := len(r.cells) - len(cells); excess > 0 {
			if err := p.Erase(r.origin.Add(len(cells), 0), excess); err != nil {
				return fmt.Errorf("erase %d cells at %s: %w", excess, r.origin.Add(len(cells), 0), err)
			}
			clear(r.cells[len(cells):])
			r.cells = r.cells[:len(cells)]
		}
		return nil
	})
}

// Clear blanks every tracked column and empties the row
func (r *RowTracker[C]) Clear(canvas Canvas[C]) error {
	return r.RenderDiff(canvas, nil)
}

// Repaint writes every remembered cell again, whether or not it changed.
// Used after something else has drawn over the row.
func (r *RowTracker[C]) Repaint(canvas Canvas[C]) error {
	r.invalidate()
	return r.RenderDiff(canvas, r.Written())
}

func (r *RowTracker[C]) invalidate() {
	for _, t := range r.cells {
		t.Invalidate()
	}
}

func (r *RowTracker[C]) needsPass(cells []C) bool {
	if len(r.cells) > len(cells) {
		return true
	}
	for i, c := range cells {
		if r.cells[i].IsDifferent(c) {
			return true
		}
	}
	return false
}

// BlockTracker tracks consecutive rows starting at origin.
// Row i is anchored at (origin.X, origin.Y+i).
type BlockTracker[C Glyph[C]] struct {
	canvas Canvas[C]
	origin Point
	rows   []*RowTracker[C]
}

// NewBlockTracker creates an empty block at origin
func NewBlockTracker[C Glyph[C]](canvas Canvas[C], origin Point) *BlockTracker[C] {
	return &BlockTracker[C]{canvas: canvas, origin: origin}
}

// NewBlockTrackerAt creates a block remembering initial, which is not yet rendered
func NewBlockTrackerAt[C Glyph[C]](canvas Canvas[C], origin Point, initial [][]C) *BlockTracker[C] {
	b := NewBlockTracker(canvas, origin)
	for i, row := range initial {
		b.rows = append(b.rows, NewRowTracker(origin.Add(0, i), row))
	}
	return b
}

// NewBlockTrackerAtCursor creates an empty block anchored at the current cursor
func NewBlockTrackerAtCursor[C Glyph[C]](canvas Canvas[C]) *BlockTracker[C] {
	return NewBlockTracker(canvas, canvas.Cursor())
}

func (b *BlockTracker[C]) Origin() Point {
	return b.origin
}

// Len returns the number of tracked rows
func (b *BlockTracker[C]) Len() int {
	return len(b.rows)
}

// Row returns the tracker for row i
func (b *BlockTracker[C]) Row(i int) (*RowTracker[C], error) {
	if i < 0 || i >= len(b.rows) {
		return nil, core.OutOfRange(i, len(b.rows))
	}
	return b.rows[i], nil
}

// Written returns the remembered rows
func (b *BlockTracker[C]) Written() [][]C {
	out := make([][]C, len(b.rows))
	for i, r := range b.rows {
		out[i] = r.Written()
	}
	return out
}

// RenderDiff brings the block on screen to rows, one pass per row, then
// parks the cursor at column 0 below the last tracked row. The buffer is
// grown to hold that row before anything is written.
func (b *BlockTracker[C]) RenderDiff(rows [][]C) error {
	if err := b.canvas.Grow(b.origin.Y + len(rows) + 1); err != nil {
		return err
	}

	for len(b.rows) < len(rows) {
		b.rows = append(b.rows, NewRowTracker[C](b.origin.Add(0, len(b.rows)), nil))
	}

	for i, cells := range rows {
		if err := b.rows[i].RenderDiff(b.canvas, cells); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	if len(b.rows) > len(rows) {
		for i := len(rows); i < len(b.rows); i++ {
			if err := b.rows[i].Clear(b.canvas); err != nil {
				return fmt.Errorf("clear row %d: %w", i, err)
			}
		}
		clear(b.rows[len(rows):])
		b.rows = b.rows[:len(rows)]
	}

	return b.canvas.Home(b.origin.Y + len(b.rows))
}

// Clear blanks every tracked row and empties the block
func (b *BlockTracker[C]) Clear() error {
	return b.RenderDiff(nil)
}

// Repaint writes every remembered cell of the block again
func (b *BlockTracker[C]) Repaint() error {
	for _, r := range b.rows {
		r.invalidate()
	}
	return b.RenderDiff(b.Written())
}
