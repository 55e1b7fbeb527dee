package core

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// String is an ordered, mutable sequence of cells representing one row.
// Storage is owned exclusively; constructors and accessors copy.
type String struct {
	cells []Cell
}

// NewString builds a String from s, one cell per rune, all in the given colors.
// Validation happens before anything is built.
func NewString(s string, fg, bg tcell.Color) (String, error) {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		c, err := NewCell(r, fg, bg)
		if err != nil {
			return String{}, err
		}
		cells = append(cells, c)
	}
	return String{cells: cells}, nil
}

// MustString is NewString for literals; it panics on invalid content
func MustString(s string, fg, bg tcell.Color) String {
	str, err := NewString(s, fg, bg)
	if err != nil {
		panic(err)
	}
	return str
}

// PlainString builds an uncolored String
func PlainString(s string) (String, error) {
	return NewString(s, NoColor, NoColor)
}

// StringOf copies cells into a new String
func StringOf(cells ...Cell) String {
	return String{cells: append([]Cell(nil), cells...)}
}

// BlankString returns n blank cells
func BlankString(n int) String {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Blank()
	}
	return String{cells: cells}
}

// Len returns the cell count
func (s String) Len() int {
	return len(s.cells)
}

// At returns the cell at i
func (s String) At(i int) (Cell, error) {
	if i < 0 || i >= len(s.cells) {
		return Cell{}, OutOfRange(i, len(s.cells))
	}
	return s.cells[i], nil
}

// Set replaces the cell at i
func (s *String) Set(i int, c Cell) error {
	if i < 0 || i >= len(s.cells) {
		return OutOfRange(i, len(s.cells))
	}
	s.cells[i] = c
	return nil
}

// Append adds cells in place and returns the receiver for chaining
func (s *String) Append(cells ...Cell) *String {
	s.cells = append(s.cells, cells...)
	return s
}

// AppendString adds the cells of other in place
func (s *String) AppendString(other String) *String {
	s.cells = append(s.cells, other.cells...)
	return s
}

// Concat returns a new String holding s followed by other
func (s String) Concat(other String) String {
	out := make([]Cell, 0, len(s.cells)+len(other.cells))
	out = append(out, s.cells...)
	out = append(out, other.cells...)
	return String{cells: out}
}

// Plus returns a new String holding s followed by c
func (s String) Plus(c Cell) String {
	out := make([]Cell, 0, len(s.cells)+1)
	out = append(out, s.cells...)
	out = append(out, c)
	return String{cells: out}
}

// Cells returns a copy of the underlying cells
func (s String) Cells() []Cell {
	return append([]Cell(nil), s.cells...)
}

// Clone returns a deep copy
func (s String) Clone() String {
	return StringOf(s.cells...)
}

// Equal compares cell by cell, colors included
func (s String) Equal(other String) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String returns the bare characters
func (s String) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells))
	for _, c := range s.cells {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
