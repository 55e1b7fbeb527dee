package core

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// NoColor marks an unset cell color; the cell inherits whatever color the
// terminal had when the writing pass began. Distinct from tcell.ColorBlack and
// from tcell.ColorReset (the terminal's own default).
const NoColor = tcell.ColorDefault

// widthCond is pinned to narrow ambiguous width so validation does not depend on locale
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// Cell is one character with optional foreground and background colors.
// Cells are values; two cells are equal when rune and both colors match.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// NewCell validates r and returns a cell with the given colors.
// Only runes one column wide are accepted: control characters, combining
// marks and wide runes such as CJK ideographs fail with ErrInvalidCell.
func NewCell(r rune, fg, bg tcell.Color) (Cell, error) {
	if err := ValidateRune(r); err != nil {
		return Cell{}, err
	}
	return Cell{Rune: r, Fg: fg, Bg: bg}, nil
}

// MustCell is NewCell for literals; it panics on an invalid rune
func MustCell(r rune, fg, bg tcell.Color) Cell {
	c, err := NewCell(r, fg, bg)
	if err != nil {
		panic(err)
	}
	return c
}

// Blank returns the blank cell: a space with no colors.
func Blank() Cell {
	return Cell{Rune: ' '}
}

// Blank satisfies diff.Glyph.
func (c Cell) Blank() Cell {
	return Blank()
}

// IsBlank reports whether c is a colorless space
func (c Cell) IsBlank() bool {
	return c == Blank()
}

// WithFg returns a copy of c with the foreground replaced
func (c Cell) WithFg(fg tcell.Color) Cell {
	c.Fg = fg
	return c
}

// WithBg returns a copy of c with the background replaced
func (c Cell) WithBg(bg tcell.Color) Cell {
	c.Bg = bg
	return c
}

// HasFg reports whether a foreground color was specified
func (c Cell) HasFg() bool {
	return c.Fg != NoColor
}

// HasBg reports whether a background color was specified
func (c Cell) HasBg() bool {
	return c.Bg != NoColor
}

// String returns the bare character
func (c Cell) String() string {
	return string(c.Rune)
}

// ValidateRune rejects runes that would move the cursor by anything other than
// exactly one column when written: control characters, line and paragraph
// separators, invalid code points, combining marks and wide runes.
func ValidateRune(r rune) error {
	switch {
	case !utf8.ValidRune(r):
		return fmt.Errorf("%w: invalid code point %U", ErrInvalidCell, r)
	case unicode.IsControl(r):
		return fmt.Errorf("%w: control character %U", ErrInvalidCell, r)
	case r == '\u2028' || r == '\u2029':
		return fmt.Errorf("%w: line terminator %U", ErrInvalidCell, r)
	}
	if w := widthCond.RuneWidth(r); w != 1 {
		return fmt.Errorf("%w: %U occupies %d columns", ErrInvalidCell, r, w)
	}
	return nil
}
