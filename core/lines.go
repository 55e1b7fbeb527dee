package core

import "strings"

// Lines is an ordered, mutable sequence of Strings describing a rectangular
// region of rows. Lines never share cell storage: every insert copies.
type Lines struct {
	lines []String
}

// NewLines copies the given strings into a new Lines
func NewLines(lines ...String) Lines {
	out := make([]String, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return Lines{lines: out}
}

// PlainLines builds uncolored lines, one per string
func PlainLines(rows ...string) (Lines, error) {
	out := make([]String, 0, len(rows))
	for _, r := range rows {
		s, err := PlainString(r)
		if err != nil {
			return Lines{}, err
		}
		out = append(out, s)
	}
	return Lines{lines: out}, nil
}

// Len returns the line count
func (l Lines) Len() int {
	return len(l.lines)
}

// Line returns a copy of line i
func (l Lines) Line(i int) (String, error) {
	if i < 0 || i >= len(l.lines) {
		return String{}, OutOfRange(i, len(l.lines))
	}
	return l.lines[i].Clone(), nil
}

// SetLine replaces line i with a copy of s
func (l *Lines) SetLine(i int, s String) error {
	if i < 0 || i >= len(l.lines) {
		return OutOfRange(i, len(l.lines))
	}
	l.lines[i] = s.Clone()
	return nil
}

// AppendLine adds a copy of s as the last line
func (l *Lines) AppendLine(s String) *Lines {
	l.lines = append(l.lines, s.Clone())
	return l
}

// AppendBlankLine adds an empty line
func (l *Lines) AppendBlankLine() *Lines {
	l.lines = append(l.lines, String{})
	return l
}

// AppendLines adds copies of every line of other
func (l *Lines) AppendLines(other Lines) *Lines {
	for _, s := range other.lines {
		l.lines = append(l.lines, s.Clone())
	}
	return l
}

// AppendToLastLine appends cells to the last line, creating it when empty
func (l *Lines) AppendToLastLine(cells ...Cell) *Lines {
	l.last().Append(cells...)
	return l
}

// AppendStringToLastLine appends s to the last line, creating it when empty
func (l *Lines) AppendStringToLastLine(s String) *Lines {
	l.last().AppendString(s)
	return l
}

// LastLine returns a copy of the last line, or an empty String when there are none
func (l Lines) LastLine() String {
	if len(l.lines) == 0 {
		return String{}
	}
	return l.lines[len(l.lines)-1].Clone()
}

func (l *Lines) last() *String {
	if len(l.lines) == 0 {
		l.lines = append(l.lines, String{})
	}
	return &l.lines[len(l.lines)-1]
}

// Concat returns a new Lines holding l followed by other
func (l Lines) Concat(other Lines) Lines {
	out := NewLines(l.lines...)
	out.AppendLines(other)
	return out
}

// Strings returns copies of every line
func (l Lines) Strings() []String {
	out := make([]String, len(l.lines))
	for i, s := range l.lines {
		out[i] = s.Clone()
	}
	return out
}

// Equal compares line by line
func (l Lines) Equal(other Lines) bool {
	if len(l.lines) != len(other.lines) {
		return false
	}
	for i := range l.lines {
		if !l.lines[i].Equal(other.lines[i]) {
			return false
		}
	}
	return true
}

// String joins the bare characters of each line with newlines
func (l Lines) String() string {
	parts := make([]string, len(l.lines))
	for i, s := range l.lines {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}
