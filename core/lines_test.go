package core

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLinesAppend(t *testing.T) {
	var l Lines
	l.AppendToLastLine(MustCell('a', NoColor, NoColor))
	if l.Len() != 1 {
		t.Fatalf("Expected AppendToLastLine to create a line, got %d lines", l.Len())
	}

	l.AppendStringToLastLine(MustString("bc", NoColor, NoColor)).
		AppendBlankLine().
		AppendStringToLastLine(MustString("de", tcell.ColorRed, NoColor)).
		AppendLine(MustString("f", NoColor, NoColor))

	if got := l.String(); got != "abc\nde\nf" {
		t.Errorf("Expected %q, got %q", "abc\nde\nf", got)
	}
	if l.LastLine().String() != "f" {
		t.Errorf("Expected last line %q, got %q", "f", l.LastLine().String())
	}
}

func TestLinesNoSharedStorage(t *testing.T) {
	s := MustString("abc", NoColor, NoColor)
	l := NewLines(s, s)

	s.Set(0, MustCell('X', NoColor, NoColor))
	first, _ := l.Line(0)
	if first.String() != "abc" {
		t.Errorf("Expected line copied on insert, got %q", first.String())
	}

	l.SetLine(1, MustString("zzz", NoColor, NoColor))
	first, _ = l.Line(0)
	if first.String() != "abc" {
		t.Errorf("Expected lines to be independent, got %q", first.String())
	}

	// Mutating a returned line leaves the block untouched
	first.Set(0, MustCell('Q', NoColor, NoColor))
	again, _ := l.Line(0)
	if again.String() != "abc" {
		t.Errorf("Expected Line to return a copy, got %q", again.String())
	}
}

func TestLinesIndexing(t *testing.T) {
	l, err := PlainLines("one", "two")
	if err != nil {
		t.Fatalf("PlainLines failed: %v", err)
	}
	if _, err := l.Line(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
	if err := l.SetLine(-1, String{}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestLinesConcat(t *testing.T) {
	a, _ := PlainLines("a")
	b, _ := PlainLines("b", "c")

	ab := a.Concat(b)
	if ab.Len() != 3 || a.Len() != 1 || b.Len() != 2 {
		t.Errorf("Expected 3 lines and untouched operands, got %d, %d, %d", ab.Len(), a.Len(), b.Len())
	}

	want, _ := PlainLines("a", "b", "c")
	if !ab.Equal(want) {
		t.Errorf("Expected %q, got %q", want, ab)
	}
}

func TestPlainLinesRejectsControl(t *testing.T) {
	if _, err := PlainLines("ok", "bad\r"); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell, got %v", err)
	}
}
