package core

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewString(t *testing.T) {
	s, err := NewString("héllo", tcell.ColorYellow, NoColor)
	if err != nil {
		t.Fatalf("NewString failed: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
	c, _ := s.At(1)
	if c.Rune != 'é' || c.Fg != tcell.ColorYellow {
		t.Errorf("Expected yellow é, got %+v", c)
	}
	if s.String() != "héllo" {
		t.Errorf("Expected %q, got %q", "héllo", s.String())
	}
}

func TestNewStringFailsOnNewline(t *testing.T) {
	if _, err := PlainString("ab\ncd"); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("Expected ErrInvalidCell, got %v", err)
	}
}

func TestStringIndexing(t *testing.T) {
	s := MustString("abc", NoColor, NoColor)

	for _, i := range []int{-1, 3, 10} {
		if _, err := s.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
		if err := s.Set(i, Blank()); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}

	if err := s.Set(1, MustCell('X', tcell.ColorRed, NoColor)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if s.String() != "aXc" {
		t.Errorf("Expected %q, got %q", "aXc", s.String())
	}
}

func TestStringConcatDoesNotMutate(t *testing.T) {
	a := MustString("ab", NoColor, NoColor)
	b := MustString("cd", tcell.ColorRed, NoColor)

	ab := a.Concat(b)
	abz := a.Plus(MustCell('z', NoColor, NoColor))

	if a.String() != "ab" || b.String() != "cd" {
		t.Errorf("Expected operands unchanged, got %q and %q", a, b)
	}
	if ab.String() != "abcd" {
		t.Errorf("Expected %q, got %q", "abcd", ab.String())
	}
	if abz.String() != "abz" {
		t.Errorf("Expected %q, got %q", "abz", abz.String())
	}

	// Results do not alias the operands
	ab.Set(0, MustCell('Q', NoColor, NoColor))
	if a.String() != "ab" {
		t.Errorf("Expected concat result not to alias operand, got %q", a.String())
	}
}

func TestStringAppendInPlace(t *testing.T) {
	var s String
	s.Append(MustCell('a', NoColor, NoColor)).
		AppendString(MustString("bc", tcell.ColorBlue, NoColor)).
		Append(Blank())

	if s.String() != "abc " {
		t.Errorf("Expected %q, got %q", "abc ", s.String())
	}
}

func TestStringCellsIsCopy(t *testing.T) {
	s := MustString("ab", NoColor, NoColor)
	cells := s.Cells()
	cells[0] = MustCell('z', NoColor, NoColor)
	if s.String() != "ab" {
		t.Errorf("Expected Cells to return a copy, string became %q", s.String())
	}
}

func TestStringEqual(t *testing.T) {
	a := MustString("ab", tcell.ColorRed, NoColor)
	if !a.Equal(MustString("ab", tcell.ColorRed, NoColor)) {
		t.Error("Expected equal strings")
	}
	if a.Equal(MustString("ab", NoColor, NoColor)) {
		t.Error("Expected color difference to break equality")
	}
	if a.Equal(MustString("a", tcell.ColorRed, NoColor)) {
		t.Error("Expected length difference to break equality")
	}
	if !BlankString(0).Equal(String{}) {
		t.Error("Expected empty strings to be equal")
	}
}
