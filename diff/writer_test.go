package diff

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termdiff/core"
	"github.com/lixenwraith/termdiff/terminal"
)

func TestWriterAdjacentCellsCoalesce(t *testing.T) {
	con := terminal.NewMockConsole(24)
	cell := core.MustCell('x', tcell.ColorRed, tcell.ColorBlue)

	var afterFirst, afterSecond Stats
	err := Coalesce(con, func(w *Writer) error {
		if err := w.Paint(Point{X: 3, Y: 0}, cell); err != nil {
			return err
		}
		afterFirst = w.Stats()
		if err := w.Paint(Point{X: 4, Y: 0}, cell); err != nil {
			return err
		}
		afterSecond = w.Stats()
		return nil
	})
	if err != nil {
		t.Fatalf("Coalesce failed: %v", err)
	}

	if afterSecond.CursorMoves != 1 {
		t.Errorf("Expected 1 cursor move, got %d", afterSecond.CursorMoves)
	}
	if afterSecond.Runes != 2 {
		t.Errorf("Expected 2 rune writes, got %d", afterSecond.Runes)
	}
	if extra := afterSecond.ColorSets() - afterFirst.ColorSets(); extra != 0 {
		t.Errorf("Expected no extra color sets for the second cell, got %d", extra)
	}
	if got := con.CellAt(4, 0); got.Rune != 'x' || got.Fg != tcell.ColorRed || got.Bg != tcell.ColorBlue {
		t.Errorf("Expected red-on-blue 'x' at (4,0), got %+v", got)
	}
}

func TestWriterMovesOnGap(t *testing.T) {
	con := terminal.NewMockConsole(24)
	cell := core.MustCell('x', core.NoColor, core.NoColor)

	Coalesce(con, func(w *Writer) error {
		w.Paint(Point{X: 0, Y: 0}, cell)
		w.Paint(Point{X: 2, Y: 0}, cell) // gap
		w.Paint(Point{X: 3, Y: 1}, cell) // next row
		w.Paint(Point{X: 4, Y: 1}, cell)
		if w.Stats().CursorMoves != 3 {
			t.Errorf("Expected 3 cursor moves, got %d", w.Stats().CursorMoves)
		}
		return nil
	})
}

func TestWriterSpaceSkipsForeground(t *testing.T) {
	con := terminal.NewMockConsole(24)

	Coalesce(con, func(w *Writer) error {
		w.Paint(Point{X: 0}, core.MustCell('a', tcell.ColorRed, core.NoColor))
		before := w.Stats()
		w.Paint(Point{X: 1}, core.MustCell(' ', tcell.ColorGreen, core.NoColor))
		after := w.Stats()

		if after.FgSets != before.FgSets {
			t.Errorf("Expected space not to change foreground, got %d extra", after.FgSets-before.FgSets)
		}
		if after.BgSets != before.BgSets {
			t.Errorf("Expected unchanged background to be skipped, got %d extra", after.BgSets-before.BgSets)
		}

		// A later visible character still gets its color
		w.Paint(Point{X: 2}, core.MustCell('b', tcell.ColorGreen, core.NoColor))
		if w.Stats().FgSets != before.FgSets+1 {
			t.Errorf("Expected one foreground set for 'b', got %d", w.Stats().FgSets-before.FgSets)
		}
		return nil
	})
}

func TestWriterBackgroundChangeOnSpace(t *testing.T) {
	con := terminal.NewMockConsole(24)

	Coalesce(con, func(w *Writer) error {
		w.Paint(Point{X: 0}, core.MustCell(' ', core.NoColor, tcell.ColorWhite))
		w.Paint(Point{X: 1}, core.MustCell(' ', core.NoColor, tcell.ColorBlack))
		if w.Stats().BgSets != 2 {
			t.Errorf("Expected 2 background sets, got %d", w.Stats().BgSets)
		}
		return nil
	})
	if got := con.CellAt(1, 0).Bg; got != tcell.ColorBlack {
		t.Errorf("Expected black background at (1,0), got %v", got)
	}
}

func TestWriterUnsetColorsInheritCaptured(t *testing.T) {
	con := terminal.NewMockConsole(24)
	con.SetForeground(tcell.ColorYellow)
	con.SetBackground(tcell.ColorNavy)

	Coalesce(con, func(w *Writer) error {
		return w.Paint(Point{}, core.MustCell('q', core.NoColor, core.NoColor))
	})

	got := con.CellAt(0, 0)
	if got.Fg != tcell.ColorYellow || got.Bg != tcell.ColorNavy {
		t.Errorf("Expected captured colors, got fg=%v bg=%v", got.Fg, got.Bg)
	}
}

func TestWriterRestoresState(t *testing.T) {
	con := terminal.NewMockConsole(24)
	con.SetForeground(tcell.ColorSilver)

	err := Coalesce(con, func(w *Writer) error {
		if con.CursorVisible() {
			t.Error("Expected cursor hidden during the pass")
		}
		return w.Paint(Point{X: 1, Y: 1}, core.MustCell('z', tcell.ColorRed, tcell.ColorGreen))
	})
	if err != nil {
		t.Fatalf("Coalesce failed: %v", err)
	}

	if !con.CursorVisible() {
		t.Error("Expected cursor visibility restored")
	}
	if con.Foreground() != tcell.ColorSilver || con.Background() != tcell.ColorReset {
		t.Errorf("Expected colors restored, got fg=%v bg=%v", con.Foreground(), con.Background())
	}
	if con.Flushes != 1 {
		t.Errorf("Expected 1 flush, got %d", con.Flushes)
	}
}

func TestWriterKeepsHiddenCursorHidden(t *testing.T) {
	con := terminal.NewMockConsole(24)
	con.SetCursorVisible(false)
	con.ResetCounters()

	Coalesce(con, func(w *Writer) error {
		return w.Paint(Point{}, core.Blank())
	})
	if con.CursorVisible() || con.VisibilityChanges != 0 {
		t.Errorf("Expected hidden cursor left alone, changes=%d", con.VisibilityChanges)
	}
}

func TestWriterRestoresOnError(t *testing.T) {
	con := terminal.NewMockConsole(24)
	con.FailAfter(1)

	err := Coalesce(con, func(w *Writer) error {
		if err := w.Paint(Point{}, core.MustCell('a', tcell.ColorRed, tcell.ColorRed)); err != nil {
			return err
		}
		return w.Paint(Point{X: 1}, core.MustCell('b', tcell.ColorRed, tcell.ColorRed))
	})
	if !errors.Is(err, terminal.ErrMockWriteFailed) {
		t.Fatalf("Expected write failure, got %v", err)
	}
	if !con.CursorVisible() {
		t.Error("Expected cursor visibility restored after error")
	}
	if con.Foreground() != tcell.ColorReset || con.Background() != tcell.ColorReset {
		t.Errorf("Expected colors restored after error, got fg=%v bg=%v", con.Foreground(), con.Background())
	}
}

func TestWriterRestoresOnPanic(t *testing.T) {
	con := terminal.NewMockConsole(24)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic to propagate")
			}
		}()
		Coalesce(con, func(w *Writer) error {
			w.Paint(Point{}, core.MustCell('a', tcell.ColorRed, tcell.ColorBlue))
			panic("boom")
		})
	}()

	if !con.CursorVisible() {
		t.Error("Expected cursor visibility restored after panic")
	}
	if con.Background() != tcell.ColorReset {
		t.Errorf("Expected background restored after panic, got %v", con.Background())
	}
}

func TestWriterEraseIsOneRun(t *testing.T) {
	con := terminal.NewMockConsole(24)
	con.SetBackground(tcell.ColorMaroon)
	con.ResetCounters()

	Coalesce(con, func(w *Writer) error {
		if err := w.Erase(Point{X: 5, Y: 2}, 4); err != nil {
			t.Fatalf("Erase failed: %v", err)
		}
		s := w.Stats()
		if s.CursorMoves != 1 || s.Runes != 4 || s.FgSets != 0 {
			t.Errorf("Expected 1 move, 4 runes, no fg sets, got %s", s)
		}
		return nil
	})

	for x := 5; x < 9; x++ {
		if got := con.CellAt(x, 2); got.Rune != ' ' || got.Bg != tcell.ColorMaroon {
			t.Errorf("Expected blank with captured background at (%d,2), got %+v", x, got)
		}
	}
}
