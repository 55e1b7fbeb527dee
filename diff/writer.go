package diff

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termdiff/core"
	"github.com/lixenwraith/termdiff/terminal"
)

// Stats counts the console operations a writer issued
type Stats struct {
	CursorMoves int
	FgSets      int
	BgSets      int
	Runes       int
}

// ColorSets returns FgSets + BgSets
func (s Stats) ColorSets() int {
	return s.FgSets + s.BgSets
}

func (s *Stats) add(o Stats) {
	s.CursorMoves += o.CursorMoves
	s.FgSets += o.FgSets
	s.BgSets += o.BgSets
	s.Runes += o.Runes
}

func (s Stats) String() string {
	return fmt.Sprintf("moves=%d fg=%d bg=%d runes=%d", s.CursorMoves, s.FgSets, s.BgSets, s.Runes)
}

// Writer coalesces cell writes within one pass. It only moves the cursor when
// a write is not directly right of the previous one, and only switches colors
// when they differ from what it last wrote. Obtain one through Coalesce.
type Writer struct {
	con terminal.Console

	// Terminal state captured on acquire
	savedFg      tcell.Color
	savedBg      tcell.Color
	savedVisible bool

	last    Point
	hasLast bool

	lastFg  tcell.Color
	lastBg  tcell.Color
	fgKnown bool
	bgKnown bool

	stats Stats
}

// Coalesce runs fn with a Writer on con. The cursor is hidden for the duration;
// its visibility and both colors are restored on every exit path, panics
// included, and a buffering console is flushed.
func Coalesce(con terminal.Console, fn func(*Writer) error) (err error) {
	w := &Writer{
		con:          con,
		savedFg:      con.Foreground(),
		savedBg:      con.Background(),
		savedVisible: con.CursorVisible(),
	}
	if w.savedVisible {
		if err := con.SetCursorVisible(false); err != nil {
			return fmt.Errorf("hide cursor: %w", err)
		}
	}

	defer func() {
		if rerr := w.release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	return fn(w)
}

func (w *Writer) release() error {
	var errs []error
	if w.con.Foreground() != w.savedFg {
		if err := w.con.SetForeground(w.savedFg); err != nil {
			errs = append(errs, fmt.Errorf("restore foreground: %w", err))
		}
	}
	if w.con.Background() != w.savedBg {
		if err := w.con.SetBackground(w.savedBg); err != nil {
			errs = append(errs, fmt.Errorf("restore background: %w", err))
		}
	}
	if w.con.CursorVisible() != w.savedVisible {
		if err := w.con.SetCursorVisible(w.savedVisible); err != nil {
			errs = append(errs, fmt.Errorf("restore cursor: %w", err))
		}
	}
	if err := terminal.Flush(w.con); err != nil {
		errs = append(errs, fmt.Errorf("flush: %w", err))
	}
	return errors.Join(errs...)
}

// Paint writes c at the given position
func (w *Writer) Paint(at Point, c core.Cell) error {
	if !w.hasLast || at.Y != w.last.Y || at.X != w.last.X+1 {
		if err := w.con.SetCursorPosition(at.X, at.Y); err != nil {
			return err
		}
		w.stats.CursorMoves++
	}

	bg := effective(c.Bg, w.savedBg)
	if !w.bgKnown || bg != w.lastBg {
		if err := w.con.SetBackground(bg); err != nil {
			return err
		}
		w.lastBg, w.bgKnown = bg, true
		w.stats.BgSets++
	}

	// A space shows no foreground
	if c.Rune != ' ' {
		fg := effective(c.Fg, w.savedFg)
		if !w.fgKnown || fg != w.lastFg {
			if err := w.con.SetForeground(fg); err != nil {
				return err
			}
			w.lastFg, w.fgKnown = fg, true
			w.stats.FgSets++
		}
	}

	if err := w.con.WriteRune(c.Rune); err != nil {
		return err
	}
	w.stats.Runes++
	w.last, w.hasLast = at, true
	return nil
}

// Erase writes n blank cells starting at the given position
func (w *Writer) Erase(at Point, n int) error {
	blank := core.Blank()
	for i := 0; i < n; i++ {
		if err := w.Paint(at.Add(i, 0), blank); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the operations issued so far in this pass
func (w *Writer) Stats() Stats {
	return w.stats
}

// effective resolves an unset cell color to the color captured on acquire
func effective(c, saved tcell.Color) tcell.Color {
	if c == core.NoColor {
		return saved
	}
	return c
}
