package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termdiff/core"
)

// introFrame is the two-line frame the lines demo starts from
func introFrame(pal Palette) core.Lines {
	return core.NewLines(
		core.MustString("termdiff", hexColor(pal.Accent), core.NoColor),
		core.MustString("diffing in place...", hexColor(pal.Text), core.NoColor),
	)
}

// linesFrame shows a header, a changing id and a frame counter. Only the id
// and the counter digits differ between consecutive frames.
func linesFrame(pal Palette, frame int, id string) core.Lines {
	text, accent := hexColor(pal.Text), hexColor(pal.Accent)

	var l core.Lines
	l.AppendLine(core.MustString("termdiff", accent, core.NoColor))
	l.AppendLine(core.MustString("id    ", text, core.NoColor)).
		AppendStringToLastLine(core.MustString(id, accent, core.NoColor))
	l.AppendLine(core.MustString(fmt.Sprintf("frame %d", frame), text, core.NoColor))
	return l
}

// randomID formats 128 random bits as 8-4-4-4-12 hex groups
func randomID(r *rand.Rand) string {
	hi, lo := r.Uint64(), r.Uint64()
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		hi>>32, (hi>>16)&0xffff, hi&0xffff, lo>>48, lo&0xffffffffffff)
}

// boardFrame is a size x size checkerboard of two-column cells
func boardFrame(size int, inverted bool, light, dark tcell.Color) core.Lines {
	var l core.Lines
	for y := 0; y < size; y++ {
		row := core.BlankString(0)
		for x := 0; x < size; x++ {
			bg := light
			if ((x+y)%2 == 0) != inverted {
				bg = dark
			}
			cell := core.Blank().WithBg(bg)
			row.Append(cell, cell)
		}
		l.AppendLine(row)
	}
	return l
}

// gradientFrame is a bar blending from -> to -> from, scrolled by step, over a caption
func gradientFrame(width, step int, from, to colorful.Color, caption tcell.Color) core.Lines {
	bar := core.BlankString(0)
	period := 2 * width
	for x := 0; x < width; x++ {
		pos := (x + step) % period
		if pos >= width {
			pos = period - pos - 1
		}
		t := 0.0
		if width > 1 {
			t = float64(pos) / float64(width-1)
		}
		bar.Append(core.Blank().WithBg(colorfulToTcell(from.BlendLab(to, t))))
	}

	var l core.Lines
	l.AppendLine(bar)
	l.AppendLine(core.MustString(fmt.Sprintf("step %d", step), caption, core.NoColor))
	return l
}
