package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdiff/diff"
	"github.com/lixenwraith/termdiff/terminal"
)

var boardSizeFlag int

func init() {
	boardCmd.Flags().IntVar(&boardSizeFlag, "size", 0, "Board size in cells (default from config)")
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Draw a checkerboard, invert it, then clear it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if boardSizeFlag > 0 {
			cfg.BoardSize = boardSizeFlag
		}
		return withConsole(runBoard)
	},
}

func runBoard(con terminal.Console) error {
	block := diff.NewLinesAtCursor(con)
	light, dark := hexColor(cfg.Palette.Light), hexColor(cfg.Palette.Dark)

	steps := []struct {
		name string
		draw func() error
	}{
		{"board", func() error { return block.RenderDiff(boardFrame(cfg.BoardSize, false, light, dark)) }},
		{"inverted", func() error { return block.RenderDiff(boardFrame(cfg.BoardSize, true, light, dark)) }},
		{"clear", block.Clear},
	}

	for _, step := range steps {
		block.ResetStats()
		start := time.Now()
		if err := step.draw(); err != nil {
			return err
		}
		log.Printf("board: %s in %v, %s", step.name, time.Since(start), block.Stats())
		time.Sleep(cfg.Delay * 4)
	}
	return nil
}
