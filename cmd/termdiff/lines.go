package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdiff/diff"
	"github.com/lixenwraith/termdiff/terminal"
)

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Rewrite a few colored lines in place",
	Long:  `Renders a short block at the cursor, then replaces it frame by frame. Only the changed cells are written.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConsole(runLines)
	},
}

func runLines(con terminal.Console) error {
	block := diff.NewLinesAtCursor(con)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	if err := block.RenderDiff(introFrame(cfg.Palette)); err != nil {
		return err
	}
	log.Printf("lines: intro %s", block.Stats())
	time.Sleep(cfg.Delay)

	for i := 0; i < cfg.Frames; i++ {
		block.ResetStats()
		if err := block.RenderDiff(linesFrame(cfg.Palette, i, randomID(rng))); err != nil {
			return err
		}
		log.Printf("lines: frame %d %s", i, block.Stats())
		time.Sleep(cfg.Delay)
	}
	return nil
}
