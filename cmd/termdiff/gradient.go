package main

import (
	"log"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdiff/diff"
	"github.com/lixenwraith/termdiff/terminal"
)

var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Scroll a blended color bar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConsole(runGradient)
	},
}

func runGradient(con terminal.Console) error {
	from, _ := colorful.Hex(cfg.Palette.From)
	to, _ := colorful.Hex(cfg.Palette.To)
	caption := hexColor(cfg.Palette.Text)

	block := diff.NewLinesAtCursor(con)
	for i := 0; i < cfg.Frames; i++ {
		block.ResetStats()
		if err := block.RenderDiff(gradientFrame(cfg.Width, i, from, to, caption)); err != nil {
			return err
		}
		log.Printf("gradient: frame %d %s", i, block.Stats())
		time.Sleep(cfg.Delay)
	}
	return block.Clear()
}
