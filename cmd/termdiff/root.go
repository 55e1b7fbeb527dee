package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdiff/terminal"
)

var (
	configFlag  string
	backendFlag string
	colorFlag   string
	framesFlag  int
	delayFlag   time.Duration
	debugFlag   bool

	cfg     Config
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "termdiff",
	Short: "Diff-rendering demos for colored terminal text",
	Long: `termdiff renders frames of colored text and writes only the cells that
changed since the previous frame.

Examples:
  termdiff lines                    # Update a few lines in place
  termdiff board --size 24          # Checkerboard, inverted, then cleared
  termdiff gradient --backend tcell # Animated color bar on a tcell screen`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "TOML config file")
	flags.StringVar(&backendFlag, "backend", "ansi", "Console backend: ansi, tcell")
	flags.StringVar(&colorFlag, "color", "auto", "Color mode: auto, truecolor, 256, 16, none")
	flags.IntVar(&framesFlag, "frames", 20, "Number of animation frames")
	flags.DurationVar(&delayFlag, "delay", 150*time.Millisecond, "Delay between frames")
	flags.BoolVar(&debugFlag, "debug", false, "Write per-frame stats to logs/termdiff.log")

	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(gradientCmd)
}

// setup loads the config file, then applies explicitly set flags on top
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(configFlag)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		loaded.Backend = backendFlag
	}
	if flags.Changed("color") {
		loaded.Color = colorFlag
	}
	if flags.Changed("frames") {
		loaded.Frames = framesFlag
	}
	if flags.Changed("delay") {
		loaded.Delay = delayFlag
	}
	if err := loaded.validate(); err != nil {
		return err
	}
	cfg = loaded

	logFile = setupLogging(debugFlag)
	log.Printf("termdiff %s: backend=%s color=%s frames=%d", cmd.Name(), cfg.Backend, cfg.Color, cfg.Frames)
	return nil
}

// openConsole creates the configured console; close restores the terminal
func openConsole(conf Config) (terminal.Console, func() error, error) {
	mode, err := terminal.ParseColorMode(conf.Color)
	if err != nil {
		return nil, nil, err
	}

	switch conf.Backend {
	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("tcell screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, nil, fmt.Errorf("tcell init: %w", err)
		}
		screen.Clear()
		return terminal.NewScreenConsole(screen), func() error {
			screen.Fini()
			return nil
		}, nil

	default:
		tty, err := terminal.OpenTTY(os.Stdin, os.Stdout, terminal.WithColorMode(mode))
		if errors.Is(err, terminal.ErrNoCursorReport) {
			// Frames would land on top of whatever is on screen
			fmt.Fprintln(os.Stderr, "termdiff: terminal did not report the cursor position; drawing from the top-left corner")
			log.Printf("cursor query failed: %v", err)
			tty, err = terminal.OpenTTY(os.Stdin, os.Stdout, terminal.WithColorMode(mode), terminal.WithCursor(0, 0))
		}
		if err != nil {
			return nil, nil, err
		}
		return tty, tty.Close, nil
	}
}

// withConsole opens a console, runs fn and always restores the terminal
func withConsole(fn func(con terminal.Console) error) (err error) {
	con, closeConsole, err := openConsole(cfg)
	if err != nil {
		return err
	}
	crashConsole = closeConsole
	defer func() {
		crashConsole = nil
		if cerr := closeConsole(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(con)
}
