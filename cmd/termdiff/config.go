package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds demo settings loaded from an optional TOML file and overridden by flags
type Config struct {
	Backend   string        `toml:"backend"`
	Color     string        `toml:"color"`
	Frames    int           `toml:"frames"`
	Delay     time.Duration `toml:"delay"`
	BoardSize int           `toml:"board_size"`
	Width     int           `toml:"width"`
	Palette   Palette       `toml:"palette"`
}

// Palette colors are hex strings such as "#ff8800"
type Palette struct {
	Text   string `toml:"text"`
	Accent string `toml:"accent"`
	Light  string `toml:"light"`
	Dark   string `toml:"dark"`
	From   string `toml:"from"`
	To     string `toml:"to"`
}

func defaultConfig() Config {
	return Config{
		Backend:   "ansi",
		Color:     "auto",
		Frames:    20,
		Delay:     150 * time.Millisecond,
		BoardSize: 16,
		Width:     48,
		Palette: Palette{
			Text:   "#d0d0d0",
			Accent: "#ffaf00",
			Light:  "#ffffff",
			Dark:   "#000000",
			From:   "#1e3c72",
			To:     "#ff6f61",
		},
	}
}

// loadConfig returns the defaults overlaid with path, when given. Unknown keys are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Backend {
	case "ansi", "tcell":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Frames < 0 || c.BoardSize < 1 || c.Width < 1 {
		return fmt.Errorf("frames, board_size and width must be positive")
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative")
	}
	for _, hex := range []string{c.Palette.Text, c.Palette.Accent, c.Palette.Light, c.Palette.Dark, c.Palette.From, c.Palette.To} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
	}
	return nil
}

// hexColor converts a validated hex string to a tcell color
func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorReset
	}
	return colorfulToTcell(c)
}

func colorfulToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
