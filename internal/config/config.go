// Package config loads DrawPad settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"DrawPad/internal/state"
)

// Canvas describes the drawing board.
type Canvas struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	StickerSize float32 `toml:"sticker_size"`
}

// Pen holds the widths behind the Thin/Thick controls and the starting color.
type Pen struct {
	Thin  float32 `toml:"thin"`
	Thick float32 `toml:"thick"`
	Color string  `toml:"color"`
}

// Export configures image export. An empty Directory means "ask".
type Export struct {
	Scale     float32 `toml:"scale"`
	Directory string  `toml:"directory"`
}

// Web configures the browser front-end.
type Web struct {
	Listen    string `toml:"listen"`
	Advertise bool   `toml:"advertise"`
}

type Config struct {
	Title    string   `toml:"title"`
	Canvas   Canvas   `toml:"canvas"`
	Pen      Pen      `toml:"pen"`
	Stickers []string `toml:"stickers"`
	Export   Export   `toml:"export"`
	Web      Web      `toml:"web"`
}

func Default() *Config {
	return &Config{
		Title: "DrawPad",
		Canvas: Canvas{
			Width:       256,
			Height:      256,
			StickerSize: 24,
		},
		Pen: Pen{
			Thin:  2,
			Thick: 6,
			Color: "black",
		},
		Stickers: append([]string(nil), state.DefaultStickers...),
		Export: Export{
			Scale: 4,
		},
		Web: Web{
			Listen: ":8888",
		},
	}
}

// Path returns the default config file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "drawpad", "config.toml")
}

// Load reads path. A missing file yields the defaults, which are written to
// path so the user has something to edit. Invalid values are replaced by
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		_ = cfg.Save(path)
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate resets out-of-range values to their defaults.
func (c *Config) Validate() {
	defaults := Default()

	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.Canvas.Width < 16 || c.Canvas.Width > 4096 {
		c.Canvas.Width = defaults.Canvas.Width
	}
	if c.Canvas.Height < 16 || c.Canvas.Height > 4096 {
		c.Canvas.Height = defaults.Canvas.Height
	}
	if c.Canvas.StickerSize <= 0 {
		c.Canvas.StickerSize = defaults.Canvas.StickerSize
	}
	if c.Pen.Thin <= 0 {
		c.Pen.Thin = defaults.Pen.Thin
	}
	if c.Pen.Thick <= 0 {
		c.Pen.Thick = defaults.Pen.Thick
	}
	if _, err := state.ParseColor(c.Pen.Color); err != nil {
		c.Pen.Color = defaults.Pen.Color
	}
	if c.Export.Scale < 1 || c.Export.Scale > 16 {
		c.Export.Scale = defaults.Export.Scale
	}
	if strings.Contains(c.Export.Directory, "..") {
		c.Export.Directory = defaults.Export.Directory
	}
	if c.Web.Listen == "" {
		c.Web.Listen = defaults.Web.Listen
	}

	stickers := c.Stickers[:0]
	for _, s := range c.Stickers {
		if s = strings.TrimSpace(s); s != "" {
			stickers = append(stickers, s)
		}
	}
	c.Stickers = stickers
	if len(c.Stickers) == 0 {
		c.Stickers = defaults.Stickers
	}
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
