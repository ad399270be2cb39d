package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawpad", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "defaults are written back")

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Sketch"
stickers = ["🐸", "  "]

[pen]
thick = 10
color = "red"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sketch", cfg.Title)
	assert.Equal(t, float32(10), cfg.Pen.Thick)
	assert.Equal(t, float32(2), cfg.Pen.Thin)
	assert.Equal(t, "red", cfg.Pen.Color)
	assert.Equal(t, []string{"🐸"}, cfg.Stickers)
	assert.Equal(t, 256, cfg.Canvas.Width)
}

func TestValidateResetsBadValues(t *testing.T) {
	cfg := &Config{
		Canvas:   Canvas{Width: 2, Height: 100000},
		Pen:      Pen{Thin: -1, Color: "plaid"},
		Export:   Export{Scale: 0, Directory: "../../etc"},
		Stickers: []string{" "},
	}
	cfg.Validate()

	d := Default()
	assert.Equal(t, d.Title, cfg.Title)
	assert.Equal(t, d.Canvas, cfg.Canvas)
	assert.Equal(t, d.Pen, cfg.Pen)
	assert.Equal(t, d.Export, cfg.Export)
	assert.Equal(t, d.Web, cfg.Web)
	assert.Equal(t, d.Stickers, cfg.Stickers)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = [unclosed"), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}
