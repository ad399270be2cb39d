package state

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"
)

var (
	ErrUnknownColor = errors.New("state: unknown color")
	ErrEmptyGlyph   = errors.New("state: empty sticker glyph")
)

// Mode is the active tool: DrawMode or StickerMode. Exactly one is active.
type Mode interface {
	mode()
	String() string
}

type DrawMode struct{}

// StickerMode places Glyph on the next pointer-up.
type StickerMode struct {
	Glyph string
}

func (DrawMode) mode()    {}
func (StickerMode) mode() {}

func (DrawMode) String() string      { return "draw" }
func (m StickerMode) String() string { return "sticker:" + m.Glyph }

// Palette maps color names to colors. Names are what tool controls send.
var Palette = map[string]color.NRGBA{
	"black":  {A: 255},
	"red":    {R: 255, A: 255},
	"green":  {G: 180, A: 255},
	"blue":   {B: 255, A: 255},
	"purple": {R: 150, B: 255, A: 255},
	"orange": {R: 255, G: 140, A: 255},
}

// PaletteOrder is the display order of Palette.
var PaletteOrder = []string{"black", "red", "green", "blue", "purple", "orange"}

var DefaultStickers = []string{"🙂", "⭐", "❤️"}

// ParseColor resolves a palette name or a "#rrggbb" hex string.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := Palette[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Hex formats c as "#rrggbb".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToolState is the pen and sticker selection plus the live cursor used for
// previews.
type ToolState struct {
	Mode      Mode
	Thickness float32
	Color     color.NRGBA

	Cursor        Point
	CursorVisible bool

	stickers []string
}

func NewToolState(thickness float32, c color.NRGBA, stickers []string) *ToolState {
	t := &ToolState{
		Mode:      DrawMode{},
		Thickness: thickness,
		Color:     c,
	}
	for _, g := range stickers {
		_, _ = t.AddSticker(g)
	}
	return t
}

// Stickers returns the sticker palette in insertion order.
func (t *ToolState) Stickers() []string {
	return slices.Clone(t.stickers)
}

// AddSticker appends glyph to the sticker palette. It reports whether the
// palette changed; a glyph already present is not added twice.
func (t *ToolState) AddSticker(glyph string) (bool, error) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return false, ErrEmptyGlyph
	}
	if slices.Contains(t.stickers, glyph) {
		return false, nil
	}
	t.stickers = append(t.stickers, glyph)
	return true, nil
}

// Glyph returns the selected sticker glyph, if a sticker tool is active.
func (t *ToolState) Glyph() (string, bool) {
	if m, ok := t.Mode.(StickerMode); ok {
		return m.Glyph, true
	}
	return "", false
}
