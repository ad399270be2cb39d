package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, c)

	c, err = ParseColor("#10a0ff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0xa0, B: 0xff, A: 255}, c)
	assert.Equal(t, "#10a0ff", Hex(c))

	_, err = ParseColor("chartreuse")
	assert.ErrorIs(t, err, ErrUnknownColor)
	_, err = ParseColor("#12345")
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestPaletteOrderCoversPalette(t *testing.T) {
	assert.Len(t, PaletteOrder, len(Palette))
	for _, name := range PaletteOrder {
		assert.Contains(t, Palette, name)
	}
}

func TestAddSticker(t *testing.T) {
	ts := NewToolState(2, Palette["black"], DefaultStickers)
	assert.Equal(t, DefaultStickers, ts.Stickers())

	added, err := ts.AddSticker("  🐸 ")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = ts.AddSticker("🐸")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = ts.AddSticker("   ")
	assert.ErrorIs(t, err, ErrEmptyGlyph)

	assert.Equal(t, append(append([]string{}, DefaultStickers...), "🐸"), ts.Stickers())
}

func TestModeGlyph(t *testing.T) {
	ts := NewToolState(2, Palette["black"], nil)
	_, ok := ts.Glyph()
	assert.False(t, ok)
	assert.Equal(t, "draw", ts.Mode.String())

	ts.Mode = StickerMode{Glyph: "⭐"}
	g, ok := ts.Glyph()
	assert.True(t, ok)
	assert.Equal(t, "⭐", g)
	assert.Equal(t, "sticker:⭐", ts.Mode.String())
}
