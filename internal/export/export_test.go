package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawPad/internal/state"
)

type memSaver struct {
	name string
	data []byte
}

func (m *memSaver) Save(name string, data []byte) error {
	m.name, m.data = name, data
	return nil
}

func diagonal(t *testing.T) []state.Drawable {
	t.Helper()
	h := state.NewHistory()
	hd := h.BeginStroke(state.Point{X: 0, Y: 0}, 2, color.NRGBA{R: 255, A: 255})
	require.NoError(t, h.ExtendStroke(hd, state.Point{X: 4, Y: 4}))
	h.EndStroke(hd)
	return h.Snapshot()
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}

func TestPNGExportScalesStroke(t *testing.T) {
	test.NewTempApp(t)

	saver := &memSaver{}
	e := NewPNG(fyne.NewSize(256, 256), saver)
	require.NoError(t, e.Export(diagonal(t)))
	assert.Equal(t, "drawing.png", saver.name)

	img, err := png.Decode(bytes.NewReader(saver.data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1024, 1024), img.Bounds())

	// The 4x stroke runs from (0,0) to (16,16) with width 8.
	r, g, b, _ := img.At(8, 8).RGBA()
	assert.Greater(t, r, uint32(0xc000))
	assert.Less(t, g, uint32(0x4000))
	assert.Less(t, b, uint32(0x4000))

	assert.True(t, isWhite(img.At(30, 30)), "past the end of the stroke")
	assert.True(t, isWhite(img.At(14, 2)), "off the stroke")
	assert.True(t, isWhite(img.At(600, 600)))
}

func TestPNGExportNeedsSaver(t *testing.T) {
	e := NewPNG(fyne.NewSize(256, 256), nil)
	assert.ErrorIs(t, e.Export(nil), ErrNoSaver)
}

func TestPDFExport(t *testing.T) {
	h := state.NewHistory()
	hd := h.BeginStroke(state.Point{X: 10, Y: 10}, 3, color.NRGBA{B: 255, A: 255})
	require.NoError(t, h.ExtendStroke(hd, state.Point{X: 100, Y: 40}))
	h.BeginStroke(state.Point{X: 5, Y: 5}, 4, color.NRGBA{A: 255})
	h.PlaceSticker("🙂", state.Point{X: 50, Y: 50})

	saver := &memSaver{}
	e := NewPDF(fyne.NewSize(256, 256), saver)
	require.NoError(t, e.Export(h.Snapshot()))
	assert.Equal(t, "drawing.pdf", saver.name)
	assert.True(t, bytes.HasPrefix(saver.data, []byte("%PDF-")))
}

func TestPDFEmbedsGlyphImages(t *testing.T) {
	h := state.NewHistory()
	h.PlaceSticker("⭐", state.Point{X: 20, Y: 20})
	h.PlaceSticker("⭐", state.Point{X: 80, Y: 80})

	calls := 0
	e := NewPDF(fyne.NewSize(256, 256), nil)
	e.Glyphs = func(string, float32) image.Image {
		calls++
		img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
		img.Set(4, 4, color.Black)
		return img
	}
	data, err := e.Write(h.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "each glyph is registered once")
	assert.Contains(t, string(data), "/Subtype /Image")
}

func TestDirSaver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, DirSaver{Dir: dir}.Save("../drawing.png", []byte("x")))

	got, err := os.ReadFile(filepath.Join(dir, "drawing.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}

func TestKeyOut(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.White)
	src.Set(1, 0, color.Black)

	out := keyOut(src)
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{A: 255}, out.NRGBAAt(1, 0))
}
