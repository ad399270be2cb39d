package paint

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

func drawables(t *testing.T) []state.Drawable {
	t.Helper()
	h := state.NewHistory()
	hd := h.BeginStroke(state.Point{X: 0, Y: 0}, 2, color.NRGBA{R: 255, A: 255})
	require.NoError(t, h.ExtendStroke(hd, state.Point{X: 4, Y: 4}))
	require.NoError(t, h.ExtendStroke(hd, state.Point{X: 8, Y: 0}))
	h.BeginStroke(state.Point{X: 20, Y: 20}, 3, color.NRGBA{A: 255})
	h.PlaceSticker("⭐", state.Point{X: 50, Y: 50})
	return h.Snapshot()
}

func TestSceneScalesStrokes(t *testing.T) {
	test.NewTempApp(t)

	s := NewScene(fyne.NewSize(256, 256), 4)
	pad.Paint(s, drawables(t))
	assert.Empty(t, s.Objects(), "nothing visible before Present")
	s.Present()

	objs := s.Objects()
	// background, two segments, one dot, one sticker
	require.Len(t, objs, 5)

	bg, ok := objs[0].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewSize(1024, 1024), bg.Size())

	seg, ok := objs[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(0, 0), seg.Position1)
	assert.Equal(t, fyne.NewPos(16, 16), seg.Position2)
	assert.Equal(t, float32(8), seg.StrokeWidth)

	dot, ok := objs[3].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(74, 74), dot.Position1)
	assert.Equal(t, fyne.NewPos(86, 86), dot.Position2)

	txt, ok := objs[4].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "⭐", txt.Text)
	assert.Equal(t, float32(DefaultStickerSize*4), txt.TextSize)
}

func TestScenePreviews(t *testing.T) {
	test.NewTempApp(t)

	presented := 0
	s := NewScene(fyne.NewSize(256, 256), 1)
	s.OnPresent = func() { presented++ }

	s.Clear()
	s.PenPreview(state.Point{X: 10, Y: 10}, 5, color.NRGBA{B: 255, A: 255})
	s.Present()
	require.Len(t, s.Objects(), 2)
	ring := s.Objects()[1].(*canvas.Circle)
	assert.Equal(t, fyne.NewPos(5, 5), ring.Position1)
	assert.Equal(t, fyne.NewPos(15, 15), ring.Position2)
	assert.Equal(t, color.Color(color.NRGBA{B: 255, A: 255}), ring.StrokeColor)

	s.Clear()
	s.StickerPreview(state.Point{X: 10, Y: 10}, "🙂")
	s.Present()
	require.Len(t, s.Objects(), 2)
	ghost := s.Objects()[1].(*canvas.Text)
	assert.Equal(t, color.Color(ghostColor), ghost.Color)

	assert.Equal(t, 2, presented)
}
