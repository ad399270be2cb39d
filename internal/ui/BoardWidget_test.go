package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawPad/internal/config"
	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

func newBoard(t *testing.T) *BoardWidget {
	t.Helper()
	test.NewTempApp(t)
	b, err := NewBoardWidget(fyne.NewSize(256, 256), 24, pad.Options{})
	require.NoError(t, err)
	return b
}

func mouse(x, y float32) *desktop.MouseEvent {
	e := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	e.Position = fyne.NewPos(x, y)
	return e
}

func drag(x, y float32) *fyne.DragEvent {
	e := &fyne.DragEvent{}
	e.Position = fyne.NewPos(x, y)
	return e
}

func TestBoardWidgetDrawsStroke(t *testing.T) {
	b := newBoard(t)

	b.MouseDown(mouse(10, 10))
	b.Dragged(drag(20, 20))
	b.Dragged(drag(30, 25))
	b.MouseUp(mouse(30, 25))

	drawables := b.Pad().Snapshot()
	require.Len(t, drawables, 1)
	s := drawables[0].(*state.Stroke)
	assert.Equal(t, []state.Point{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 25}}, s.Points())
	assert.False(t, s.Open())
	assert.False(t, b.Pad().Held())

	r := test.WidgetRenderer(b)
	var lines int
	for _, o := range r.Objects() {
		if _, ok := o.(*canvas.Line); ok {
			lines++
		}
	}
	assert.Equal(t, 2, lines)
}

func TestBoardWidgetIgnoresSecondaryButton(t *testing.T) {
	b := newBoard(t)

	e := mouse(10, 10)
	e.Button = desktop.MouseButtonSecondary
	b.MouseDown(e)
	assert.False(t, b.Pad().Held())
	assert.Empty(t, b.Pad().Snapshot())
}

func TestBoardWidgetDragEndReleases(t *testing.T) {
	b := newBoard(t)

	b.MouseDown(mouse(5, 5))
	b.Dragged(drag(15, 5))
	b.DragEnd()
	assert.False(t, b.Pad().Held())

	s := b.Pad().Snapshot()[0].(*state.Stroke)
	assert.False(t, s.Open())
	assert.Equal(t, state.Point{X: 15, Y: 5}, s.Points()[len(s.Points())-1])
}

func TestBoardWidgetHoverPreview(t *testing.T) {
	b := newBoard(t)

	b.MouseIn(mouse(40, 40))
	objs := test.WidgetRenderer(b).Objects()
	require.Len(t, objs, 2)
	_, ok := objs[1].(*canvas.Circle)
	assert.True(t, ok, "pen preview")

	b.MouseOut()
	assert.Len(t, test.WidgetRenderer(b).Objects(), 1)
}

func TestBoardWidgetReportsErrors(t *testing.T) {
	b := newBoard(t)
	var got error
	b.OnError = func(err error) { got = err }

	b.Do(pad.SelectColor{Name: "plaid"})
	assert.True(t, errors.Is(got, state.ErrUnknownColor))
}

func TestToolbarFollowsPad(t *testing.T) {
	b := newBoard(t)
	win := test.NewWindow(nil)
	defer win.Close()
	tb := NewToolbar(b, win, Widths{Thin: 2, Thick: 6})

	assert.True(t, tb.undo.Disabled())
	assert.True(t, tb.redo.Disabled())
	assert.Len(t, tb.stickers.Objects, 4, "three stickers plus the add button")
	assert.Equal(t, "Pen #000000", tb.mode.Text)

	b.Do(pad.SelectSticker{Glyph: "⭐"})
	assert.Equal(t, "Sticker ⭐", tb.mode.Text)
	assert.Equal(t, widget.HighImportance, tb.stickers.Objects[1].(*widget.Button).Importance)

	b.MouseDown(mouse(50, 50))
	b.MouseUp(mouse(50, 50))
	assert.False(t, tb.undo.Disabled())
	assert.Equal(t, "Pen #000000", tb.mode.Text)

	b.Do(pad.Undo{})
	assert.True(t, tb.undo.Disabled())
	assert.False(t, tb.redo.Disabled())

	b.Do(pad.AddCustomSticker{Glyph: "🐸"})
	assert.Len(t, tb.stickers.Objects, 5)
}

func TestNewContentWiresExporters(t *testing.T) {
	test.NewTempApp(t)
	win := test.NewWindow(nil)
	defer win.Close()

	cfg := config.Default()
	cfg.Export.Directory = t.TempDir()
	content, err := NewContent(cfg, win)
	require.NoError(t, err)
	assert.NotNil(t, content)
}
