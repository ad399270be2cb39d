// Package paint renders pad frames as fyne canvas objects.
package paint

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

const DefaultStickerSize = 24

var ghostColor = color.NRGBA{A: 128}

// Scene collects the objects of one frame. Objects returns the last
// presented frame; the frame being built is invisible until Present.
type Scene struct {
	Size        fyne.Size // unscaled board size
	Scale       float32
	StickerSize float32
	Background  color.Color

	// OnPresent is called after a frame is swapped in.
	OnPresent func()

	objects []fyne.CanvasObject
	pending []fyne.CanvasObject
}

var _ pad.Renderer = (*Scene)(nil)

func NewScene(size fyne.Size, scale float32) *Scene {
	return &Scene{
		Size:        size,
		Scale:       scale,
		StickerSize: DefaultStickerSize,
		Background:  color.White,
	}
}

func (s *Scene) scale() float32 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

func (s *Scene) pos(p state.Point) fyne.Position {
	p = p.Scale(s.scale())
	return fyne.NewPos(p.X, p.Y)
}

// PixelSize is the size of the scaled board.
func (s *Scene) PixelSize() fyne.Size {
	f := s.scale()
	return fyne.NewSize(s.Size.Width*f, s.Size.Height*f)
}

func (s *Scene) Clear() {
	bg := canvas.NewRectangle(s.Background)
	bg.Resize(s.PixelSize())
	s.pending = []fyne.CanvasObject{bg}
}

func (s *Scene) Stroke(st *state.Stroke) {
	pts := st.Points()
	width := st.Thickness() * s.scale()
	c := st.Color()

	if len(pts) == 1 {
		s.pending = append(s.pending, s.dot(pts[0], width/2, c))
		return
	}
	for i := 1; i < len(pts); i++ {
		seg := canvas.NewLine(c)
		seg.StrokeWidth = width
		seg.Position1 = s.pos(pts[i-1])
		seg.Position2 = s.pos(pts[i])
		s.pending = append(s.pending, seg)
	}
}

func (s *Scene) Sticker(st *state.Sticker) {
	s.pending = append(s.pending, s.glyph(st.At(), st.Glyph(), color.Black))
}

// PenPreview outlines a circle of radius thickness around the cursor.
func (s *Scene) PenPreview(at state.Point, thickness float32, c color.NRGBA) {
	r := thickness * s.scale()
	center := s.pos(at)
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = c
	ring.StrokeWidth = 1
	ring.Position1 = fyne.NewPos(center.X-r, center.Y-r)
	ring.Position2 = fyne.NewPos(center.X+r, center.Y+r)
	s.pending = append(s.pending, ring)
}

func (s *Scene) StickerPreview(at state.Point, glyph string) {
	s.pending = append(s.pending, s.glyph(at, glyph, ghostColor))
}

func (s *Scene) Present() {
	s.objects = s.pending
	s.pending = nil
	if s.OnPresent != nil {
		s.OnPresent()
	}
}

// Objects returns the objects of the last presented frame.
func (s *Scene) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *Scene) dot(p state.Point, r float32, c color.Color) fyne.CanvasObject {
	if r < 0.5 {
		r = 0.5
	}
	center := s.pos(p)
	d := canvas.NewCircle(c)
	d.Position1 = fyne.NewPos(center.X-r, center.Y-r)
	d.Position2 = fyne.NewPos(center.X+r, center.Y+r)
	return d
}

// glyph centers text on p.
func (s *Scene) glyph(p state.Point, g string, c color.Color) fyne.CanvasObject {
	size := s.StickerSize
	if size <= 0 {
		size = DefaultStickerSize
	}
	size *= s.scale()

	t := canvas.NewText(g, c)
	t.TextSize = size
	m := fyne.MeasureText(g, size, t.TextStyle)
	center := s.pos(p)
	t.Move(fyne.NewPos(center.X-m.Width/2, center.Y-m.Height/2))
	t.Resize(m)
	return t
}
