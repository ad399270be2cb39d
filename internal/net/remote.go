package net

import (
	"image/color"
	"log"

	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

const (
	TargetScreen = "screen"
	TargetExport = "export"
)

// RemoteRenderer turns a redraw into one "frame" message for the page.
type RemoteRenderer struct {
	Target      string
	Width       int // unscaled board size
	Height      int
	Scale       float32
	StickerSize float32
	Filename    string

	send func(ServerMessage) error
	ops  []Op
}

var _ pad.Renderer = (*RemoteRenderer)(nil)

func (r *RemoteRenderer) scale() float32 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

func (r *RemoteRenderer) Clear() {
	r.ops = append(r.ops[:0], Op{Op: "clear"})
}

func (r *RemoteRenderer) Stroke(s *state.Stroke) {
	f := r.scale()
	pts := s.Points()
	op := Op{
		Op:     "polyline",
		Points: make([][2]float32, len(pts)),
		Width:  s.Thickness() * f,
		Color:  state.Hex(s.Color()),
	}
	for i, p := range pts {
		p = p.Scale(f)
		op.Points[i] = [2]float32{p.X, p.Y}
	}
	r.ops = append(r.ops, op)
}

func (r *RemoteRenderer) Sticker(s *state.Sticker) {
	r.ops = append(r.ops, r.text(s.At(), s.Glyph(), 1))
}

func (r *RemoteRenderer) PenPreview(at state.Point, thickness float32, c color.NRGBA) {
	f := r.scale()
	at = at.Scale(f)
	r.ops = append(r.ops, Op{
		Op:    "circle",
		X:     at.X,
		Y:     at.Y,
		R:     thickness * f,
		Width: 1,
		Color: state.Hex(c),
	})
}

func (r *RemoteRenderer) StickerPreview(at state.Point, glyph string) {
	r.ops = append(r.ops, r.text(at, glyph, 0.5))
}

func (r *RemoteRenderer) Present() {
	f := r.scale()
	msg := ServerMessage{
		Type:     "frame",
		Target:   r.Target,
		Width:    int(float32(r.Width) * f),
		Height:   int(float32(r.Height) * f),
		Filename: r.Filename,
		Ops:      append([]Op(nil), r.ops...),
	}
	r.ops = r.ops[:0]
	if r.send == nil {
		return
	}
	if err := r.send(msg); err != nil {
		log.Printf("[WS] send %s frame: %v", r.Target, err)
	}
}

func (r *RemoteRenderer) text(at state.Point, glyph string, alpha float32) Op {
	f := r.scale()
	size := r.StickerSize
	if size <= 0 {
		size = 24
	}
	at = at.Scale(f)
	return Op{
		Op:    "text",
		X:     at.X,
		Y:     at.Y,
		Glyph: glyph,
		Size:  size * f,
		Alpha: alpha,
	}
}

// browserPNG exports by sending a scaled frame that the page paints on an
// offscreen canvas and downloads.
type browserPNG struct {
	r *RemoteRenderer
}

func (e browserPNG) Export(drawables []state.Drawable) error {
	pad.Paint(e.r, drawables)
	e.r.Present()
	return nil
}
