package pad

import (
	"image/color"

	"DrawPad/internal/state"
)

// Renderer is the drawing surface. A redraw is always Clear, zero or more
// Stroke/Sticker calls in paint order, at most one preview, then Present.
type Renderer interface {
	Clear()
	Stroke(s *state.Stroke)
	Sticker(s *state.Sticker)
	PenPreview(at state.Point, thickness float32, c color.NRGBA)
	StickerPreview(at state.Point, glyph string)
	Present()
}

// Format selects an Exporter.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Exporter writes the committed drawables somewhere outside the pad.
type Exporter interface {
	Export(drawables []state.Drawable) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func([]state.Drawable) error

func (f ExporterFunc) Export(d []state.Drawable) error { return f(d) }

// Paint runs the redraw sequence for drawables on r without previews or
// Present. Exporters that rasterise through a Renderer use it.
func Paint(r Renderer, drawables []state.Drawable) {
	r.Clear()
	for _, d := range drawables {
		switch d := d.(type) {
		case *state.Stroke:
			r.Stroke(d)
		case *state.Sticker:
			r.Sticker(d)
		}
	}
}
