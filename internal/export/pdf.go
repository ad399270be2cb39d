package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"fyne.io/fyne/v2"
	"github.com/jung-kurt/gofpdf"

	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

const DefaultPDFFilename = "drawing.pdf"

// GlyphRasterizer renders a sticker glyph to an image. PDF core fonts have
// no emoji, so stickers are embedded as images.
type GlyphRasterizer func(glyph string, size float32) image.Image

// PDF writes strokes as vector paths on a page the size of the board, one
// point per board pixel.
type PDF struct {
	Size        fyne.Size
	StickerSize float32
	Filename    string
	Saver       Saver

	// Glyphs rasterises stickers. When nil a sticker is drawn as a small
	// outlined circle.
	Glyphs GlyphRasterizer
}

var _ pad.Exporter = (*PDF)(nil)

func NewPDF(size fyne.Size, saver Saver) *PDF {
	return &PDF{
		Size:        size,
		StickerSize: 24,
		Filename:    DefaultPDFFilename,
		Saver:       saver,
	}
}

// Write renders drawables into a PDF document.
func (e *PDF) Write(drawables []state.Drawable) ([]byte, error) {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(e.Size.Width), Ht: float64(e.Size.Height)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	registered := make(map[string]bool)
	for _, d := range drawables {
		switch d := d.(type) {
		case *state.Stroke:
			e.stroke(p, d)
		case *state.Sticker:
			if err := e.sticker(p, d, registered); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDF) Export(drawables []state.Drawable) error {
	if e.Saver == nil {
		return ErrNoSaver
	}
	data, err := e.Write(drawables)
	if err != nil {
		return err
	}
	name := e.Filename
	if name == "" {
		name = DefaultPDFFilename
	}
	return e.Saver.Save(name, data)
}

func (e *PDF) stroke(p *gofpdf.Fpdf, s *state.Stroke) {
	c := s.Color()
	pts := s.Points()
	w := float64(s.Thickness())

	if len(pts) == 1 {
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		p.Circle(float64(pts[0].X), float64(pts[0].Y), w/2, "F")
		return
	}
	p.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.SetLineWidth(w)
	p.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float64(pt.X), float64(pt.Y))
	}
	p.DrawPath("D")
}

func (e *PDF) sticker(p *gofpdf.Fpdf, s *state.Sticker, registered map[string]bool) error {
	at := s.At()
	size := float64(e.StickerSize)
	if e.Glyphs == nil {
		p.SetDrawColor(0, 0, 0)
		p.SetLineWidth(1)
		p.Circle(float64(at.X), float64(at.Y), size/2, "D")
		return nil
	}

	name := fmt.Sprintf("sticker-%x", s.Glyph())
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	if !registered[name] {
		var buf bytes.Buffer
		// Rasterise at 4x so the image stays sharp when zoomed.
		if err := png.Encode(&buf, e.Glyphs(s.Glyph(), e.StickerSize*4)); err != nil {
			return fmt.Errorf("export: encode sticker %q: %w", s.Glyph(), err)
		}
		p.RegisterImageOptionsReader(name, opts, &buf)
		if err := p.Error(); err != nil {
			return fmt.Errorf("export: register sticker %q: %w", s.Glyph(), err)
		}
		registered[name] = true
	}
	info := p.GetImageInfo(name)
	w, h := size, size
	if info != nil && info.Width() > 0 {
		h = size * info.Height() / info.Width()
	}
	p.ImageOptions(name, float64(at.X)-w/2, float64(at.Y)-h/2, w, h, false, opts, 0, "")
	return nil
}
