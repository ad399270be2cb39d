// Package export writes the committed drawing as PNG or PDF.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/software"

	"DrawPad/internal/pad"
	"DrawPad/internal/paint"
	"DrawPad/internal/state"
)

const (
	DefaultScale       = 4
	DefaultPNGFilename = "drawing.png"
)

var ErrNoSaver = errors.New("export: no saver configured")

// PNG rasterises drawables at Scale times the board size using fyne's
// software painter.
type PNG struct {
	Size        fyne.Size
	Scale       float32
	StickerSize float32
	Filename    string
	Saver       Saver
}

var _ pad.Exporter = (*PNG)(nil)

func NewPNG(size fyne.Size, saver Saver) *PNG {
	return &PNG{
		Size:     size,
		Scale:    DefaultScale,
		Filename: DefaultPNGFilename,
		Saver:    saver,
	}
}

// Render paints drawables onto an offscreen surface of Size×Scale pixels.
func (e *PNG) Render(drawables []state.Drawable) image.Image {
	scene := paint.NewScene(e.Size, e.Scale)
	if e.StickerSize > 0 {
		scene.StickerSize = e.StickerSize
	}
	pad.Paint(scene, drawables)
	scene.Present()
	return capture(container.NewWithoutLayout(scene.Objects()...), scene.PixelSize())
}

func (e *PNG) Export(drawables []state.Drawable) error {
	if e.Saver == nil {
		return ErrNoSaver
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, e.Render(drawables)); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	name := e.Filename
	if name == "" {
		name = DefaultPNGFilename
	}
	return e.Saver.Save(name, buf.Bytes())
}

// RasterGlyph renders a single sticker glyph sized to fit at size points.
// The canvas background is keyed out to transparent.
func RasterGlyph(glyph string, size float32) image.Image {
	t := canvas.NewText(glyph, color.Black)
	t.TextSize = size
	m := fyne.MeasureText(glyph, size, t.TextStyle)
	t.Resize(m)
	return keyOut(capture(container.NewWithoutLayout(t), m))
}

// keyOut copies img, making every pixel equal to the top-left one
// transparent.
func keyOut(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	if b.Empty() {
		return out
	}
	key := color.NRGBAModel.Convert(img.At(b.Min.X, b.Min.Y))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y))
			if c == key {
				continue
			}
			out.Set(x, y, c)
		}
	}
	return out
}

func capture(content fyne.CanvasObject, size fyne.Size) image.Image {
	c := software.NewCanvas()
	c.SetPadded(false)
	c.SetContent(content)
	c.Resize(size)
	return c.Capture()
}
