package state

import (
	"image/color"
)

type Point struct{ X, Y float32 }

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float32) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Drawable is one unit of history: a *Stroke or a *Sticker.
type Drawable interface {
	ID() string
	drawable()
}

// Stroke is a connected polyline drawn while the pointer is held. Thickness
// and color are captured when the stroke begins and never change.
type Stroke struct {
	id        string
	points    []Point
	thickness float32
	color     color.NRGBA
	open      bool
}

func (s *Stroke) ID() string { return s.id }
func (*Stroke) drawable()    {}

// Points returns the recorded samples in drawing order. Callers must not
// modify the returned slice.
func (s *Stroke) Points() []Point {
	return s.points[:len(s.points):len(s.points)]
}

func (s *Stroke) Thickness() float32 { return s.thickness }

func (s *Stroke) Color() color.NRGBA { return s.color }

// Open reports whether the stroke still accepts points.
func (s *Stroke) Open() bool { return s.open }

// Sticker is an emoji glyph placed at a fixed point.
type Sticker struct {
	id    string
	glyph string
	at    Point
}

func (s *Sticker) ID() string { return s.id }
func (*Sticker) drawable()    {}

func (s *Sticker) Glyph() string { return s.glyph }

func (s *Sticker) At() Point { return s.at }

var (
	_ Drawable = (*Stroke)(nil)
	_ Drawable = (*Sticker)(nil)
)
