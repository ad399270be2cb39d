package pad

import "DrawPad/internal/state"

// Event is a pointer event or a tool command. Events are handled strictly in
// the order they are dispatched.
type Event interface {
	event()
}

// Pointer events, in canvas-local coordinates.
type (
	PointerDown  struct{ At state.Point }
	PointerMove  struct{ At state.Point }
	PointerUp    struct{ At state.Point }
	PointerLeave struct{}
)

// Tool commands.
type (
	SelectDraw  struct{}
	SelectWidth struct{ Width float32 }
	SelectColor struct{ Name string }

	SelectSticker struct{ Glyph string }

	// AddCustomSticker adds Glyph to the sticker palette. Front-ends send
	// it only when the user confirmed the prompt.
	AddCustomSticker struct{ Glyph string }

	Undo   struct{}
	Redo   struct{}
	Clear  struct{}
	Export struct{ Format Format }
)

func (PointerDown) event()      {}
func (PointerMove) event()      {}
func (PointerUp) event()        {}
func (PointerLeave) event()     {}
func (SelectDraw) event()       {}
func (SelectWidth) event()      {}
func (SelectColor) event()      {}
func (SelectSticker) event()    {}
func (AddCustomSticker) event() {}
func (Undo) event()             {}
func (Redo) event()             {}
func (Clear) event()            {}
func (Export) event()           {}
