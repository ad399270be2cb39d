package state

import (
	"errors"
	"image/color"
)

// ErrStaleHandle is returned when a StrokeHandle no longer names the most
// recent open stroke.
var ErrStaleHandle = errors.New("state: stroke handle is not the current open stroke")

// ChangeKind says which History operation produced a Change.
type ChangeKind int

const (
	ChangeBegin ChangeKind = iota
	ChangeExtend
	ChangeEnd
	ChangePlace
	ChangeUndo
	ChangeRedo
	ChangeClear
)

var changeNames = [...]string{"begin", "extend", "end", "place", "undo", "redo", "clear"}

func (k ChangeKind) String() string {
	if int(k) < len(changeNames) {
		return changeNames[k]
	}
	return "unknown"
}

// Change describes one history mutation.
type Change struct {
	Seq  uint64
	Kind ChangeKind
	ID   string // drawable affected, empty for ChangeClear
}

// StrokeHandle names a stroke returned by BeginStroke.
type StrokeHandle struct {
	id string
}

func (h StrokeHandle) ID() string { return h.id }

// History is a linear undo/redo log of drawables. committed is in paint
// order; redo holds undone drawables with the most recently undone last.
// It is not safe for concurrent use.
type History struct {
	committed []Drawable
	redo      []Drawable

	// OnChange is called synchronously after every mutation.
	OnChange func(Change)
}

func NewHistory() *History {
	return &History{
		committed: make([]Drawable, 0),
		redo:      make([]Drawable, 0),
	}
}

func (h *History) emit(kind ChangeKind, id string) {
	if h.OnChange != nil {
		h.OnChange(Change{Seq: nextSequence(), Kind: kind, ID: id})
	}
}

func (h *History) commit(d Drawable) {
	h.committed = append(h.committed, d)
	// A new commit discards the undone branch.
	clear(h.redo)
	h.redo = h.redo[:0]
}

// BeginStroke starts a stroke at p and commits it.
func (h *History) BeginStroke(p Point, thickness float32, c color.NRGBA) StrokeHandle {
	h.closeOpen()
	s := &Stroke{
		id:        newID("stroke"),
		points:    []Point{p},
		thickness: thickness,
		color:     c,
		open:      true,
	}
	h.commit(s)
	h.emit(ChangeBegin, s.id)
	return StrokeHandle{id: s.id}
}

// ExtendStroke appends p to the stroke named by handle.
func (h *History) ExtendStroke(handle StrokeHandle, p Point) error {
	s := h.openStroke(handle)
	if s == nil {
		return ErrStaleHandle
	}
	s.points = append(s.points, p)
	h.emit(ChangeExtend, s.id)
	return nil
}

// EndStroke freezes the stroke named by handle. Ending a stale handle is a
// no-op.
func (h *History) EndStroke(handle StrokeHandle) {
	s := h.openStroke(handle)
	if s == nil {
		return
	}
	s.open = false
	h.emit(ChangeEnd, s.id)
}

// PlaceSticker commits a sticker with glyph at p.
func (h *History) PlaceSticker(glyph string, p Point) {
	h.closeOpen()
	s := &Sticker{id: newID("sticker"), glyph: glyph, at: p}
	h.commit(s)
	h.emit(ChangePlace, s.id)
}

// Undo moves the last committed drawable onto the redo stack. It reports
// false, without mutating anything, when nothing is committed.
func (h *History) Undo() bool {
	n := len(h.committed)
	if n == 0 {
		return false
	}
	d := h.committed[n-1]
	h.committed[n-1] = nil
	h.committed = h.committed[:n-1]
	if s, ok := d.(*Stroke); ok {
		s.open = false
	}
	h.redo = append(h.redo, d)
	h.emit(ChangeUndo, d.ID())
	return true
}

// Redo moves the most recently undone drawable back onto the committed
// sequence. It reports false when the redo stack is empty.
func (h *History) Redo() bool {
	n := len(h.redo)
	if n == 0 {
		return false
	}
	d := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	h.committed = append(h.committed, d)
	h.emit(ChangeRedo, d.ID())
	return true
}

// Clear discards every drawable, including the redo stack, so that a later
// Redo cannot bring cleared content back.
func (h *History) Clear() {
	clear(h.committed)
	h.committed = h.committed[:0]
	clear(h.redo)
	h.redo = h.redo[:0]
	h.emit(ChangeClear, "")
}

// Snapshot returns the committed drawables in paint order. The returned
// slice is a copy; the drawables themselves are shared and read-only.
func (h *History) Snapshot() []Drawable {
	out := make([]Drawable, len(h.committed))
	copy(out, h.committed)
	return out
}

// RedoSnapshot returns the redo stack, most recently undone last.
func (h *History) RedoSnapshot() []Drawable {
	out := make([]Drawable, len(h.redo))
	copy(out, h.redo)
	return out
}

func (h *History) Len() int      { return len(h.committed) }
func (h *History) RedoLen() int  { return len(h.redo) }
func (h *History) CanUndo() bool { return len(h.committed) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// openStroke returns the stroke named by handle if it is the last committed
// drawable and still open.
func (h *History) openStroke(handle StrokeHandle) *Stroke {
	n := len(h.committed)
	if n == 0 || handle.id == "" {
		return nil
	}
	s, ok := h.committed[n-1].(*Stroke)
	if !ok || s.id != handle.id || !s.open {
		return nil
	}
	return s
}

func (h *History) closeOpen() {
	if n := len(h.committed); n > 0 {
		if s, ok := h.committed[n-1].(*Stroke); ok {
			s.open = false
		}
	}
}
