// Package pad turns pointer events and tool commands into history edits and
// full redraws of a Renderer.
package pad

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"DrawPad/internal/state"
)

var (
	ErrNoSurface    = errors.New("pad: no rendering surface")
	ErrNoExporter   = errors.New("pad: no exporter for format")
	ErrInvalidWidth = errors.New("pad: pen width must be positive")
)

// Options configures a new Pad. Zero values fall back to defaults.
type Options struct {
	Thickness float32
	Color     string
	Stickers  []string
	Exporters map[Format]Exporter
}

// Tools is a read-only view of the tool state for front-ends.
type Tools struct {
	Mode      state.Mode
	Thickness float32
	Color     color.NRGBA
	Stickers  []string
	CanUndo   bool
	CanRedo   bool
}

// Pad is one drawing session: a History, a ToolState and the input state
// machine driving a Renderer. It must be used from a single goroutine.
type Pad struct {
	history   *state.History
	tools     *state.ToolState
	renderer  Renderer
	exporters map[Format]Exporter

	held   bool
	stroke state.StrokeHandle

	queue      []Event
	draining   bool
	dirty      bool
	toolsDirty bool

	// OnToolsChanged is called after an event changed the tool selection,
	// the sticker palette, or undo/redo availability.
	OnToolsChanged func()
}

// New returns a Pad drawing onto r. A nil r is a fatal setup error.
func New(r Renderer, opts Options) (*Pad, error) {
	if r == nil {
		return nil, ErrNoSurface
	}
	if opts.Thickness <= 0 {
		opts.Thickness = 2
	}
	if opts.Color == "" {
		opts.Color = "black"
	}
	c, err := state.ParseColor(opts.Color)
	if err != nil {
		return nil, fmt.Errorf("pad: default color: %w", err)
	}
	if opts.Stickers == nil {
		opts.Stickers = state.DefaultStickers
	}

	p := &Pad{
		history:   state.NewHistory(),
		tools:     state.NewToolState(opts.Thickness, c, opts.Stickers),
		renderer:  r,
		exporters: make(map[Format]Exporter),
	}
	for f, e := range opts.Exporters {
		p.exporters[f] = e
	}
	p.history.OnChange = p.historyChanged
	return p, nil
}

// SetExporter registers e for format f, replacing any previous exporter.
func (p *Pad) SetExporter(f Format, e Exporter) {
	p.exporters[f] = e
}

func (p *Pad) historyChanged(c state.Change) {
	Logger().Debug("history changed", "seq", c.Seq, "kind", c.Kind, "id", c.ID)
	p.dirty = true
	switch c.Kind {
	case state.ChangeExtend, state.ChangeEnd:
	default:
		p.toolsDirty = true
	}
}

// Dispatch handles ev and then every event queued while it ran, in arrival
// order. Each event's redraw completes before the next event starts. A call
// made from inside a handler or a Renderer only queues the event.
func (p *Pad) Dispatch(ev Event) error {
	p.queue = append(p.queue, ev)
	if p.draining {
		return nil
	}
	p.draining = true
	defer func() { p.draining = false }()

	var errs []error
	for len(p.queue) > 0 {
		next := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]

		if err := p.handle(next); err != nil {
			Logger().Warn("event rejected", "event", fmt.Sprintf("%T", next), "err", err)
			errs = append(errs, err)
		}
		if p.dirty {
			p.dirty = false
			p.redraw()
		}
		if p.toolsDirty {
			p.toolsDirty = false
			if p.OnToolsChanged != nil {
				p.OnToolsChanged()
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Pad) handle(ev Event) error {
	Logger().Debug("dispatch", "event", fmt.Sprintf("%T", ev), "mode", p.tools.Mode.String(), "held", p.held)

	switch ev := ev.(type) {
	case PointerDown:
		p.pointerDown(ev.At)
	case PointerMove:
		p.pointerMove(ev.At)
	case PointerUp:
		p.pointerUp(ev.At)
	case PointerLeave:
		p.pointerLeave()

	case SelectDraw:
		p.setMode(state.DrawMode{})
	case SelectWidth:
		if ev.Width <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidWidth, ev.Width)
		}
		p.tools.Thickness = ev.Width
		p.setMode(state.DrawMode{})
	case SelectColor:
		c, err := state.ParseColor(ev.Name)
		if err != nil {
			return err
		}
		p.tools.Color = c
		p.setMode(state.DrawMode{})
	case SelectSticker:
		if ev.Glyph == "" {
			return state.ErrEmptyGlyph
		}
		p.setMode(state.StickerMode{Glyph: ev.Glyph})
	case AddCustomSticker:
		added, err := p.tools.AddSticker(ev.Glyph)
		if errors.Is(err, state.ErrEmptyGlyph) {
			// A blank answer to the prompt counts as a cancel.
			return nil
		}
		if err != nil {
			return err
		}
		p.toolsDirty = p.toolsDirty || added

	case Undo:
		p.history.Undo()
	case Redo:
		p.history.Redo()
	case Clear:
		p.history.Clear()
	case Export:
		return p.export(ev.Format)

	default:
		return fmt.Errorf("pad: unknown event %T", ev)
	}
	return nil
}

func (p *Pad) pointerDown(at state.Point) {
	p.moveCursor(at)
	if p.held {
		return
	}
	p.held = true
	if _, ok := p.tools.Mode.(state.DrawMode); ok {
		p.stroke = p.history.BeginStroke(at, p.tools.Thickness, p.tools.Color)
	}
}

func (p *Pad) pointerMove(at state.Point) {
	p.moveCursor(at)
	if !p.held {
		return
	}
	if _, ok := p.tools.Mode.(state.DrawMode); ok {
		if err := p.history.ExtendStroke(p.stroke, at); err != nil {
			// The stroke was undone or cleared mid-drag.
			Logger().Debug("extend ignored", "err", err)
		}
	}
}

func (p *Pad) pointerUp(at state.Point) {
	p.moveCursor(at)
	if !p.held {
		return
	}
	p.held = false
	switch m := p.tools.Mode.(type) {
	case state.DrawMode:
		p.history.EndStroke(p.stroke)
		p.stroke = state.StrokeHandle{}
	case state.StickerMode:
		p.history.PlaceSticker(m.Glyph, at)
		p.setMode(state.DrawMode{})
	}
}

// pointerLeave hides the preview. A stroke in progress is finished; a sticker
// drag is abandoned without placing anything.
func (p *Pad) pointerLeave() {
	p.tools.CursorVisible = false
	p.dirty = true
	if !p.held {
		return
	}
	p.held = false
	if _, ok := p.tools.Mode.(state.DrawMode); ok {
		p.history.EndStroke(p.stroke)
		p.stroke = state.StrokeHandle{}
	}
}

func (p *Pad) moveCursor(at state.Point) {
	p.tools.Cursor = at
	p.tools.CursorVisible = true
	p.dirty = true
}

func (p *Pad) setMode(m state.Mode) {
	p.tools.Mode = m
	p.toolsDirty = true
	p.dirty = true
}

func (p *Pad) export(f Format) error {
	e, ok := p.exporters[f]
	if !ok {
		return fmt.Errorf("%w %q", ErrNoExporter, f)
	}
	drawables := p.history.Snapshot()
	if err := e.Export(drawables); err != nil {
		return fmt.Errorf("pad: export %s: %w", f, err)
	}
	Logger().Info("exported", "format", string(f), "drawables", len(drawables))
	return nil
}

// Redraw repaints the whole surface without handling an event. Front-ends
// call it once after setup and whenever the surface is recreated.
func (p *Pad) Redraw() {
	p.redraw()
}

func (p *Pad) redraw() {
	r := p.renderer
	Paint(r, p.history.Snapshot())

	t := p.tools
	switch {
	case p.held:
		// A sticker being dragged follows the cursor; a stroke in progress
		// gets no preview.
		if glyph, ok := t.Glyph(); ok {
			r.StickerPreview(t.Cursor, glyph)
		}
	case t.CursorVisible:
		switch m := t.Mode.(type) {
		case state.DrawMode:
			r.PenPreview(t.Cursor, t.Thickness, t.Color)
		case state.StickerMode:
			r.StickerPreview(t.Cursor, m.Glyph)
		}
	}
	r.Present()
}

// Snapshot returns the committed drawables in paint order.
func (p *Pad) Snapshot() []state.Drawable {
	return p.history.Snapshot()
}

// RedoLen returns the number of undone drawables that Redo can restore.
func (p *Pad) RedoLen() int {
	return p.history.RedoLen()
}

// Held reports whether the pointer is currently pressed.
func (p *Pad) Held() bool {
	return p.held
}

func (p *Pad) Tools() Tools {
	return Tools{
		Mode:      p.tools.Mode,
		Thickness: p.tools.Thickness,
		Color:     p.tools.Color,
		Stickers:  p.tools.Stickers(),
		CanUndo:   p.history.CanUndo(),
		CanRedo:   p.history.CanRedo(),
	}
}

// LogValue lets a Pad be logged as a compact group.
func (p *Pad) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("committed", p.history.Len()),
		slog.Int("redo", p.history.RedoLen()),
		slog.String("mode", p.tools.Mode.String()),
		slog.Bool("held", p.held),
	)
}
