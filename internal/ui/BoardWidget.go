package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"DrawPad/internal/pad"
	"DrawPad/internal/paint"
	"DrawPad/internal/state"
)

// BoardWidget is the drawing surface. It turns mouse input into pad events
// and shows the frames the pad renders into its scene.
type BoardWidget struct {
	widget.BaseWidget
	pad   *pad.Pad
	scene *paint.Scene
	last  fyne.Position

	OnToolsChanged func()
	OnError        func(error)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(size fyne.Size, stickerSize float32, opts pad.Options) (*BoardWidget, error) {
	b := &BoardWidget{scene: paint.NewScene(size, 1)}
	if stickerSize > 0 {
		b.scene.StickerSize = stickerSize
	}
	p, err := pad.New(b.scene, opts)
	if err != nil {
		return nil, err
	}
	b.pad = p
	p.OnToolsChanged = func() {
		if b.OnToolsChanged != nil {
			b.OnToolsChanged()
		}
	}
	b.ExtendBaseWidget(b)
	b.scene.OnPresent = b.Refresh
	p.Redraw()
	return b, nil
}

// Pad exposes the underlying pad, mainly so exporters can be registered.
func (b *BoardWidget) Pad() *pad.Pad { return b.pad }

// Do dispatches ev and reports any error through OnError.
func (b *BoardWidget) Do(ev pad.Event) {
	if err := b.pad.Dispatch(ev); err != nil {
		log.Printf("[BOARD] %T: %v", ev, err)
		if b.OnError != nil {
			b.OnError(err)
		}
	}
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.last = e.Position
	b.Do(pad.PointerDown{At: toPoint(e.Position)})
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.last = e.Position
	b.Do(pad.PointerUp{At: toPoint(e.Position)})
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.last = e.Position
	b.Do(pad.PointerMove{At: toPoint(e.Position)})
}

// DragEnd releases the pointer if MouseUp was not delivered for this drag.
func (b *BoardWidget) DragEnd() {
	if b.pad.Held() {
		b.Do(pad.PointerUp{At: toPoint(b.last)})
	}
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.MouseMoved(e)
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.last = e.Position
	b.Do(pad.PointerMove{At: toPoint(e.Position)})
}

func (b *BoardWidget) MouseOut() {
	b.Do(pad.PointerLeave{})
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.board.scene.Objects()
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.scene.Size
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {}
func (r *boardWidgetRenderer) Destroy()         {}
