package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	OnTapped func(name string)
}

func newColorSwatch(name string, c color.Color, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// Widths are the pen widths behind the Thin and Thick buttons.
type Widths struct {
	Thin, Thick float32
}

// Toolbar holds the tool controls for one board.
type Toolbar struct {
	board    *BoardWidget
	win      fyne.Window
	widths   Widths
	stickers *fyne.Container
	undo     *widget.Button
	redo     *widget.Button
	mode     *widget.Label

	content fyne.CanvasObject
}

// NewToolbar builds the controls and subscribes to the board's tool changes.
// win parents the custom sticker prompt.
func NewToolbar(board *BoardWidget, win fyne.Window, widths Widths) *Toolbar {
	t := &Toolbar{board: board, win: win, widths: widths}

	pen := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { board.Do(pad.SelectDraw{}) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { board.Do(pad.Clear{}) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { board.Do(pad.Export{Format: pad.FormatPNG}) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { board.Do(pad.Export{Format: pad.FormatPDF}) }),
	)
	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() { board.Do(pad.Undo{}) })
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), func() { board.Do(pad.Redo{}) })

	thin := widget.NewButton("Thin", func() { board.Do(pad.SelectWidth{Width: widths.Thin}) })
	thick := widget.NewButton("Thick", func() { board.Do(pad.SelectWidth{Width: widths.Thick}) })

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, name := range state.PaletteOrder {
		colorBox.Add(newColorSwatch(name, state.Palette[name], func(n string) {
			board.Do(pad.SelectColor{Name: n})
		}))
	}

	t.stickers = container.NewHBox()
	t.mode = widget.NewLabel("")

	row1 := container.NewHBox(pen, t.undo, t.redo, widget.NewSeparator(), thin, thick, layout.NewSpacer(), t.mode)
	row2 := container.NewHBox(widget.NewLabel("Color:"), colorBox)
	row3 := container.NewHBox(widget.NewLabel("Stickers:"), t.stickers)
	t.content = container.NewVBox(row1, row2, row3)

	board.OnToolsChanged = t.Refresh
	t.Refresh()
	return t
}

// Content returns the toolbar's root object.
func (t *Toolbar) Content() fyne.CanvasObject { return t.content }

// Refresh rebuilds the sticker row and button states from the pad's tools.
func (t *Toolbar) Refresh() {
	tools := t.board.Pad().Tools()

	buttons := make([]fyne.CanvasObject, 0, len(tools.Stickers)+1)
	for _, g := range tools.Stickers {
		glyph := g
		btn := widget.NewButton(glyph, func() { t.board.Do(pad.SelectSticker{Glyph: glyph}) })
		if m, ok := tools.Mode.(state.StickerMode); ok && m.Glyph == glyph {
			btn.Importance = widget.HighImportance
		}
		buttons = append(buttons, btn)
	}
	buttons = append(buttons, widget.NewButtonWithIcon("", theme.ContentAddIcon(), t.promptSticker))
	t.stickers.Objects = buttons
	t.stickers.Refresh()

	setEnabled(t.undo, tools.CanUndo)
	setEnabled(t.redo, tools.CanRedo)
	t.mode.SetText(modeText(tools))
}

func modeText(tools pad.Tools) string {
	if m, ok := tools.Mode.(state.StickerMode); ok {
		return "Sticker " + m.Glyph
	}
	return "Pen " + state.Hex(tools.Color)
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// promptSticker asks for a custom glyph. Dismissing the dialog adds nothing.
func (t *Toolbar) promptSticker() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("🐸")
	items := []*widget.FormItem{widget.NewFormItem("Sticker", entry)}
	dialog.ShowForm("Custom sticker", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		t.board.Do(pad.AddCustomSticker{Glyph: entry.Text})
	}, t.win)
}
