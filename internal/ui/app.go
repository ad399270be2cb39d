package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"DrawPad/internal/config"
	"DrawPad/internal/export"
	"DrawPad/internal/pad"
)

const AppID = "io.drawpad.desktop"

// RunApp opens the desktop window and blocks until it is closed.
func RunApp(cfg *config.Config) error {
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(cfg.Title)

	content, err := NewContent(cfg, myWindow)
	if err != nil {
		return err
	}
	myWindow.SetContent(content)
	myWindow.SetFixedSize(true)
	myWindow.ShowAndRun()
	return nil
}

// NewContent builds the board, toolbar and status bar for win.
func NewContent(cfg *config.Config, win fyne.Window) (fyne.CanvasObject, error) {
	size := fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height))
	board, err := NewBoardWidget(size, cfg.Canvas.StickerSize, pad.Options{
		Thickness: cfg.Pen.Thin,
		Color:     cfg.Pen.Color,
		Stickers:  cfg.Stickers,
	})
	if err != nil {
		return nil, fmt.Errorf("ui: create board: %w", err)
	}

	statusBar := widget.NewLabel("Ready")
	board.OnError = func(err error) { statusBar.SetText(err.Error()) }

	var saver export.Saver = &DialogSaver{Window: win, OnDone: func(msg string) { statusBar.SetText(msg) }}
	if cfg.Export.Directory != "" {
		saver = export.DirSaver{Dir: cfg.Export.Directory}
	}

	pngExport := export.NewPNG(size, saver)
	pngExport.Scale = cfg.Export.Scale
	pngExport.StickerSize = cfg.Canvas.StickerSize
	board.Pad().SetExporter(pad.FormatPNG, pngExport)

	pdfExport := export.NewPDF(size, saver)
	pdfExport.StickerSize = cfg.Canvas.StickerSize
	pdfExport.Glyphs = export.RasterGlyph
	board.Pad().SetExporter(pad.FormatPDF, pdfExport)

	toolbar := NewToolbar(board, win, Widths{Thin: cfg.Pen.Thin, Thick: cfg.Pen.Thick})
	title := widget.NewLabelWithStyle(cfg.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	log.Printf("[UI] board %vx%v, export scale %v", size.Width, size.Height, cfg.Export.Scale)
	return container.NewBorder(
		container.NewVBox(title, toolbar.Content()),
		statusBar, nil, nil,
		container.NewCenter(board),
	), nil
}
