package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"DrawPad/internal/export"
)

// DialogSaver asks the user where to save each export. Save returns as soon
// as the dialog is shown; the write happens when the user confirms.
type DialogSaver struct {
	Window fyne.Window
	OnDone func(status string)
}

var _ export.Saver = (*DialogSaver)(nil)

func (s *DialogSaver) Save(filename string, data []byte) error {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			s.done(fmt.Sprintf("Save failed: %v", err))
			return
		}
		if writer == nil {
			return // cancelled
		}
		s.write(writer, data)
	}, s.Window)
	d.SetFileName(filename)
	d.Show()
	return nil
}

func (s *DialogSaver) write(writer fyne.URIWriteCloser, data []byte) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	if _, err := writer.Write(data); err != nil {
		log.Printf("SaveToFile: Error writing: %v", err)
		s.done("Error writing file")
		return
	}
	log.Printf("SaveToFile: wrote %d bytes to %s", len(data), writer.URI())
	s.done("Saved " + writer.URI().Name())
}

func (s *DialogSaver) done(msg string) {
	if s.OnDone != nil {
		s.OnDone(msg)
	}
}
