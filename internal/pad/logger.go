package pad

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by every Pad. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: every dispatched event and history change
//   - [slog.LevelInfo]: exports
//   - [slog.LevelWarn]: rejected commands (unknown color, empty glyph)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current pad logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
