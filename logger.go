package thicket

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var activeLogger = slog.New(nopHandler{})

// SetLogger configures the logger used by thicket. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: reconciliation details (nodes created, suffixes trimmed)
//   - [slog.LevelWarn]: suspicious trees (very wide nodes), failed screenshots
//     and unknown test script steps
//
// Like the node trees themselves, the logger is not synchronized; set it
// before building any trees.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	activeLogger = l
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return activeLogger
}

func logger() *slog.Logger {
	return activeLogger
}
