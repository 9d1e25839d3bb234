package studio

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false, so the document
// and compositor debug calls cost one atomic load and a level check.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

// current holds the logger shared by studio and its sub-packages.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the log output of studio, layer stack edits and composite
// passes included, to l. A nil l silences studio again, which is also the
// state before the first call. SetLogger may be called while other
// goroutines log.
//
// Levels:
//   - [slog.LevelDebug]: layer added/inserted/removed/moved, composite passes
//   - [slog.LevelInfo]: exports and configuration in the studio shell
//   - [slog.LevelWarn]: inputs the shell clips or skips
//
// The studio command installs a charmbracelet/log handler here; a library
// user can pass any handler:
//
//	studio.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger studio packages write to. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}
