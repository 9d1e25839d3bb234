package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/gogpu/studio"
)

// newLogger creates a charmbracelet logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level slog.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.Level(level),
	})
}

// installLogger routes studio's package logger through l and returns the
// slog view of it.
func installLogger(l *log.Logger) *slog.Logger {
	sl := slog.New(l)
	studio.SetLogger(sl)
	return sl
}
