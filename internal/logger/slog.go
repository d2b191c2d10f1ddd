package logger

import (
	"io"
	"log/slog"
)

// Init configures the global slog logger on w.
// Verbose runs log at debug level; otherwise only warnings and errors are shown
// so regular command output stays clean.
func Init(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	return l
}

// WithKind returns a logger scoped to one record collection.
func WithKind(l *slog.Logger, kind string) *slog.Logger {
	return l.With("kind", kind)
}
