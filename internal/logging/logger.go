package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON slog logger tagged with the application name. An invalid
// level string falls back to info.
func New(app, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, app, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, app, level string) *slog.Logger {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.Set(slog.LevelInfo)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	if app != "" {
		logger = logger.With(slog.String("app", app))
	}
	return logger
}

// Discard returns a logger that drops all output. Useful for tests.
func Discard() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	return slog.New(handler)
}
