package koine

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger so the analyzer can log with consistent fields
// without imposing a handler choice on callers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler means a
// text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger returns a Logger that discards everything. This is the default
// for an Analyzer constructed without WithLogger.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
