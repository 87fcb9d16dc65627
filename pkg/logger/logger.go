// Package logger creates slog loggers for the command line tools.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text logger writing to stderr. Verbosity maps to levels:
// 0 shows progress (info), 1 and above adds full message dumps (debug).
func New(verbosity int) *slog.Logger {
	return NewWithWriter(os.Stderr, verbosity)
}

// NewWithWriter is New with an explicit output, used in tests.
func NewWithWriter(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelInfo
	if verbosity >= 1 {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
