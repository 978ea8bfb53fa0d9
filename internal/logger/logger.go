// Package logger sets up the process-wide slog logger. Logs go to stderr;
// stdout is reserved for program output.
package logger

import (
	"io"
	"log/slog"
	"os"
)

var global = slog.New(slog.NewTextHandler(io.Discard, nil))

// Setup configures the global logger. Debug enables verbose output.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	global = slog.New(h)
}

// L returns the global logger.
func L() *slog.Logger {
	return global
}
