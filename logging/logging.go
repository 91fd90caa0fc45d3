// Package logging provides the shared zerolog-backed logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger so callers share one consistent interface.
type Logger struct {
	zerolog.Logger
}

// New creates a logger writing human-readable output to stderr at the
// given level. Unknown levels fall back to info.
func New(level string) *Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger}
}

// NewWithOutput creates a logger writing JSON lines to w.
func NewWithOutput(level string, w io.Writer) *Logger {
	logger := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger}
}

// NewSilent creates a logger that discards all output. Used by tests and
// as the default for library consumers that pass no logger.
func NewSilent() *Logger {
	return &Logger{Logger: zerolog.New(io.Discard)}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
