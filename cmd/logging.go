package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger. Reports go to stdout, logs always go to stderr.
type Logger struct {
	zerolog.Logger
}

// logger is the logger in effect, see Setup.
var logger = NewLogger("warn")

// NewLogger creates a console logger on stderr with the specified level.
func NewLogger(level string) *Logger {
	return NewLoggerWithOutput(level, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	})
}

// NewLoggerWithOutput creates a logger writing to a specific output.
func NewLoggerWithOutput(level string, w io.Writer) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	l := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return &Logger{Logger: l}
}
