package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the console logger shared by every component. Debug output is
// opt-in so interactive command output stays clean.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
