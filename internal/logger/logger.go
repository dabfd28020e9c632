// Package logger provides a zerolog wrapper with opinionated defaults for
// the CLI: console output, warn-by-default, component-tagged children.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger.
type Options struct {
	Level  string    // trace, debug, info, warn, error (default warn)
	Writer io.Writer // defaults to stderr
}

// New builds the root logger.
func New(opt Options) zerolog.Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stderr
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(parseLevel(opt.Level)).With().Timestamp().Logger()
}

// Named returns a child logger tagged with a component field.
func Named(log zerolog.Logger, component string) zerolog.Logger {
	if component == "" {
		return log
	}
	return log.With().Str("component", component).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
