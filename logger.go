// Package geyser provides the core translation layer of the bridge: the
// item registry reconciling Java and Bedrock item identifiers, and the
// command tree translator producing Bedrock command descriptors.
package geyser

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/swallowmc/geyser/schemas"
)

// zeroLogger implements schemas.Logger on top of zerolog. It is used as the
// default logger when none is provided.
type zeroLogger struct {
	log zerolog.Logger
}

// NewDefaultLogger creates a zerolog-backed logger writing to stderr at the
// given level. Unknown levels fall back to info.
func NewDefaultLogger(level schemas.LogLevel) schemas.Logger {
	zl, err := zerolog.ParseLevel(string(level))
	if err != nil || zl == zerolog.NoLevel {
		zl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return &zeroLogger{
		log: zerolog.New(out).Level(zl).With().Timestamp().Logger(),
	}
}

func (l *zeroLogger) Debug(msg string) {
	l.log.Debug().Msg(msg)
}

func (l *zeroLogger) Info(msg string) {
	l.log.Info().Msg(msg)
}

func (l *zeroLogger) Warn(msg string) {
	l.log.Warn().Msg(msg)
}

func (l *zeroLogger) Error(err error) {
	l.log.Error().Err(err).Msg("")
}
