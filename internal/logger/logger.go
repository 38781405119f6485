// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds the zerolog logger shared by the CLI stages.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = zerolog.WarnLevel

// Config holds logger settings.
type Config struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string

	// Out is the destination (default os.Stderr).
	Out io.Writer

	// JSON disables the human-readable console format.
	JSON bool
}

// New returns a logger writing to cfg.Out at the parsed level. Unknown
// levels fall back to DefaultLevel.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		}
	}
	return zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel converts a level name to a zerolog level.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
