// Package logging builds the slog loggers used by drdump.
//
// Verbosity is controlled by a log spec: a base level optionally
// followed by per-component levels, eg. "warn,btf=debug". Components
// are selected with the "component" attribute.
package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is a slog level extended with trace.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

var levelNames = map[string]Level{
	"trace":   LevelTrace,
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// ParseLevel parses a level name, ignoring case.
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Slog returns l as a slog.Level.
func (l Level) Slog() slog.Level { return slog.Level(l) }

func (l Level) String() string {
	if l == LevelTrace {
		return "trace"
	}
	return strings.ToLower(slog.Level(l).String())
}
