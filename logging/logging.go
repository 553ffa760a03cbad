package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVar holds a log spec read by the CLI.
const EnvVar = "DRDUMP_LOG"

// Format is the log output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q", s)
	}
}

// Options configures New.
type Options struct {
	// Spec is the log spec from the command line or environment.
	Spec string
	// ConfigSpec is the log spec from the config file. It is used
	// when Spec is empty.
	ConfigSpec string
	// Format selects the handler encoding.
	Format Format
	// Output defaults to os.Stderr; stdout is reserved for results.
	Output io.Writer
}

// New returns a logger filtering records by component.
func New(opts Options) (*slog.Logger, error) {
	s := opts.Spec
	if s == "" {
		s = opts.ConfigSpec
	}
	spec, err := ParseSpec(s)
	if err != nil {
		return nil, fmt.Errorf("invalid log spec: %w", err)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	// Filtering happens in componentHandler; let everything through here.
	hopts := &slog.HandlerOptions{Level: LevelTrace.Slog()}
	var next slog.Handler
	if opts.Format == FormatJSON {
		next = slog.NewJSONHandler(out, hopts)
	} else {
		next = slog.NewTextHandler(out, hopts)
	}

	return slog.New(NewHandler(next, spec)), nil
}
