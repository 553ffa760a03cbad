package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/frobware/go-drdump"
)

// Format selects what the CLI prints when not resolving a single value.
type Format string

const (
	// FormatRaw lists every known drop reason.
	FormatRaw Format = "raw"
	// FormatBpftrace emits a bpftrace monitoring script.
	FormatBpftrace Format = "bpftrace"
	// FormatStap emits a SystemTap monitoring script.
	FormatStap Format = "stap"
)

// Formats returns the recognised output formats.
func Formats() []Format {
	return []Format{FormatRaw, FormatBpftrace, FormatStap}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatRaw, FormatBpftrace, FormatStap:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected raw, bpftrace or stap)", s)
	}
}

func (f Format) String() string { return string(f) }

//go:embed templates/*.tmpl
var templateFS embed.FS

var scripts = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var scriptTemplate = map[Format]string{
	FormatBpftrace: "bpftrace.bt.tmpl",
	FormatStap:     "stap.stp.tmpl",
}

type declaration struct {
	Code uint32
	Name string
}

// Script generates a monitoring script mapping tracepoint reason values
// back to their names. Declarations follow the table's insertion order.
func Script(reasons *drdump.EnumTable, format Format) (string, error) {
	name, ok := scriptTemplate[format]
	if !ok {
		return "", fmt.Errorf("no script template for format %q", format)
	}

	decls := make([]declaration, 0, reasons.Len())
	for code, reason := range reasons.All() {
		decls = append(decls, declaration{Code: code, Name: reason})
	}

	var sb strings.Builder
	if err := scripts.ExecuteTemplate(&sb, name, decls); err != nil {
		return "", fmt.Errorf("render %s script: %w", format, err)
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}
