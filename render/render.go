// Package render turns drop reason tables into text: a single resolved
// reason, a raw listing or a monitoring script.
package render

import (
	"fmt"
	"strconv"

	"github.com/frobware/go-drdump"
)

// One formats code for display. With verbose set, the name is followed
// by the sub-system owning code, when known. Unknown codes are shown as
// "Unknown reason N" and always get the sub-system annotation.
func One(code uint32, reasons, subsys *drdump.EnumTable, verbose bool) string {
	name, ok := reasons.Lookup(code)
	if !ok {
		return annotate(fmt.Sprintf("Unknown reason %d", code), code, subsys, true)
	}
	return annotate(name, code, subsys, verbose)
}

func annotate(s string, code uint32, subsys *drdump.EnumTable, verbose bool) string {
	if !verbose || subsys == nil {
		return s
	}
	if name, ok := subsys.Lookup(drdump.SubsystemID(code)); ok {
		return fmt.Sprintf("%s (sub-system: %s)", s, name)
	}
	return s
}

// Raw returns one "code = name" line per reason, by ascending code.
// Codes are right-aligned to the width of the largest one.
func Raw(reasons, subsys *drdump.EnumTable, verbose bool) []string {
	codes := reasons.Codes()
	if len(codes) == 0 {
		return nil
	}
	width := len(strconv.FormatUint(uint64(codes[len(codes)-1]), 10))

	lines := make([]string, 0, len(codes))
	for _, code := range codes {
		lines = append(lines, fmt.Sprintf("%*d = %s", width, code, One(code, reasons, subsys, verbose)))
	}
	return lines
}
