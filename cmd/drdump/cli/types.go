// Package cli provides the Kong-based command-line interface for drdump.
package cli

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

// Code is a drop reason value given on the command line. Set records
// whether the flag was used at all, since 0 is a valid reason.
type Code struct {
	Value uint32
	Set   bool
}

// ParseCode parses a 32-bit drop reason value given in decimal or, with
// a 0x prefix, in hexadecimal.
func ParseCode(s string) (Code, error) {
	digits, base := strings.TrimSpace(s), 10
	if hex, ok := strings.CutPrefix(strings.ToLower(digits), "0x"); ok {
		digits, base = hex, 16
	}

	val, err := strconv.ParseUint(digits, base, 32)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return Code{}, fmt.Errorf("drop reason value %q out of range [0, %#x]", s, uint32(math.MaxUint32))
	case err != nil:
		return Code{}, fmt.Errorf("invalid drop reason value %q: want a decimal or 0x-prefixed hex number", s)
	}

	return Code{Value: uint32(val), Set: true}, nil
}

func codeMapper() kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("value", &s); err != nil {
			return err
		}
		code, err := ParseCode(s)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(code))
		return nil
	}
}
