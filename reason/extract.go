// Package reason resolves drop reason enums from BTF and merges them
// into the tables used for display.
package reason

import (
	"errors"
	"fmt"

	"github.com/cilium/ebpf/btf"

	"github.com/frobware/go-drdump"
)

// TypeResolver is the subset of btfsource.Collection needed by Extract.
type TypeResolver interface {
	TypesByName(name string) ([]btf.Type, error)
}

// Extract looks up the enum called name and returns its values. It
// returns a nil table and a nil error when no enum of that name
// exists. When several enums share the name, the first one wins.
func Extract(src TypeResolver, name string) (*drdump.EnumTable, error) {
	types, err := src.TypesByName(name)
	if errors.Is(err, btf.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", name, err)
	}

	var enum *btf.Enum
	for _, typ := range types {
		if e, ok := typ.(*btf.Enum); ok {
			enum = e
			break
		}
	}
	if enum == nil {
		return nil, nil
	}

	table := drdump.NewEnumTable()
	for i, v := range enum.Values {
		if v.Name == "" {
			return nil, &drdump.MemberNameError{Enum: name, Index: i, Value: v.Value}
		}
		table.Set(Code(v.Value), v.Name)
	}
	return table, nil
}

// Code reinterprets an enum value as a drop reason code. BTF values of
// signed enums are sign-extended to 64 bits; only the low 32 bits are
// kept, so -1 becomes 0xffffffff.
func Code(value uint64) uint32 {
	return uint32(value & 0xffffffff)
}
