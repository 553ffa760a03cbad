package drdump

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by errors reporting that the kernel has no
// drop reason support at all.
var ErrUnsupported = errors.New("drop reasons are not supported by this kernel")

// UnsupportedError is returned when the core drop reason enum is not
// part of the loaded BTF.
type UnsupportedError struct {
	Enum string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s (enum %s not found)", ErrUnsupported, e.Enum)
}

// Is makes errors.Is(err, ErrUnsupported) report true.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// MetadataLoadError is returned when the BTF directory or one of its
// files cannot be read or parsed.
type MetadataLoadError struct {
	Dir  string
	Path string // empty when the directory itself failed
	Err  error
}

func (e *MetadataLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not parse BTF files in %s: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("could not parse BTF file %s: %v", e.Path, e.Err)
}

func (e *MetadataLoadError) Unwrap() error { return e.Err }

// MemberNameError is returned when an enum member has no usable name.
type MemberNameError struct {
	Enum  string
	Index int
	Value uint64
}

func (e *MemberNameError) Error() string {
	return fmt.Sprintf("enum %s: member %d (value %#x) has no name", e.Enum, e.Index, e.Value)
}
