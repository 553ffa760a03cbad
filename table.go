package drdump

import (
	"iter"
	"slices"
)

// EnumTable maps enum values to their names. It remembers insertion
// order; Codes returns the values sorted.
type EnumTable struct {
	order []uint32
	names map[uint32]string
}

// NewEnumTable returns an empty table.
func NewEnumTable() *EnumTable {
	return &EnumTable{names: make(map[uint32]string)}
}

// Set associates name with code, replacing any previous name. A
// replaced code keeps its original position.
func (t *EnumTable) Set(code uint32, name string) {
	if _, ok := t.names[code]; !ok {
		t.order = append(t.order, code)
	}
	t.names[code] = name
}

// Add associates name with code only if code is not already present.
// It reports whether the entry was added.
func (t *EnumTable) Add(code uint32, name string) bool {
	if _, ok := t.names[code]; ok {
		return false
	}
	t.Set(code, name)
	return true
}

// Delete removes code from the table. Removing an absent code is a no-op.
func (t *EnumTable) Delete(code uint32) {
	if _, ok := t.names[code]; !ok {
		return
	}
	delete(t.names, code)
	t.order = slices.DeleteFunc(t.order, func(c uint32) bool { return c == code })
}

// Lookup returns the name associated with code.
func (t *EnumTable) Lookup(code uint32) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[code]
	return name, ok
}

// Len returns the number of entries. A nil table is empty.
func (t *EnumTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// All yields the entries in insertion order.
func (t *EnumTable) All() iter.Seq2[uint32, string] {
	return func(yield func(uint32, string) bool) {
		if t == nil {
			return
		}
		for _, code := range t.order {
			if !yield(code, t.names[code]) {
				return
			}
		}
	}
}

// Codes returns the codes in ascending order.
func (t *EnumTable) Codes() []uint32 {
	if t == nil {
		return nil
	}
	codes := slices.Clone(t.order)
	slices.Sort(codes)
	return codes
}

// Tables is the result of resolving drop reasons from BTF.
type Tables struct {
	// Reasons holds every known drop reason, core and non-core.
	Reasons *EnumTable

	// Subsystems maps sub-system ids to their names. It is nil when
	// the kernel does not define skb_drop_reason_subsys.
	Subsystems *EnumTable
}

// HasUnknownSubsystems reports whether the kernel defines more drop
// reason sub-systems than known.
func (t *Tables) HasUnknownSubsystems(known int) bool {
	return t.Subsystems.Len() > known
}
