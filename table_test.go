package drdump_test

import (
	"errors"
	"fmt"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-drdump"
)

func TestEnumTable_AddKeepsFirstName(t *testing.T) {
	table := drdump.NewEnumTable()

	assert.True(t, table.Add(2, "TCP_CSUM"))
	assert.False(t, table.Add(2, "MAC_FILTER"))

	name, ok := table.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "TCP_CSUM", name)
	assert.Equal(t, 1, table.Len())
}

func TestEnumTable_SetReplacesInPlace(t *testing.T) {
	table := drdump.NewEnumTable()
	table.Set(1, "A")
	table.Set(0, "B")
	table.Set(1, "C")

	var codes []uint32
	var names []string
	for code, name := range table.All() {
		codes = append(codes, code)
		names = append(names, name)
	}
	assert.Equal(t, []uint32{1, 0}, codes)
	assert.Equal(t, []string{"C", "B"}, names)
}

func TestEnumTable_Delete(t *testing.T) {
	table := drdump.NewEnumTable()
	table.Set(0, "NOT_SPECIFIED")
	table.Set(drdump.SubsysMask, "SUBSYS_MASK")
	table.Set(1, "NO_SOCKET")

	table.Delete(drdump.SubsysMask)
	table.Delete(drdump.SubsysMask)

	_, ok := table.Lookup(drdump.SubsysMask)
	assert.False(t, ok)
	assert.Equal(t, map[uint32]string{0: "NOT_SPECIFIED", 1: "NO_SOCKET"}, maps.Collect(table.All()))
}

func TestEnumTable_Codes(t *testing.T) {
	table := drdump.NewEnumTable()
	for _, code := range []uint32{0x30001, 5, 0, 65536} {
		table.Set(code, fmt.Sprintf("R%d", code))
	}
	assert.Equal(t, []uint32{0, 5, 65536, 0x30001}, table.Codes())
}

func TestEnumTable_NilIsEmpty(t *testing.T) {
	var table *drdump.EnumTable

	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Codes())
	_, ok := table.Lookup(0)
	assert.False(t, ok)
	for range table.All() {
		t.Fatal("nil table yielded an entry")
	}
}

func TestTables_HasUnknownSubsystems(t *testing.T) {
	subsys := drdump.NewEnumTable()
	for i := range uint32(6) {
		subsys.Set(i, fmt.Sprintf("SKB_DROP_REASON_SUBSYS_%d", i))
	}

	assert.True(t, (&drdump.Tables{Subsystems: subsys}).HasUnknownSubsystems(drdump.KnownSubsystems))
	assert.False(t, (&drdump.Tables{Subsystems: subsys}).HasUnknownSubsystems(6))
	assert.False(t, (&drdump.Tables{}).HasUnknownSubsystems(drdump.KnownSubsystems))
}

func TestSubsystemID(t *testing.T) {
	assert.Equal(t, uint32(2), drdump.SubsystemID(0x00020005))
	assert.Equal(t, uint32(0), drdump.SubsystemID(0xffff))
	assert.Equal(t, uint32(0xffff), drdump.SubsystemID(drdump.SubsysMask))
}

func TestUnsupportedError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("build: %w", &drdump.UnsupportedError{Enum: drdump.CoreEnum})

	assert.True(t, errors.Is(err, drdump.ErrUnsupported))
	assert.Contains(t, err.Error(), "not supported by this kernel")
	assert.Contains(t, err.Error(), drdump.CoreEnum)
}

func TestMetadataLoadError(t *testing.T) {
	cause := errors.New("bad magic")

	err := &drdump.MetadataLoadError{Dir: "/sys/kernel/btf", Path: "/sys/kernel/btf/foo", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "could not parse BTF file /sys/kernel/btf/foo: bad magic", err.Error())

	err = &drdump.MetadataLoadError{Dir: "/nope", Err: cause}
	assert.Equal(t, "could not parse BTF files in /nope: bad magic", err.Error())
}
