package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-drdump"
	"github.com/frobware/go-drdump/kernel"
)

func TestUnsupportedOnRunningKernel(t *testing.T) {
	release, err := kernel.Release()
	require.NoError(t, err)
	unsupported := &drdump.UnsupportedError{Enum: drdump.CoreEnum}

	for _, dir := range []string{"/sys/kernel/btf", "/sys/kernel/btf/"} {
		err := unsupportedOnRunningKernel(unsupported, dir)
		require.ErrorIs(t, err, drdump.ErrUnsupported)
		assert.Contains(t, err.Error(), "(kernel "+release+")", "dir %q", dir)
	}

	err = unsupportedOnRunningKernel(unsupported, t.TempDir())
	assert.Same(t, unsupported, err)

	other := errors.New("boom")
	assert.Same(t, other, unsupportedOnRunningKernel(other, "/sys/kernel/btf"))
}
