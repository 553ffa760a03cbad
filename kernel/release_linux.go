// Package kernel reports facts about the running kernel.
package kernel

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Release returns the running kernel release, as in uname -r.
func Release() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
