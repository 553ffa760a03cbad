//go:build !linux

// Package kernel reports facts about the running kernel.
package kernel

import "errors"

// Release is only implemented on Linux.
func Release() (string, error) {
	return "", errors.New("kernel release is only available on linux")
}
