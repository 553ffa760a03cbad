// Package btfsource loads a directory of BTF files, as found in
// /sys/kernel/btf, and answers lookups by type name across all of them.
package btfsource

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cilium/ebpf/btf"

	"github.com/frobware/go-drdump"
)

// DefaultDir is where the kernel exposes vmlinux and module BTF.
const DefaultDir = "/sys/kernel/btf"

// BaseName is the file holding the base (vmlinux) BTF. Every other
// file in the directory is parsed as split BTF on top of it.
const BaseName = "vmlinux"

// Collection is the set of BTF specs loaded from a directory. The base
// spec comes first, followed by module specs in file name order.
type Collection struct {
	dir   string
	names []string
	specs []*btf.Spec
}

// Load parses every BTF file in dir. The directory must contain a
// vmlinux file. Any unreadable or unparsable file fails the whole load.
func Load(dir string, logger *slog.Logger) (*Collection, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "btf")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &drdump.MetadataLoadError{Dir: dir, Err: err}
	}

	basePath := filepath.Join(dir, BaseName)
	base, err := btf.LoadSpec(basePath)
	if err != nil {
		return nil, &drdump.MetadataLoadError{Dir: dir, Path: basePath, Err: err}
	}
	logger.Debug("loaded base BTF", "path", basePath)

	c := &Collection{
		dir:   dir,
		names: []string{BaseName},
		specs: []*btf.Spec{base},
	}

	for _, entry := range entries {
		if entry.Name() == BaseName || !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		spec, err := loadSplit(path, base)
		if err != nil {
			return nil, &drdump.MetadataLoadError{Dir: dir, Path: path, Err: err}
		}
		logger.Debug("loaded module BTF", "path", path)

		c.names = append(c.names, entry.Name())
		c.specs = append(c.specs, spec)
	}

	logger.Debug("BTF collection ready", "dir", dir, "files", len(c.specs))
	return c, nil
}

func loadSplit(path string, base *btf.Spec) (*btf.Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return btf.LoadSplitSpecFromReader(f, base)
}

// Dir returns the directory the collection was loaded from.
func (c *Collection) Dir() string { return c.dir }

// Files returns the names of the loaded files, base first.
func (c *Collection) Files() []string {
	return append([]string(nil), c.names...)
}

// TypesByName returns every type called name, searching the base spec
// first and the module specs after it. Split specs also answer for base
// types, so a vmlinux definition can appear more than once. An empty
// result with a nil error means no file defines name.
func (c *Collection) TypesByName(name string) ([]btf.Type, error) {
	var types []btf.Type
	for i, spec := range c.specs {
		found, err := spec.AnyTypesByName(name)
		if errors.Is(err, btf.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: lookup %q: %w", c.names[i], name, err)
		}
		types = append(types, found...)
	}
	return types, nil
}
