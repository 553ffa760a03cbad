package reason

import (
	"log/slog"

	"github.com/frobware/go-drdump"
)

// Options selects the enums Build reads.
type Options struct {
	// Core is the mandatory core drop reason enum.
	Core string
	// Extensions are the optional non-core enums, in precedence order.
	Extensions []string
	// Subsystems is the enum mapping sub-system ids to names.
	Subsystems string
	// KnownSubsystems is the number of sub-systems with built-in
	// support; more than that in the sub-system enum is reported.
	KnownSubsystems int
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns the enum names used by current kernels.
func DefaultOptions() Options {
	return Options{
		Core:            drdump.CoreEnum,
		Extensions:      drdump.DefaultExtensions(),
		Subsystems:      drdump.SubsystemEnum,
		KnownSubsystems: drdump.KnownSubsystems,
	}
}

// Build resolves and merges every drop reason enum.
//
// Core values always win. Extension values are only added for codes
// not yet known, so an extension listed earlier wins over a later one.
// Some sub-systems reuse generic core reasons (eg. SKB_CONSUMED) and
// must not shadow them. The sub-system mask is never part of the
// result. Missing extensions and a missing sub-system enum are not
// errors; a missing core enum is reported as an *drdump.UnsupportedError.
func Build(src TypeResolver, opts Options) (*drdump.Tables, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "reason")

	reasons, err := Extract(src, opts.Core)
	if err != nil {
		return nil, err
	}
	if reasons == nil {
		return nil, &drdump.UnsupportedError{Enum: opts.Core}
	}
	reasons.Delete(drdump.SubsysMask)
	logger.Debug("core drop reasons", "enum", opts.Core, "count", reasons.Len())

	for _, name := range opts.Extensions {
		ext, err := Extract(src, name)
		if err != nil {
			return nil, err
		}
		if ext == nil {
			logger.Debug("drop reason enum not found, skipping", "enum", name)
			continue
		}

		added := 0
		for code, label := range ext.All() {
			if reasons.Add(code, label) {
				added++
			}
		}
		logger.Debug("merged drop reasons", "enum", name, "count", ext.Len(), "added", added)
	}

	subsys, err := Extract(src, opts.Subsystems)
	if err != nil {
		return nil, err
	}
	if subsys == nil {
		logger.Debug("sub-system enum not found", "enum", opts.Subsystems)
	}

	tables := &drdump.Tables{Reasons: reasons, Subsystems: subsys}
	if tables.HasUnknownSubsystems(opts.KnownSubsystems) {
		logger.Info("kernel defines more drop reason sub-systems than known",
			"enum", opts.Subsystems, "count", subsys.Len(), "known", opts.KnownSubsystems)
	}
	return tables, nil
}
