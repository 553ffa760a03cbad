// Package config loads the drdump configuration.
//
// The embedded default.toml always provides a complete configuration.
// A config file, when present, is decoded on top of it so that only the
// keys it sets change. Command line flags are applied by the CLI.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frobware/go-drdump/reason"
	"github.com/frobware/go-drdump/render"
)

//go:embed default.toml
var defaultTOML string

// DefaultPath is where drdump looks for its config file.
const DefaultPath = "/etc/drdump/drdump.toml"

// Config is the drdump configuration.
type Config struct {
	BTFDir  string        `toml:"btf_dir"`
	Format  string        `toml:"format"`
	Verbose bool          `toml:"verbose"`
	Reasons ReasonsConfig `toml:"reasons"`
	Logging LoggingConfig `toml:"logging"`
}

// ReasonsConfig names the kernel enums drop reasons are read from.
type ReasonsConfig struct {
	Core       string `toml:"core"`
	Subsystems string `toml:"subsystems"`
	// Extensions are tried in order; earlier entries win on collisions.
	Extensions      []string `toml:"extensions"`
	KnownSubsystems int      `toml:"known_subsystems"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level      string            `toml:"level"`
	Format     string            `toml:"format"`
	Components map[string]string `toml:"components"`
}

// ToSpec returns the logging settings as a log spec. Components are
// appended to Level in name order.
func (c LoggingConfig) ToSpec() string {
	parts := []string{c.Level}
	names := make([]string, 0, len(c.Components))
	for name := range c.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, name+"="+c.Components[name])
	}
	return strings.Join(parts, ",")
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if _, err := toml.Decode(defaultTOML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.toml: %v", err))
	}
	return cfg
}

// Load returns the defaults overlaid with the file at path. Only the
// default file may be missing; any other path must exist and be valid.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config file %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.BTFDir == "" {
		return errors.New("btf_dir cannot be empty")
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Reasons.Core == "" {
		return errors.New("reasons.core cannot be empty")
	}
	if c.Reasons.Subsystems == "" {
		return errors.New("reasons.subsystems cannot be empty")
	}
	if c.Reasons.KnownSubsystems < 0 {
		return fmt.Errorf("reasons.known_subsystems must not be negative, got %d", c.Reasons.KnownSubsystems)
	}
	for i, name := range c.Reasons.Extensions {
		if name == "" {
			return fmt.Errorf("reasons.extensions[%d] cannot be empty", i)
		}
		if slices.Index(c.Reasons.Extensions, name) != i {
			return fmt.Errorf("reasons.extensions: %q listed twice", name)
		}
	}
	return nil
}

// ReasonOptions converts the reasons section into reason.Build options.
func (c *Config) ReasonOptions() reason.Options {
	return reason.Options{
		Core:            c.Reasons.Core,
		Extensions:      slices.Clone(c.Reasons.Extensions),
		Subsystems:      c.Reasons.Subsystems,
		KnownSubsystems: c.Reasons.KnownSubsystems,
	}
}
