package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"

	"github.com/alecthomas/kong"

	"github.com/frobware/go-drdump"
	"github.com/frobware/go-drdump/btfsource"
	"github.com/frobware/go-drdump/config"
	"github.com/frobware/go-drdump/kernel"
	"github.com/frobware/go-drdump/logging"
	"github.com/frobware/go-drdump/reason"
	"github.com/frobware/go-drdump/render"
)

// Version is reported by --version.
var Version = "dev"

// unknownSubsystemsNotice is printed when the kernel knows about more
// drop reason sub-systems than we do.
const unknownSubsystemsNotice = "INFO: found more drop reasons than we know of. " +
	"drdump will still be able to resolve raw values into a sub-system when using --resolve.\n\n"

// CLI is the drdump command line. Flags left unset fall back to the
// config file, then to built-in defaults.
type CLI struct {
	BTF     string `name:"btf" help:"Directory where BTF files are stored (default: ${default_btf_dir})." placeholder:"DIR" type:"path"`
	Resolve Code   `name:"resolve" short:"r" help:"Resolve given value into a drop reason enum value (supports hex with 0x prefix)." placeholder:"VALUE"`
	Format  string `name:"format" short:"f" help:"Output format when not resolving: raw (all drop reasons), bpftrace or stap (monitoring script). Default: raw." placeholder:"FORMAT"`
	Verbose bool   `name:"verbose" short:"v" help:"Increase verbosity (eg. display sub-system for drop reasons)."`
	Config  string `name:"config" help:"Config file path." default:"${default_config_path}" type:"path"`
	Log     string `name:"log" help:"Log spec (e.g., 'debug' or 'warn,btf=debug')." env:"DRDUMP_LOG"`

	Version kong.VersionFlag `name:"version" help:"Print version and exit."`
}

// KongOptions returns the Kong configuration options for the CLI.
func KongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("drdump"),
		kong.Description("Dumps and translates skb drop reasons given a set of BTF files."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.TypeMapper(reflect.TypeOf(Code{}), codeMapper()),
		kong.Vars{
			"default_btf_dir":     btfsource.DefaultDir,
			"default_config_path": config.DefaultPath,
			"version":             Version,
		},
	}
}

// settings is the configuration with command line overrides applied.
func (c *CLI) settings() (config.Config, render.Format, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return cfg, "", err
	}
	if c.BTF != "" {
		cfg.BTFDir = c.BTF
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	cfg.Verbose = cfg.Verbose || c.Verbose

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return cfg, "", err
	}
	return cfg, format, nil
}

func (c *CLI) logger(cfg config.Config, stderr io.Writer) (*slog.Logger, error) {
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Spec:       c.Log,
		ConfigSpec: cfg.Logging.ToSpec(),
		Format:     format,
		Output:     stderr,
	})
}

// Run resolves the drop reasons and prints the requested output to
// stdout. Notices and logs go to stderr.
func (c *CLI) Run(stdout, stderr io.Writer) error {
	cfg, format, err := c.settings()
	if err != nil {
		return err
	}

	logger, err := c.logger(cfg, stderr)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	src, err := btfsource.Load(cfg.BTFDir, logger)
	if err != nil {
		return err
	}

	opts := cfg.ReasonOptions()
	opts.Logger = logger
	tables, err := reason.Build(src, opts)
	if err != nil {
		return unsupportedOnRunningKernel(err, cfg.BTFDir)
	}

	if tables.HasUnknownSubsystems(opts.KnownSubsystems) {
		fmt.Fprint(stderr, unknownSubsystemsNotice)
	}

	return c.print(stdout, tables, format, cfg.Verbose)
}

// unsupportedOnRunningKernel names the running kernel in a missing
// drop reason support error, as long as its BTF is the one that was read.
func unsupportedOnRunningKernel(err error, btfDir string) error {
	if !errors.Is(err, drdump.ErrUnsupported) || filepath.Clean(btfDir) != btfsource.DefaultDir {
		return err
	}
	release, rerr := kernel.Release()
	if rerr != nil {
		return err
	}
	return fmt.Errorf("%w (kernel %s)", err, release)
}

func (c *CLI) print(w io.Writer, tables *drdump.Tables, format render.Format, verbose bool) error {
	if c.Resolve.Set {
		_, err := fmt.Fprintln(w, render.One(c.Resolve.Value, tables.Reasons, tables.Subsystems, verbose))
		return err
	}

	if format == render.FormatRaw {
		for _, line := range render.Raw(tables.Reasons, tables.Subsystems, verbose) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	script, err := render.Script(tables.Reasons, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, script)
	return err
}
