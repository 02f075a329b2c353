// Package cli implements the parcelctl command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/landviz/parcelcore/internal/cache"
	"github.com/landviz/parcelcore/internal/config"
	"github.com/landviz/parcelcore/internal/logging"
	"github.com/landviz/parcelcore/internal/measure"
	"github.com/landviz/parcelcore/internal/storage"
	"github.com/landviz/parcelcore/pkg/core"
	"github.com/spf13/cobra"
)

// module defs - Version can be set at build time via ldflags
var (
	Version   = "0.1.0"
	BuildDate = "unknown"

	AppName = "parcelctl"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configDir   string
	logLevel    string
	useDefaults bool

	logs     *logging.SlogManager
	logger   *slog.Logger
	logFile  *os.File
	cache    *cache.MeasurementCache
	started  time.Time
	now      func() time.Time
	newStore func(cfg config.StorageConfig) (storage.Backend, error)
}

// NewRootCommand builds the parcelctl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		logs: logging.NewSlogManager(),
		now:  time.Now,
	}

	root := &cobra.Command{
		Use:   AppName,
		Short: "Measure and edit land parcel shapes.",
		Long: `parcelctl measures land parcel shapes with arbitrary-precision decimal
arithmetic and applies the editing transforms of the parcel editor.

Shapes are read as a JSON array from a file argument, or from stdin when the
argument is "-" or omitted. Configuration is read from ` + config.ConfigFileName + `
in --config-dir unless --defaults is given.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configDir, "config-dir", ".", "directory containing "+config.ConfigFileName)
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	flags.BoolVar(&a.useDefaults, "defaults", false, "ignore the config file and use built-in defaults")

	root.AddCommand(
		a.versionCommand(),
		a.measureCommand(),
		a.areaCommand(),
		a.flipCommand(),
		a.handlesCommand(),
		a.wktCommand(),
		a.saveCommand(),
		a.listCommand(),
		a.deleteCommand(),
		a.accuracyCommand(),
	)
	return root
}

// setup loads configuration and wires logging and the measurement cache.
func (a *app) setup(cmd *cobra.Command) error {
	a.started = a.now()

	var loadErr error
	if a.useDefaults {
		config.SetDefaults()
	} else {
		loadErr = config.Load(a.configDir)
	}

	level := a.logLevel
	if level == "" {
		level = config.GetString("logLevel")
	}

	var sink io.Writer = cmd.ErrOrStderr()
	if dir := config.GetString("logsDir"); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
		f, err := os.Create(logging.LogFilePath(dir, AppName, a.started))
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		a.logFile = f
		sink = f
	}
	a.logs.Setup(sink, level, false)
	a.logger = a.logs.Logger()

	if loadErr != nil {
		a.logger.Warn("Using default configuration", "error", loadErr)
	}

	if cc := config.GetCacheConfig(); cc.Enabled {
		a.cache = cache.NewMeasurementCache(cc.MaxEntries)
	}

	a.newStore = func(cfg config.StorageConfig) (storage.Backend, error) {
		return storage.NewBackend(cfg, logging.NewZerolog(cmd.ErrOrStderr(), level))
	}

	a.logger.Debug("Starting", "app", AppName, "version", Version, "command", cmd.Name())
	return nil
}

func (a *app) teardown() error {
	if a.cache != nil {
		hits, misses := a.cache.Stats()
		a.logger.Debug("Measurement cache", "hits", hits, "misses", misses, "entries", a.cache.Len())
	}
	a.logger.Debug("Finished", "duration", time.Since(a.started))
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// measure computes a shape's measurements, through the cache when enabled.
func (a *app) measure(s core.Shape) (measure.Measurements, error) {
	if a.cache != nil {
		return a.cache.Measure(s)
	}
	return measure.ShapeMeasurements(s)
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s (built %s)\n", AppName, Version, BuildDate)
		},
	}
}
