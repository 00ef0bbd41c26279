// Package config parses command-line flags and KEPLER_ environment variables
// into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/kepler/internal/errors"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "KEPLER_"

// DefaultTimeout bounds artifact rendering (plot and metrics files).
const DefaultTimeout = 30 * time.Second

// AppConfig holds the parsed application configuration.
type AppConfig struct {
	// DatasetFile is a .toml or .json dataset; empty selects the built-in one.
	DatasetFile string
	// PlotFile is the log-log chart destination; empty disables the plot.
	PlotFile string
	// MetricsFile is the Prometheus textfile destination; empty disables it.
	MetricsFile string
	// Timeout bounds artifact rendering.
	Timeout time.Duration
	// LogLevel is the zerolog level name.
	LogLevel string
	// Verbose prints the execution summary and enables debug logging.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// ShowVersion prints the version banner instead of computing.
	ShowVersion bool
}

var plotExtensions = []string{".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff"}

// ParseConfig parses args (without the program name) into an AppConfig.
// Priority is: CLI flags > environment variables > defaults.
//
// Parameters:
//   - programName: Name shown in usage output.
//   - args: Command-line arguments.
//   - errWriter: Destination for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when -h/-help is given, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.DatasetFile, "dataset", "", "Dataset file (.toml or .json). Defaults to the built-in solar system.")
	fs.StringVar(&cfg.PlotFile, "plot", "", "Write a log-log plot of period vs semi-major axis to this file (.png, .svg, .pdf).")
	fs.StringVar(&cfg.MetricsFile, "metrics", "", "Write Prometheus textfile metrics to this file.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum time for rendering artifacts.")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error, disabled).")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print the execution summary to stderr and enable debug logs.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print the version and exit.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Prints the orbital period of each body under the test-mass and\n")
		fmt.Fprintf(errWriter, "two-body forms of Kepler's third law, and their deviation.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables (%s*) override defaults but not flags.\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)
	if cfg.Verbose && !isFlagSet(fs, "log-level") && getEnvString("LOG_LEVEL", "") == "" {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	if c.DatasetFile != "" {
		switch strings.ToLower(filepath.Ext(c.DatasetFile)) {
		case ".toml", ".json":
		default:
			return apperrors.NewConfigError("dataset %q must be a .toml or .json file", c.DatasetFile)
		}
	}
	if c.PlotFile != "" && !slices.Contains(plotExtensions, strings.ToLower(filepath.Ext(c.PlotFile))) {
		return apperrors.NewConfigError("plot %q must end in one of %s", c.PlotFile, strings.Join(plotExtensions, ", "))
	}
	if c.PlotFile != "" && c.PlotFile == c.MetricsFile {
		return apperrors.NewConfigError("plot and metrics must be written to different files")
	}
	return nil
}
