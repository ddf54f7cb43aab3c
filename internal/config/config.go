package config

import (
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-console/internal/console"
	"github.com/rxtech-lab/argo-console/internal/logger"
	"github.com/rxtech-lab/argo-console/internal/version"
	"github.com/rxtech-lab/argo-console/pkg/errors"
)

// Config is the on-disk configuration of the console.
type Config struct {
	// Version is the configuration schema version. Empty skips the compatibility check.
	Version string `yaml:"version" jsonschema:"description=Configuration schema version"`
	// LogDir is the directory log files are written to.
	LogDir string `yaml:"log_dir" validate:"required" jsonschema:"default=logs"`
	// Timezone is the IANA name of the civil timezone used for timestamps and file dates.
	Timezone string `yaml:"timezone" validate:"required" jsonschema:"default=America/New_York"`
	// Prompt is the interactive prompt text.
	Prompt string `yaml:"prompt"`
	// Color is one of auto, always or never.
	Color console.ColorMode `yaml:"color" validate:"required,oneof=auto always never" jsonschema:"enum=auto,enum=always,enum=never"`
	// DiagnosticsLevel is the zap level of the diagnostic logger.
	DiagnosticsLevel string `yaml:"diagnostics_level" validate:"required,oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Version:          "",
		LogDir:           console.DefaultLogDir,
		Timezone:         console.DefaultTimezone,
		Prompt:           "> ",
		Color:            console.ColorAuto,
		DiagnosticsLevel: "info",
	}
}

// Load reads the configuration at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigParseFailed, err, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field values, the timezone name and schema compatibility.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid configuration", err)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidTimezone, err, "unknown timezone %q", c.Timezone)
	}

	if _, err := logger.ParseLevel(c.DiagnosticsLevel); err != nil {
		return err
	}

	if err := version.CheckConfigCompatibility(version.GetVersion(), c.Version); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "incompatible config version", err)
	}

	return nil
}

// ConsoleConfig builds the coordinator configuration writing to stdout.
// Color auto resolves to always when stdout is a terminal.
func (c *Config) ConsoleConfig(stdout io.Writer) (console.Config, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return console.Config{}, errors.Wrapf(errors.ErrCodeInvalidTimezone, err, "unknown timezone %q", c.Timezone)
	}

	color := c.Color

	switch color {
	case console.ColorAuto, "":
		color = console.ColorNever
		if isTerminal(stdout) {
			color = console.ColorAlways
		}
	case console.ColorAlways, console.ColorNever:
	default:
		return console.Config{}, errors.Newf(errors.ErrCodeInvalidColorMode, "invalid color mode %q", c.Color)
	}

	return console.Config{
		Stdout:   stdout,
		LogDir:   c.LogDir,
		Location: location,
		Clock:    time.Now,
		Color:    color,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
