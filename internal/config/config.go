// Package config holds the settings of a seamcarve run: which pictures to
// carve, how far, where results go and how the run logs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Validate and Load.
var (
	ErrNoInputs        = errors.New("config: at least one input is required")
	ErrBadWorkers      = errors.New("config: workers must be >= 0")
	ErrBadSeamCount    = errors.New("config: seam counts must be >= 0")
	ErrBadTarget       = errors.New("config: target width and height must be >= 0")
	ErrConflictingMode = errors.New("config: seam counts and target size are mutually exclusive")
	ErrNothingToDo     = errors.New("config: no seams to remove and no target size")
	ErrBadQuality      = errors.New("config: jpeg quality must be in [1,100]")
	ErrBadDPI          = errors.New("config: pdf dpi must be in [18,1200]")
	ErrBadLogLevel     = errors.New("config: unknown log level")
	ErrBadLogFormat    = errors.New("config: log format must be console or json")
)

// Log configures the run logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full set of run settings. Zero Width/Height keep that
// dimension unchanged when the other one is set; zero Workers means one
// worker per physical core.
type Config struct {
	Inputs        []string `yaml:"inputs"`
	OutDir        string   `yaml:"out_dir"`
	Suffix        string   `yaml:"suffix"`
	Format        string   `yaml:"format"`
	Vertical      int      `yaml:"vertical"`
	Horizontal    int      `yaml:"horizontal"`
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	Workers       int      `yaml:"workers"`
	FullRecompute bool     `yaml:"full_recompute"`
	EnergyDump    bool     `yaml:"energy_dump"`
	JPEGQuality   int      `yaml:"jpeg_quality"`
	PDFDPI        int      `yaml:"pdf_dpi"`
	Report        string   `yaml:"report"`
	Log           Log      `yaml:"log"`
}

// Default returns the settings used when neither a file nor a flag says
// otherwise.
func Default() Config {
	return Config{
		Suffix:      "_carved",
		JPEGQuality: 90,
		PDFDPI:      150,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over Default(). Unknown keys are rejected so a
// typo does not silently fall back to a default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resizing reports whether the run targets a size rather than seam counts.
func (c Config) Resizing() bool {
	return c.Width > 0 || c.Height > 0
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInputs
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}
	if c.Vertical < 0 || c.Horizontal < 0 {
		return fmt.Errorf("%w: vertical=%d horizontal=%d", ErrBadSeamCount, c.Vertical, c.Horizontal)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadTarget, c.Width, c.Height)
	}
	counts := c.Vertical > 0 || c.Horizontal > 0
	if counts && c.Resizing() {
		return ErrConflictingMode
	}
	if !counts && !c.Resizing() && !c.EnergyDump {
		return ErrNothingToDo
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: %d", ErrBadQuality, c.JPEGQuality)
	}
	if c.PDFDPI < 18 || c.PDFDPI > 1200 {
		return fmt.Errorf("%w: %d", ErrBadDPI, c.PDFDPI)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.Log.Format)
	}

	return nil
}
