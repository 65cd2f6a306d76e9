// Package config loads and normalizes generation pipeline configuration.
// Configuration comes from an optional YAML file, with environment
// variables (AWESOMEGEN_*) layered on top.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// Config is the full pipeline configuration after defaults and
// normalization have been applied.
type Config struct {
	// Dataset is the path to the resource CSV file.
	Dataset string `yaml:"dataset"`
	// TemplatesDir holds template fragments and the category schema.
	TemplatesDir string `yaml:"templates_dir"`
	// AssetsDir holds badges and other static files referenced by output.
	AssetsDir string `yaml:"assets_dir"`
	// OutputDir is the root all generated documents are written under.
	OutputDir string `yaml:"output_dir"`
	// RootStyle selects which primary style owns README.md.
	RootStyle string `yaml:"root_style"`

	History HistoryConfig `yaml:"history"`
	Watch   WatchConfig   `yaml:"watch"`
}

// HistoryConfig controls the generation run ledger.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// WatchConfig controls watch mode behavior.
type WatchConfig struct {
	// Debounce coalesces bursts of filesystem events into one rebuild.
	Debounce Duration `yaml:"debounce"`
	// Interval triggers periodic rebuilds regardless of file events.
	// Zero disables the schedule.
	Interval Duration `yaml:"interval"`
	// MetricsAddr, when non-empty, serves Prometheus metrics on that address.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Duration wraps time.Duration with YAML support for values like "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load reads the config file at path, applies environment overrides,
// defaults, and validation. A missing file is not an error when path is
// empty; the defaults then fully describe the pipeline.
func Load(path string) (*Config, error) {
	loadEnvFile()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, pkgerrors.Wrap(err, pkgerrors.CategoryConfig, pkgerrors.SeverityError, "read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, pkgerrors.Wrap(err, pkgerrors.CategoryConfig, pkgerrors.SeverityError, "parse config file")
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Dataset == "" {
		return pkgerrors.ConfigError("dataset path must not be empty")
	}
	if c.TemplatesDir == "" {
		return pkgerrors.ConfigError("templates directory must not be empty")
	}
	if c.History.Enabled && c.History.Path == "" {
		return pkgerrors.ConfigError("history is enabled but no database path is set")
	}
	if c.Watch.Debounce.Std() < 0 || c.Watch.Interval.Std() < 0 {
		return pkgerrors.ConfigError("watch durations must not be negative")
	}
	return nil
}
