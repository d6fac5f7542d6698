// Package config loads loupe configuration from .loupe/config.yml with
// LOUPE_* environment overrides.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete loupe configuration.
type Config struct {
	// Root overrides project boundary detection. Empty means walk up
	// from the working directory looking for a root marker.
	Root string `yaml:"root" mapstructure:"root"`

	Limits    LimitsConfig    `yaml:"limits" mapstructure:"limits"`
	Languages LanguagesConfig `yaml:"languages" mapstructure:"languages"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// LimitsConfig bounds what the analyzer will attempt.
type LimitsConfig struct {
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes" mapstructure:"max_file_size_bytes"` // 0 disables the gate
	ParseTimeoutMS   int   `yaml:"parse_timeout_ms" mapstructure:"parse_timeout_ms"`       // 0 disables the timeout
}

// LanguagesConfig tunes the plugin registry.
type LanguagesConfig struct {
	Disabled []string `yaml:"disabled" mapstructure:"disabled"` // language ids to leave unregistered
}

// OutputConfig controls CLI presentation.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // "table" or "json"
}

var (
	// ErrInvalidFormat indicates an unsupported output format
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidLimit indicates a negative limit value
	ErrInvalidLimit = errors.New("invalid limit")
)

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxFileSizeBytes: 10 * 1024 * 1024,
			ParseTimeoutMS:   5000,
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Validate checks that the configuration is usable.
func Validate(cfg *Config) error {
	if cfg.Limits.MaxFileSizeBytes < 0 {
		return fmt.Errorf("%w: max_file_size_bytes must be >= 0", ErrInvalidLimit)
	}
	if cfg.Limits.ParseTimeoutMS < 0 {
		return fmt.Errorf("%w: parse_timeout_ms must be >= 0", ErrInvalidLimit)
	}
	switch cfg.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("%w: %q (expected \"table\" or \"json\")", ErrInvalidFormat, cfg.Output.Format)
	}
	return nil
}
