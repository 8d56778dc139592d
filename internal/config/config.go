// Package config handles converter configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all converter settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig holds conversion settings.
type ConvertConfig struct {
	Scale   float32 `yaml:"scale"`   // World units per stud
	Workers int     `yaml:"workers"` // Concurrent brick assemblers
}

// OutputConfig holds place file settings.
type OutputConfig struct {
	Path        string `yaml:"path"`
	Compression string `yaml:"compression"` // none, gzip or zstd
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	File string `yaml:"file"` // Prometheus text file, empty to disable
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Quiet   bool   `yaml:"quiet"` // No console output
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Scale:   1,
			Workers: 1,
		},
		Output: OutputConfig{
			Path:        "result.rbxlx",
			Compression: "none",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks settings that would make a run fail later.
func (c *Config) Validate() error {
	if c.Convert.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidConfig, c.Convert.Scale)
	}
	if c.Convert.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Convert.Workers)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidConfig)
	}
	switch c.Output.Compression {
	case "", "none", "gzip", "zstd":
	default:
		return fmt.Errorf("%w: unknown compression %q", ErrInvalidConfig, c.Output.Compression)
	}
	return nil
}
