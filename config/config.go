// Package config provides store configuration with file and environment
// sources.
//
// Precedence is defaults, then an optional YAML file, then environment
// variables prefixed FLUXION_.
package config

import "fmt"

// Config holds store and tooling configuration options.
type Config struct {
	// LogLevel is the minimum log level: debug, info, warn, or error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// EnableMetrics enables per-action dispatch metrics.
	EnableMetrics bool `yaml:"enable_metrics" env:"ENABLE_METRICS"`

	// RecorderCapacity bounds the devtools action log. Zero disables the
	// bound.
	RecorderCapacity int `yaml:"recorder_capacity" env:"RECORDER_CAPACITY"`

	// ScriptPaths lists Lua files loaded into the script engine.
	ScriptPaths []string `yaml:"script_paths" env:"SCRIPT_PATHS" envSeparator:":"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:         "info",
		EnableMetrics:    false,
		RecorderCapacity: 1000,
	}
}

// WithLogLevel returns a copy of the config with the log level set.
func (c Config) WithLogLevel(level string) Config {
	c.LogLevel = level
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithRecorderCapacity returns a copy of the config with the recorder
// capacity set.
func (c Config) WithRecorderCapacity(n int) Config {
	c.RecorderCapacity = n
	return c
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log level %q", c.LogLevel)
	}
	if c.RecorderCapacity < 0 {
		return fmt.Errorf("config: negative recorder capacity %d", c.RecorderCapacity)
	}
	return nil
}
