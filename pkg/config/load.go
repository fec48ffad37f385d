package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file, applies defaults and environment
// overrides, and validates the result. An empty path yields the default
// configuration (with environment overrides still applied).
//
// The loading sequence is:
//  1. Load YAML from file (if a path is given)
//  2. Apply default values
//  3. Apply VIGIL_* environment variable overrides
//  4. Validate the final configuration
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadOptional behaves like Load but falls back to defaults when the file
// does not exist. It is used for the implicit config path, where absence is
// not an error.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return Load("")
	}
	return cfg, err
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format VIGIL_SECTION_FIELD and
// always take precedence over file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("VIGIL_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("VIGIL_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("VIGIL_LOGGING_ADD_SOURCE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Logging.AddSource = b
		}
	}

	if val := os.Getenv("VIGIL_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("VIGIL_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
	if val := os.Getenv("VIGIL_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}

	if val := os.Getenv("VIGIL_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}
	if val := os.Getenv("VIGIL_WATCH_SWEEP_SCHEDULE"); val != "" {
		cfg.Watch.SweepSchedule = val
	}
}
