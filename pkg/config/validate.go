package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true, "console": true}
)

// Validate checks a configuration for invalid values. It accumulates every
// problem found and reports them together.
func Validate(cfg *Config) error {
	var problems []string

	if !validLogLevels[cfg.Telemetry.Logging.Level] {
		problems = append(problems, fmt.Sprintf(
			"telemetry.logging.level: unknown level %q (expected debug, info, warn, error)",
			cfg.Telemetry.Logging.Level))
	}
	if !validLogFormats[cfg.Telemetry.Logging.Format] {
		problems = append(problems, fmt.Sprintf(
			"telemetry.logging.format: unknown format %q (expected json, text, console)",
			cfg.Telemetry.Logging.Format))
	}

	if cfg.Telemetry.Metrics.Enabled {
		if cfg.Telemetry.Metrics.ListenAddress == "" {
			problems = append(problems, "telemetry.metrics.listen_address: required when metrics are enabled")
		}
		if !strings.HasPrefix(cfg.Telemetry.Metrics.Path, "/") {
			problems = append(problems, fmt.Sprintf(
				"telemetry.metrics.path: %q must start with '/'", cfg.Telemetry.Metrics.Path))
		}
	}

	for _, ext := range cfg.Artifact.Extensions {
		if !strings.HasPrefix(ext, ".") {
			problems = append(problems, fmt.Sprintf(
				"artifact.extensions: %q must start with '.'", ext))
		}
	}

	if cfg.Watch.DebounceInterval < 0 {
		problems = append(problems, "watch.debounce_interval: must not be negative")
	}
	if cfg.Watch.SweepSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Watch.SweepSchedule); err != nil {
			problems = append(problems, fmt.Sprintf(
				"watch.sweep_schedule: invalid cron expression %q: %v", cfg.Watch.SweepSchedule, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s):\n  - %s", len(problems), strings.Join(problems, "\n  - "))
	}
	return nil
}
