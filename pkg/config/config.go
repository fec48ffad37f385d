package config

import "time"

// Config is the root configuration for the vigil validator CLI.
type Config struct {
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Artifact  ArtifactConfig  `yaml:"artifact"`
	Watch     WatchConfig     `yaml:"watch"`
}

// TelemetryConfig groups observability settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig controls structured logging output.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the output format ("json", "text", "console").
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig controls Prometheus metrics collection and, in watch mode,
// the optional scrape endpoint.
type MetricsConfig struct {
	// Enabled turns metric collection on.
	Enabled bool `yaml:"enabled"`

	// Namespace and Subsystem prefix every metric name.
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`

	// ListenAddress is the scrape endpoint address used by watch mode
	// (e.g. ":9464"). One-shot commands never listen.
	ListenAddress string `yaml:"listen_address"`

	// Path is the scrape endpoint path.
	Path string `yaml:"path"`
}

// ArtifactConfig controls artifact discovery.
type ArtifactConfig struct {
	// Extensions lists the file extensions read from directory artifacts.
	Extensions []string `yaml:"extensions"`
}

// WatchConfig controls the continuous-conformance watch mode.
type WatchConfig struct {
	// DebounceInterval is the quiet period after a file event before the
	// artifact is re-validated.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// SweepSchedule is an optional cron expression for periodic
	// re-validation sweeps independent of file events. Empty disables sweeps.
	SweepSchedule string `yaml:"sweep_schedule"`
}
