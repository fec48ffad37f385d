package config

import "time"

// Default values applied to unset configuration fields.
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMetricsNamespace = "vigil"
	DefaultMetricsSubsystem = "validation"
	DefaultMetricsListen    = ":9464"
	DefaultMetricsPath      = "/metrics"
	DefaultDebounceInterval = 200 * time.Millisecond
)

// DefaultArtifactExtensions are the artifact file extensions recognized when
// reading a directory.
var DefaultArtifactExtensions = []string{".json", ".yaml", ".yml"}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields with default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}

	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsListen
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}

	if len(cfg.Artifact.Extensions) == 0 {
		cfg.Artifact.Extensions = append([]string(nil), DefaultArtifactExtensions...)
	}

	if cfg.Watch.DebounceInterval <= 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}
}
