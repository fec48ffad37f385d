// Package config provides YAML-based configuration for the vigil CLI.
//
// Configuration is loaded from a file, filled with defaults, overridden by
// VIGIL_* environment variables, and validated:
//
//	cfg, err := config.Load("vigil.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Example configuration file:
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: false
//	artifact:
//	  extensions: [".json", ".yaml", ".yml"]
//	watch:
//	  debounce_interval: 200000000 # 200ms, nanoseconds
//	  sweep_schedule: "*/5 * * * *"
//
// Environment overrides follow the VIGIL_SECTION_FIELD convention, e.g.
// VIGIL_LOGGING_LEVEL=debug or VIGIL_METRICS_ENABLED=true.
package config
