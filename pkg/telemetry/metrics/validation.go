package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"meridian-hq/vigil/pkg/config"
	"meridian-hq/vigil/pkg/verdict"
)

// ValidationMetrics tracks validator activity.
//
// Metrics:
//   - vigil_validation_checks_total: validation calls by validator and token
//   - vigil_validation_violations_total: violations found by validator and field
//   - vigil_validation_check_duration_seconds: validation call duration
//   - vigil_validation_read_failures_total: operational artifact read failures
type ValidationMetrics struct {
	registry *prometheus.Registry

	checksTotal       *prometheus.CounterVec
	violationsTotal   *prometheus.CounterVec
	checkDuration     *prometheus.HistogramVec
	readFailuresTotal prometheus.Counter
}

// NewValidationMetrics creates validation metrics registered on a private
// registry.
func NewValidationMetrics(cfg config.MetricsConfig) *ValidationMetrics {
	registry := prometheus.NewRegistry()

	vm := &ValidationMetrics{
		registry: registry,

		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "checks_total",
				Help:      "Total number of validation calls",
			},
			[]string{"validator", "token"},
		),

		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "violations_total",
				Help:      "Total number of violations found",
			},
			[]string{"validator", "field"},
		),

		checkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "check_duration_seconds",
				Help:      "Duration of validation calls in seconds",
				// Validation is pure in-memory work plus at most one
				// directory read.
				Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12),
			},
			[]string{"validator"},
		),

		readFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "read_failures_total",
				Help:      "Total number of operational artifact read failures",
			},
		),
	}

	registry.MustRegister(
		vm.checksTotal,
		vm.violationsTotal,
		vm.checkDuration,
		vm.readFailuresTotal,
	)

	return vm
}

// Registry returns the private registry backing these metrics, for exposing a
// scrape endpoint in watch mode.
func (vm *ValidationMetrics) Registry() *prometheus.Registry {
	return vm.registry
}

// RecordCheck records one validation call and its verdict.
//
// Parameters:
//   - validator: "admission" or "schema"
//   - v: the verdict returned by the call
//   - duration: time taken by the call
func (vm *ValidationMetrics) RecordCheck(validator string, v verdict.Verdict, duration time.Duration) {
	vm.checksTotal.WithLabelValues(validator, string(v.Token)).Inc()
	vm.checkDuration.WithLabelValues(validator).Observe(duration.Seconds())
	for _, viol := range v.Violations {
		vm.violationsTotal.WithLabelValues(validator, viol.Field).Inc()
	}
}

// RecordReadFailures records operational artifact read failures.
func (vm *ValidationMetrics) RecordReadFailures(n int) {
	vm.readFailuresTotal.Add(float64(n))
}
