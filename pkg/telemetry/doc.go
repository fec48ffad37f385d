// Package telemetry groups the observability subpackages for Vigil.
//
// # Components
//
//   - logging: structured logging via log/slog
//   - metrics: Prometheus metrics for validation activity
//   - health: liveness and readiness probes for watch mode
//
// One-shot CLI checks use logging only; metrics and the health probes belong
// to the long-running watch process, which exposes both on one listener so
// recorded values are actually scrapeable.
package telemetry
