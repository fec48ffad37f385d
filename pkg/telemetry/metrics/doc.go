// Package metrics provides Prometheus metrics for validator activity. The
// validators themselves are pure; watch mode records around each re-validation
// and exposes the private registry over HTTP when enabled in configuration.
// One-shot commands do not record: a registry that dies with the process has
// nothing to scrape it.
package metrics
