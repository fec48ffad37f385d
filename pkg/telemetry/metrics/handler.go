package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler serving the metrics in Prometheus
// exposition format. Only watch mode mounts it; one-shot validation commands
// never open a listener.
func (vm *ValidationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(vm.registry, promhttp.HandlerOpts{})
}
