// Package metrics provides Prometheus collectors for the HTTP API
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"haversine/internal/coordinates"
)

const (
	namespace = "haversine"

	OutcomeOK = "ok"
)

// Metrics holds the collectors registered for one API instance
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPActiveRequests  prometheus.Gauge
	EvaluationsTotal    *prometheus.CounterVec
}

// New creates collectors on a fresh registry, so several instances can
// coexist in one process (tests create one per app)
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		HTTPActiveRequests: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_active_requests",
				Help:      "Number of active HTTP requests",
			},
		),
		EvaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Coordinate evaluations by outcome (ok or validation error code)",
			},
			[]string{"outcome"},
		),
	}
}

// ObserveEvaluation counts one evaluation. A nil error counts as "ok", a
// validation error by its kind code, anything else as "error".
func (m *Metrics) ObserveEvaluation(err error) {
	m.EvaluationsTotal.WithLabelValues(Outcome(err)).Inc()
}

// Outcome returns the metric label for an evaluation result
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var verr *coordinates.ValidationError
	if errors.As(err, &verr) {
		return verr.Kind.String()
	}
	return "error"
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
