// Package metrics exposes Prometheus metrics for the hub and optionally mirrors business
// counters to CloudWatch.
// File: metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-ultimate-hub/services"
)

const namespace = "ultimate_hub"

// Registry holds every Prometheus metric the hub records. Each Registry owns its own
// prometheus.Registry so several can coexist in one process.
type Registry struct {
	reg *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Business Metrics
	ActionsTotal    *prometheus.CounterVec
	CheckInsTotal   *prometheus.CounterVec
	LiveConnections prometheus.Gauge
}

// Ensure Registry implements services.Notifier
var _ services.Notifier = (*Registry)(nil)

// NewRegistry initializes and returns a Registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		ActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "State changes published by the store, by action",
			},
			[]string{"action"},
		),
		CheckInsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkins_total",
				Help:      "QR check-in attempts by outcome",
			},
			[]string{"outcome"},
		),
		LiveConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "live_connections",
				Help:      "Current number of live update feed connections",
			},
		),
	}
}

// Notify counts a published state change.
func (r *Registry) Notify(action string, _ map[string]interface{}) {
	r.ActionsTotal.WithLabelValues(action).Inc()
	switch action {
	case services.ActionCheckIn:
		r.CheckInsTotal.WithLabelValues("success").Inc()
	case services.ActionCheckInRejected:
		r.CheckInsTotal.WithLabelValues("rejected").Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
