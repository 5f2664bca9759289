// Package metrics exports the service counters to Prometheus.
package metrics

import (
	"log/slog"
	"net/http"

	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "lineconnect"

// PrometheusMetrics implements service.Metrics on its own registry.
type PrometheusMetrics struct {
	registry       *prometheus.Registry
	webhookEvents  *prometheus.CounterVec
	deliveries     *prometheus.CounterVec
	deliveryTries  *prometheus.HistogramVec
	authCallbacks  *prometheus.CounterVec
	linkOperations *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors and registers them together with
// the Go runtime and process collectors.
func NewPrometheusMetrics(logger *slog.Logger) *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Webhook events by processing result.",
		}, []string{"result"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Outbound push and reply requests by final status.",
		}, []string{"kind", "status"}),
		deliveryTries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "delivery_attempts",
			Help:      "Attempts used per outbound request.",
			Buckets:   []float64{1, 2, 3, 5},
		}, []string{"kind"}),
		authCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_callbacks_total",
			Help:      "Authorization callbacks by result.",
		}, []string{"result"}),
		linkOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_links_total",
			Help:      "Identity link attempts by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.webhookEvents,
		m.deliveries,
		m.deliveryTries,
		m.authCallbacks,
		m.linkOperations,
	} {
		if err := m.registry.Register(c); err != nil {
			logger.Warn("Failed to register metric collector", slog.Any("error", err))
		}
	}

	return m
}

func (m *PrometheusMetrics) WebhookEvent(result string) {
	m.webhookEvents.WithLabelValues(result).Inc()
}

func (m *PrometheusMetrics) Delivery(kind entity.DeliveryKind, status entity.DeliveryStatus, attempts int) {
	m.deliveries.WithLabelValues(string(kind), string(status)).Inc()
	m.deliveryTries.WithLabelValues(string(kind)).Observe(float64(attempts))
}

func (m *PrometheusMetrics) AuthCallback(result string) {
	m.authCallbacks.WithLabelValues(result).Inc()
}

func (m *PrometheusMetrics) Link(outcome string) {
	m.linkOperations.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewPrometheusMetrics,
		func(m *PrometheusMetrics) service.Metrics { return m },
	),
)
