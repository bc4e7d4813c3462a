package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsManager holds the custom Prometheus metrics of the property API.
type MetricsManager struct {
	Registry               *prometheus.Registry
	PropertiesCreatedTotal prometheus.Counter
	CategoryRequestsTotal  prometheus.Counter
	APIErrorsTotal         *prometheus.CounterVec
	APILatency             *prometheus.HistogramVec
}

// NewMetricsManager initializes and registers the metrics on a private registry.
func NewMetricsManager(namespace string) *MetricsManager {
	registry := prometheus.NewRegistry()

	propertiesCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of property listings created.",
	})
	categoryRequests := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_requests_total",
		Help:      "Total number of taxonomy requests served.",
	})
	apiErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of API errors by route.",
	}, []string{"route", "error_type"})
	apiLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_latency_seconds",
		Help:      "Latency of API requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	registry.MustRegister(
		propertiesCreated,
		categoryRequests,
		apiErrors,
		apiLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:               registry,
		PropertiesCreatedTotal: propertiesCreated,
		CategoryRequestsTotal:  categoryRequests,
		APIErrorsTotal:         apiErrors,
		APILatency:             apiLatency,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *MetricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
