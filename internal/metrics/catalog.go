package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog and discovery Prometheus metrics.
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "beautydex",
			Name:      "catalog_requests_total",
			Help:      "Total number of catalog gateway requests",
		},
		[]string{"op", "status"}, // status: "ok" / "not_found" / "error"
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "beautydex",
			Name:      "catalog_request_duration_seconds",
			Help:      "Catalog gateway request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"op"},
	)

	IntentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "beautydex",
			Name:      "intents_total",
			Help:      "Classified queries by intent",
		},
		[]string{"intent"},
	)

	DegradedResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "beautydex",
			Name:      "degraded_responses_total",
			Help:      "Responses answered with an empty result after a catalog failure",
		},
		[]string{"operation"},
	)
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers catalog and discovery metrics. Must be called once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(CatalogRequestsTotal)
	prometheus.MustRegister(CatalogRequestDuration)
	prometheus.MustRegister(IntentsTotal)
	prometheus.MustRegister(DegradedResponsesTotal)
	catalogMetricsRegistered = true
}
