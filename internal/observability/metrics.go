// Package observability holds the Prometheus instrumentation for the
// dataset loader and the HTTP API.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus gauges, counters, and histograms.
type Metrics struct {
	RowsLoaded  prometheus.Gauge
	RowsDropped prometheus.Gauge
	LoadSeconds prometheus.Histogram

	HTTPRequests *prometheus.CounterVec   // labels: route, code
	HTTPDuration *prometheus.HistogramVec // labels: route
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agroclim",
			Name:      "dataset_rows_loaded",
			Help:      "Rows in the enriched table after date filtering.",
		}),
		RowsDropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "agroclim",
			Name:      "dataset_rows_dropped",
			Help:      "Input rows dropped for an unparseable date.",
		}),
		LoadSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agroclim",
			Name:      "dataset_load_seconds",
			Help:      "Duration of a full dataset load and enrichment.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroclim",
			Name:      "http_requests_total",
			Help:      "API requests by route and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agroclim",
			Name:      "http_request_duration_seconds",
			Help:      "API request duration by route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),
	}
}

// NewMetrics creates and registers all metrics with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsLoaded,
		m.RowsDropped,
		m.LoadSeconds,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
