package sparql

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for store round trips.
type Metrics struct {
	queriesTotal  prometheus.Counter
	queryErrors   prometheus.Counter
	queryDuration prometheus.Histogram
}

// NewMetrics creates the gateway collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gaung",
			Subsystem: "store",
			Name:      "queries_total",
			Help:      "Total SPARQL queries sent to the store.",
		}),
		queryErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gaung",
			Subsystem: "store",
			Name:      "query_errors_total",
			Help:      "SPARQL queries that failed (transport or store error).",
		}),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gaung",
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Store round-trip latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.queriesTotal, m.queryErrors, m.queryDuration)
	}
	return m
}
