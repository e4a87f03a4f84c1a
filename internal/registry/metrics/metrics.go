package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes tracked by the processed counter.
const (
	OutcomeMinted     = "minted"
	OutcomeDuplicate  = "duplicate"
	OutcomeInvalidKey = "invalid_key"
)

// Metrics provides observability for the registry module.
type Metrics struct {
	Processed      *prometheus.CounterVec
	InsertDuration prometheus.Histogram
	Tenants        prometheus.Gauge
	Keys           prometheus.Gauge
}

// New creates a Metrics instance with all registry metrics registered on the
// default registerer.
func New() *Metrics {
	return &Metrics{
		Processed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "keymint_process_requests_total",
			Help: "Total process calls by outcome (minted, duplicate, invalid_key)",
		}, []string{"outcome"}),
		InsertDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "keymint_insert_or_get_duration_seconds",
			Help:    "Duration of registry insert-or-get operations",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		Tenants: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "keymint_tenants",
			Help: "Number of tenants with at least one registered key",
		}),
		Keys: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "keymint_keys",
			Help: "Number of (tenant, key) pairs with an assigned identity",
		}),
	}
}

// ObserveProcessed records one completed process call.
func (m *Metrics) ObserveProcessed(outcome string) {
	m.Processed.WithLabelValues(outcome).Inc()
}

// ObserveInsert records the duration of one insert-or-get, measured from
// start.
func (m *Metrics) ObserveInsert(start time.Time) {
	m.InsertDuration.Observe(time.Since(start).Seconds())
}

// SetRegistrySize updates the tenant/key gauges from a store snapshot.
func (m *Metrics) SetRegistrySize(tenants, keys int) {
	m.Tenants.Set(float64(tenants))
	m.Keys.Set(float64(keys))
}
