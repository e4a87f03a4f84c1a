package metrics_test

import (
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"keymint/internal/registry/metrics"
)

// One New() call for the whole package: promauto registers on the default
// registerer, and a second registration of the same names would panic.
func TestMetricsObservations(t *testing.T) {
	m := metrics.New()

	m.ObserveProcessed(metrics.OutcomeMinted)
	m.ObserveProcessed(metrics.OutcomeMinted)
	m.ObserveProcessed(metrics.OutcomeDuplicate)
	m.ObserveProcessed(metrics.OutcomeInvalidKey)
	m.ObserveInsert(time.Now())
	m.SetRegistrySize(2, 3)

	assert.Equal(t, float64(2), promtest.ToFloat64(m.Processed.WithLabelValues(metrics.OutcomeMinted)))
	assert.Equal(t, float64(1), promtest.ToFloat64(m.Processed.WithLabelValues(metrics.OutcomeDuplicate)))
	assert.Equal(t, float64(1), promtest.ToFloat64(m.Processed.WithLabelValues(metrics.OutcomeInvalidKey)))
	assert.Equal(t, float64(2), promtest.ToFloat64(m.Tenants))
	assert.Equal(t, float64(3), promtest.ToFloat64(m.Keys))
}
