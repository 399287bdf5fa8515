package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSimulated(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSimulated("users.list", 200, time.Millisecond)
	m.ObserveSimulated("users.list", 200, time.Millisecond)
	m.ObserveSimulated("users.authenticate", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SimulatedRequests.WithLabelValues("users.list", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SimulatedRequests.WithLabelValues("users.authenticate", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementPassThrough()
	m.IncrementUnauthorized()
	m.IncrementUnauthorized()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PassThrough))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Unauthorized))
}

func TestRegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.IncrementPassThrough()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "fakeapi_passthrough_requests_total")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSimulated("users.list", 200, time.Millisecond)
		m.IncrementPassThrough()
		m.IncrementUnauthorized()
	})
}
