package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fakeapi"

// Metrics holds the collectors for simulated and pass-through traffic.
type Metrics struct {
	SimulatedRequests *prometheus.CounterVec
	PassThrough       prometheus.Counter
	Unauthorized      prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		SimulatedRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulated_requests_total",
			Help:      "Total number of requests answered by the simulated backend",
		}, []string{"route", "status"}),
		PassThrough: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passthrough_requests_total",
			Help:      "Total number of requests forwarded to the real transport",
		}),
		Unauthorized: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unauthorized_requests_total",
			Help:      "Total number of guarded requests rejected for a missing or wrong token",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulated_request_duration_seconds",
			Help:      "Time spent in route handlers, excluding simulated latency",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"route"}),
	}
}

// ObserveSimulated records one simulated response.
func (m *Metrics) ObserveSimulated(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SimulatedRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncrementPassThrough counts one forwarded request.
func (m *Metrics) IncrementPassThrough() {
	if m == nil {
		return
	}
	m.PassThrough.Inc()
}

// IncrementUnauthorized counts one rejected guarded request.
func (m *Metrics) IncrementUnauthorized() {
	if m == nil {
		return
	}
	m.Unauthorized.Inc()
}
