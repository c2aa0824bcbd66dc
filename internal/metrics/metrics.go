// Package metrics exposes realtime counters to Prometheus. A nil *Metrics
// is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gosocial_realtime"

type Metrics struct {
	connections     prometheus.Gauge
	onlineUsers     prometheus.Gauge
	framesIn        *prometheus.CounterVec
	framesDropped   *prometheus.CounterVec
	evictions       prometheus.Counter
	persistDuration prometheus.Histogram
	persistFailures prometheus.Counter
	syncRequests    prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections",
			Help:      "Open realtime connections.",
		}),
		onlineUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "online_users",
			Help:      "Users with at least one open connection.",
		}),
		framesIn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_received_total",
			Help:      "Inbound frames by kind.",
		}, []string{"kind"}),
		framesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_dropped_total",
			Help:      "Inbound frames dropped by reason.",
		}, []string{"reason"}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slow_consumer_evictions_total",
			Help:      "Connections closed because their outbound queue was full.",
		}),
		persistDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "persist_duration_seconds",
			Help:      "Time spent persisting a chat message.",
			Buckets:   prometheus.DefBuckets,
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Chat messages that were broadcast but not persisted.",
		}),
		syncRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delta_sync_requests_total",
			Help:      "Delta sync pages served.",
		}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.connections,
		m.onlineUsers,
		m.framesIn,
		m.framesDropped,
		m.evictions,
		m.persistDuration,
		m.persistFailures,
		m.syncRequests,
	)
	return m
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connections.Dec()
}

func (m *Metrics) SetOnlineUsers(n int) {
	if m == nil {
		return
	}
	m.onlineUsers.Set(float64(n))
}

func (m *Metrics) FrameReceived(kind string) {
	if m == nil {
		return
	}
	m.framesIn.WithLabelValues(kind).Inc()
}

func (m *Metrics) FrameDropped(reason string) {
	if m == nil {
		return
	}
	m.framesDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) Evicted() {
	if m == nil {
		return
	}
	m.evictions.Inc()
}

func (m *Metrics) ObservePersist(start time.Time, err error) {
	if m == nil {
		return
	}
	m.persistDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.persistFailures.Inc()
	}
}

func (m *Metrics) SyncServed() {
	if m == nil {
		return
	}
	m.syncRequests.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
