// Package metrics provides Prometheus instrumentation for the dashboard
// service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Custom registry to avoid the default Go collectors.
var registry = prometheus.NewRegistry()

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	fetchTotal     prometheus.Counter
	fetchFailures  prometheus.Counter
	fetchDuration  prometheus.Histogram
	recordsLoaded  prometheus.Gauge
	recordsSkipped prometheus.Counter
	staleDropped   prometheus.Counter
}

// NewManager registers the service metrics on the given registerer.
func NewManager(reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	return &Manager{
		fetchTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "controle_acesso",
			Name:      "records_fetch_total",
			Help:      "Fetch attempts against the upstream records API.",
		}),
		fetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "controle_acesso",
			Name:      "records_fetch_failures_total",
			Help:      "Fetch attempts that exhausted their retries.",
		}),
		fetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "controle_acesso",
			Name:      "records_fetch_duration_seconds",
			Help:      "End-to-end duration of records fetches, retries included.",
			Buckets:   prometheus.DefBuckets,
		}),
		recordsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "controle_acesso",
			Name:      "records_loaded",
			Help:      "Events currently held in the record store.",
		}),
		recordsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "controle_acesso",
			Name:      "records_skipped_total",
			Help:      "Malformed upstream records skipped during decoding.",
		}),
		staleDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "controle_acesso",
			Name:      "refresh_stale_dropped_total",
			Help:      "Refresh results discarded because a newer one was already applied.",
		}),
	}
}

// NewDefaultManager registers on the package registry served by Handler.
func NewDefaultManager() *Manager {
	return NewManager(registry)
}

// Handler serves the package registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// All methods are nil-safe so components can run uninstrumented in tests.

func (m *Manager) FetchSucceeded(d time.Duration, loaded int) {
	if m == nil {
		return
	}
	m.fetchTotal.Inc()
	m.fetchDuration.Observe(d.Seconds())
	m.recordsLoaded.Set(float64(loaded))
}

func (m *Manager) FetchFailed(d time.Duration) {
	if m == nil {
		return
	}
	m.fetchTotal.Inc()
	m.fetchFailures.Inc()
	m.fetchDuration.Observe(d.Seconds())
}

func (m *Manager) RecordSkipped() {
	if m == nil {
		return
	}
	m.recordsSkipped.Inc()
}

func (m *Manager) StaleDropped() {
	if m == nil {
		return
	}
	m.staleDropped.Inc()
}
