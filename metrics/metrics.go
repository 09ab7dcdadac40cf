// Package metrics provides the Prometheus metrics for the tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all collectors, registered on an instance-owned registry so
// tests can build isolated sets.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	FeedFetchesTotal *prometheus.CounterVec
	FeedVehicles     prometheus.Gauge
	CacheRequests    *prometheus.CounterVec
	SimulationServed prometheus.Counter
	RateLimitedTotal prometheus.Counter
}

// New creates and registers all application metrics with a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metrotracker_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "metrotracker_http_request_duration_seconds",
				Help:    "HTTP request latency distribution",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		FeedFetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metrotracker_feed_fetches_total",
				Help: "GTFS-RT feed fetch attempts by feed and result",
			},
			[]string{"feed", "result"},
		),
		FeedVehicles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "metrotracker_feed_vehicles",
			Help: "Vehicles decoded from the most recent successful fetch",
		}),
		CacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metrotracker_vehicle_cache_requests_total",
				Help: "Vehicle snapshot cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		SimulationServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metrotracker_simulation_responses_total",
			Help: "Vehicle responses answered from the simulator",
		}),
		RateLimitedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metrotracker_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.FeedFetchesTotal,
		m.FeedVehicles,
		m.CacheRequests,
		m.SimulationServed,
		m.RateLimitedTotal,
	)
	return m
}

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
	CacheEmpty = "empty"
)

// ObserveFeedFetch records one fetch attempt.
func (m *Metrics) ObserveFeedFetch(feed string, ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.FeedFetchesTotal.WithLabelValues(feed, result).Inc()
}

// ObserveCache records one snapshot cache lookup outcome.
func (m *Metrics) ObserveCache(outcome string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(outcome).Inc()
}

// SetFeedVehicles records the size of the latest decoded snapshot.
func (m *Metrics) SetFeedVehicles(n int) {
	if m == nil {
		return
	}
	m.FeedVehicles.Set(float64(n))
}
