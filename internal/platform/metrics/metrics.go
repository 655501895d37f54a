// Package metrics defines the service's custom Prometheus metrics. It is the
// single source of truth for metric names, labels, and help strings.
//
// Metrics registered through promauto attach to the default registry; the
// /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tour"

// RouteCacheLookupsTotal counts route cache lookups by result.
// Label:
//   - result: "hit" (served from the persistent cache) or "miss"
var RouteCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_cache_lookups_total",
		Help:      "Total number of route distance cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// RoutingRequestsTotal counts calls to the external routing service.
// Label:
//   - status: "ok" or "error"
var RoutingRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "routing_requests_total",
		Help:      "Total number of external routing service calls, labelled by outcome.",
	},
	[]string{"status"},
)

// RoutingRequestDuration measures external routing call latency in seconds.
var RoutingRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "routing_request_duration_seconds",
		Help:      "Latency of external routing service calls.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ItineraryBuildsTotal counts completed itinerary builds.
var ItineraryBuildsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "itinerary_builds_total",
		Help:      "Total number of itinerary builds served.",
	},
)
