// Package metrics defines and registers all custom Prometheus metrics for the
// cartowiki backend. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cartowiki"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts sign-up attempts.
// Label:
//   - result: "created", or the rejection reason ("username_taken",
//     "email_taken", "invalid_email", "field_too_long", "error")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountMutationsTotal counts successful mutations of existing accounts.
// Label:
//   - operation: "edit" or "delete"
var AccountMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_mutations_total",
		Help:      "Total number of successful account edits and deletions.",
	},
	[]string{"operation"},
)

// ── GeoServer proxy metrics ───────────────────────────────────────────────────

// GeoCacheTotal counts cache decisions for the geojson proxy.
// Label:
//   - result: "hit" or "miss"
var GeoCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geo_cache_total",
		Help:      "Total number of geo cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// GeoUpstreamRequestsTotal counts requests made to the upstream GeoServer.
// Label:
//   - result: "ok" or "error"
var GeoUpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geo_upstream_requests_total",
		Help:      "Total number of WFS requests sent to GeoServer, by result.",
	},
	[]string{"result"},
)

// GeoUpstreamDuration measures how long a single upstream WFS request takes.
var GeoUpstreamDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geo_upstream_duration_seconds",
		Help:      "Duration of upstream GeoServer WFS requests.",
		Buckets:   prometheus.DefBuckets,
	},
)
