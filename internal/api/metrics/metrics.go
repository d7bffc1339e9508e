// Package metrics defines all custom Prometheus metrics for the publishing
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "publishing"

// ── Article metrics ───────────────────────────────────────────────────────────

// ArticlesCreatedTotal counts drafts created.
var ArticlesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles created.",
	},
)

// ArticlesPublishedTotal counts successful draft → published transitions.
var ArticlesPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_published_total",
		Help:      "Total number of articles published.",
	},
)

// ArticlesDeletedTotal counts admin deletions.
var ArticlesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_deleted_total",
		Help:      "Total number of articles deleted.",
	},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDenialsTotal counts deny decisions surfaced to callers.
// Label:
//   - role: the denied actor's role name
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by actor role.",
	},
	[]string{"role"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// EventsRecordedTotal counts audit events written successfully.
// Label:
//   - action: "created", "published", or "deleted"
var EventsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_recorded_total",
		Help:      "Total number of article lifecycle events recorded.",
	},
	[]string{"action"},
)

// EventsErrorsTotal counts audit events that failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "record_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of article lifecycle events that failed recording.",
	},
	[]string{"reason"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// FeedCacheTotal counts published-feed cache lookups.
// Label:
//   - result: "hit" or "miss"
var FeedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_cache_total",
		Help:      "Total number of published-feed cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
