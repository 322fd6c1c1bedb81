// Package metrics defines and registers all custom Prometheus metrics for
// the publishing API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "publishing"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignUpsTotal counts successfully registered accounts.
var SignUpsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RoleChangesTotal counts successful privilege transitions.
// Label:
//   - action: "promote" or "demote"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of successful admin promotions and demotions.",
	},
	[]string{"action"},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostsDeletedTotal counts deleted posts.
// Label:
//   - actor: "owner" or "admin"
var PostsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted, labelled by acting role.",
	},
	[]string{"actor"},
)

// PostListDuration measures how long one listing query takes end-to-end.
var PostListDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "post_list_duration_seconds",
		Help:      "Duration of post listing queries.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
