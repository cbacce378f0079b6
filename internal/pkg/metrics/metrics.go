// Package metrics defines and registers the custom Prometheus metrics of the
// blog API. It is the single source of truth for metric names, labels, and
// help strings. HTTP request metrics come from the echoprometheus middleware;
// the collectors here describe domain events.
//
// All collectors register with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" or "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "aluno" or "professor"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostWritesTotal counts successful post mutations.
// Label:
//   - op: "create", "update" or "delete"
var PostWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_writes_total",
		Help:      "Total number of post writes, by operation.",
	},
	[]string{"op"},
)

// PostSearchResults observes how many posts a search returned.
var PostSearchResults = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "post_search_results",
		Help:      "Number of posts returned per search.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	},
)
