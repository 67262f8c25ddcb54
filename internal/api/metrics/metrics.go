// Package metrics defines and registers all custom Prometheus metrics for the
// clubhub API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clubhub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRejectionsTotal counts gated requests rejected by the session guard.
// Label:
//   - reason: "missing_token", "invalid_token", or "no_session"
var SessionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rejections_total",
		Help:      "Total number of requests rejected by the session guard, by reason.",
	},
	[]string{"reason"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successful account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// ── Club metrics ──────────────────────────────────────────────────────────────

// ClubsCreatedTotal counts newly created clubs.
var ClubsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clubs_created_total",
		Help:      "Total number of clubs created.",
	},
)

// JoinRequestsTotal counts join-request attempts.
// Label:
//   - result: "ok", "not_found", "recruiting_closed", "already_member", "duplicate"
var JoinRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "join_requests_total",
		Help:      "Total number of club join-request attempts, by result.",
	},
	[]string{"result"},
)

// ── Activity trail metrics ────────────────────────────────────────────────────

// ActivitiesRecordedTotal counts activities persisted to the audit trail.
// Label:
//   - kind: activity kind (e.g. "account.created")
var ActivitiesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_recorded_total",
		Help:      "Total number of activities successfully recorded.",
	},
	[]string{"kind"},
)

// ActivitiesErrorsTotal counts activities that failed recording.
// Label:
//   - kind: activity kind
var ActivitiesErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_errors_total",
		Help:      "Total number of activities that failed recording.",
	},
	[]string{"kind"},
)

// ActivityQueueDepth tracks the current number of activities waiting in each
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activities pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
