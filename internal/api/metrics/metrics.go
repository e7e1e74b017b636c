// Package metrics defines and registers all custom Prometheus metrics for the
// OceanLk admin API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "oceanlk"

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersCreatedTotal counts administratively created accounts.
// Label:
//   - role: "ADMIN" or "SUPER_ADMIN"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created through the admin API, by role.",
	},
	[]string{"role"},
)

// UsersDeletedTotal counts deleted accounts.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted through the admin API.",
	},
)

// AuthAttemptsTotal counts authentication attempts.
// Label:
//   - result: "success", "invalid_credentials", "deactivated", or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsCreatedTotal counts created notifications.
// Label:
//   - type: "INFO", "WARNING", or "ERROR"
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications created, by type.",
	},
	[]string{"type"},
)

// NotificationsSwallowedTotal counts notification writes that failed and were
// swallowed under the best-effort contract.
var NotificationsSwallowedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_swallowed_total",
		Help:      "Total number of notification writes that failed and were discarded.",
	},
)

// NotificationsMarkedReadTotal counts unread-to-read transitions.
var NotificationsMarkedReadTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_marked_read_total",
		Help:      "Total number of notifications marked as read.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditWriteFailuresTotal counts audit writes that failed and were discarded
// under the fire-and-forget contract.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit log writes that failed and were discarded.",
	},
)

// AuditQueueDroppedTotal counts audit entries dropped because the background
// writer's queue was full.
var AuditQueueDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_queue_dropped_total",
		Help:      "Total number of audit entries dropped due to a saturated write queue.",
	},
)
