// Package metrics defines and registers all custom Prometheus metrics for the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings. All metrics register with the default registry at init
// time via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts tokens minted through POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// TokensRevokedTotal counts tokens parked in the revocation set at logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of access tokens revoked before expiry.",
	},
)

// AuthRejectedTotal counts requests the auth middleware turned away.
// Label:
//   - reason: "missing", "invalid", or "revoked"
var AuthRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejected_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ContentWritesTotal counts successful content mutations.
// Labels:
//   - collection: the content collection written to (e.g. "portfolio")
//   - operation: "insert", "update", or "delete"
var ContentWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_writes_total",
		Help:      "Total number of successful content writes, by collection and operation.",
	},
	[]string{"collection", "operation"},
)

// UsersRegisteredTotal counts registration attempts.
// Label:
//   - result: "created" (new user) or "exists" (idempotent no-op)
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user registration attempts, by result.",
	},
	[]string{"result"},
)
