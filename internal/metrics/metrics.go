// Package metrics defines and registers all custom Prometheus metrics for the
// sweet shop inventory API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Inventory metrics ─────────────────────────────────────────────────────────

// PurchasesTotal counts purchase attempts.
// Label:
//   - result: "ok", "out_of_stock", "not_found", or "error"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by result.",
	},
	[]string{"result"},
)

// RestocksTotal counts restock attempts.
// Label:
//   - result: "ok", "not_found", or "error"
var RestocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of restock attempts, by result.",
	},
	[]string{"result"},
)

// SweetsCreatedTotal counts sweets added to the catalog.
// Label:
//   - category: the category supplied at creation
var SweetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_created_total",
		Help:      "Total number of sweets created, by category.",
	},
	[]string{"category"},
)

// ── Stock event pipeline metrics ──────────────────────────────────────────────

// StockEventsQueueDepth tracks the current number of stock events waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var StockEventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stock_events_queue_depth",
		Help:      "Current number of stock events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// StockEventsPersistedTotal counts audit events written to storage.
// Label:
//   - source: "purchase" or "restock"
var StockEventsPersistedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_events_persisted_total",
		Help:      "Total number of stock audit events persisted, by source.",
	},
	[]string{"source"},
)

// StockEventsErrorsTotal counts audit events that failed to persist or were
// dropped because a worker channel was full.
// Label:
//   - reason: "insert_failed" or "queue_full"
var StockEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_events_errors_total",
		Help:      "Total number of stock audit events that were dropped or failed to persist.",
	},
	[]string{"reason"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts completed user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered.",
	},
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
