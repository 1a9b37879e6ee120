// Package metrics defines all custom Prometheus metrics for the back office
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntityWritesTotal counts successful entity mutations.
// Labels:
//   - entity: entity type (e.g. "brand", "influencer")
//   - action: "create", "update" or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity writes, by entity and action.",
	},
	[]string{"entity", "action"},
)

// BusinessFailuresTotal counts expected business failures surfaced to
// clients.
// Label:
//   - code: the stable failure code (e.g. "ALREADY_EXISTS")
var BusinessFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "business_failures_total",
		Help:      "Total number of requests rejected with a tagged business failure.",
	},
	[]string{"code"},
)

// ActivityRecordsTotal counts audit trail records written to the sink.
// Label:
//   - action: "create", "update" or "delete"
var ActivityRecordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_records_total",
		Help:      "Total number of activity records delivered to the sink.",
	},
	[]string{"action"},
)

// ActivityDroppedTotal counts audit trail records dropped because a worker
// buffer was full.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity records dropped due to full worker buffers.",
	},
)
