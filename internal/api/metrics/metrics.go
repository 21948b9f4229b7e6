// Package metrics defines and registers the custom Prometheus metrics for the
// portfolio backend. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them at /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// SubmissionsReceivedTotal counts accepted contact-form submissions.
// Label:
//   - service: the service the visitor asked about
var SubmissionsReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_received_total",
		Help:      "Total number of contact submissions accepted, by requested service.",
	},
	[]string{"service"},
)

// SubmissionsDeletedTotal counts submissions removed by an admin.
var SubmissionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_deleted_total",
		Help:      "Total number of contact submissions deleted by admins.",
	},
)

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)
