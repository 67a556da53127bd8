// Package metrics exposes Prometheus counters for registration and mail
// delivery outcomes, served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess          = "success"
	OutcomeValidationFailed = "validation_failed"
	OutcomeConflict         = "conflict"
	OutcomeUploadFailed     = "upload_failed"
	OutcomeInternalError    = "internal_error"
)

var AdminRegistrations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "plotbay",
		Name:      "admin_registrations_total",
		Help:      "Admin registration attempts by outcome.",
	},
	[]string{"outcome"},
)

var MailsSent = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "plotbay",
		Name:      "mails_sent_total",
		Help:      "Outbound mails delivered successfully.",
	},
)

var MailsFailed = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "plotbay",
		Name:      "mails_failed_total",
		Help:      "Outbound mail deliveries that failed.",
	},
)
