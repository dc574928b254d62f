package relay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeDelivered    = "delivered"
	outcomeRejected     = "rejected"
	outcomeInvalid      = "invalid"
	outcomeUnconfigured = "unconfigured"
	outcomeError        = "error"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webhook_relay_notifications_total",
		Help: "Relay requests by mode and outcome",
	},
	[]string{"mode", "outcome"},
)

func recordOutcome(mode, outcome string) {
	notificationsTotal.WithLabelValues(mode, outcome).Inc()
}
