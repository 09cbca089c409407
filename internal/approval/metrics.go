package approval

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elevation_approval_decisions_total",
			Help: "Reviewer decisions by kind and result",
		},
		[]string{"decision", "role", "result"},
	)

	notificationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "elevation_notification_failures_total",
			Help: "Application notifications that could not be dispatched",
		},
	)
)
