package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveryFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "elevation_notification_delivery_failures_total",
		Help: "Notifications the kafka writer failed to deliver after accepting them",
	},
	[]string{"event"},
)
