package gate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elevation_gate_decisions_total",
			Help: "Access gate decisions by outcome and redirect target",
		},
		[]string{"outcome", "target"},
	)

	lookupFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elevation_gate_lookup_failures_total",
			Help: "Gate input lookups that failed and were treated as denied",
		},
		[]string{"input"},
	)
)

func observe(d Decision) Decision {
	decisionsTotal.WithLabelValues(d.Outcome.String(), string(d.Target)).Inc()
	return d
}
