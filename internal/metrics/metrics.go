package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_events_consumed_total",
			Help: "Total number of payment lifecycle events consumed from the bus",
		},
		[]string{"type"},
	)

	FraudChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fraud_checks_total",
			Help: "Total number of outbound fraud checks by verdict",
		},
		[]string{"verdict"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		EventsConsumed,
		FraudChecks,
	)
}
