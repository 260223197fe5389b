package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the advisor service.
type Metrics struct {
	// labels: outcome={SUCCESS,FAILURE}, status={EXCELLENT,HIGH,""}
	Audits          *prometheus.CounterVec
	BadRequests     prometheus.Counter
	// labels: route
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Audits, m.BadRequests, m.RequestDuration)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Audits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "water_advisor",
			Name:      "audits_total",
			Help:      "Completed audits by outcome and status verdict.",
		}, []string{"outcome", "status"}),
		BadRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "water_advisor",
			Name:      "bad_requests_total",
			Help:      "Requests rejected before reaching the calculator.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "water_advisor",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"route"}),
	}
}
