package metrics

import "github.com/prometheus/client_golang/prometheus"

// Ranking-collaborator transport metrics.
var (
	RankerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "ranker_requests_total",
			Help:      "Total ranking collaborator requests",
		},
		[]string{"model", "status"},
	)

	RankerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "discovery",
			Name:      "ranker_request_duration_seconds",
			Help:      "Ranking collaborator request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	RankerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "ranker_errors_total",
			Help:      "Total ranking collaborator errors",
		},
		[]string{"model", "error_type"},
	)
)

var rankerMetricsRegistered bool

// RegisterRankerMetrics registers ranker metrics. Must be called once from main.
func RegisterRankerMetrics() {
	if rankerMetricsRegistered {
		return
	}
	prometheus.MustRegister(RankerRequestsTotal)
	prometheus.MustRegister(RankerRequestDuration)
	prometheus.MustRegister(RankerErrorsTotal)
	rankerMetricsRegistered = true
}
