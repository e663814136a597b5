package metrics

import "github.com/prometheus/client_golang/prometheus"

// Selection-engine Prometheus metrics.
var (
	EngineTierEnteredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "engine_tier_entered_total",
			Help:      "Total ladder tier executions by tier number",
		},
		[]string{"tier"},
	)

	EngineFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "engine_fallback_total",
			Help:      "Total queries that reached the guaranteed-fallback tier",
		},
	)

	EngineCandidatesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "discovery",
			Name:      "engine_candidates_returned",
			Help:      "Size of the candidate set handed to the ranker",
			Buckets:   []float64{0, 1, 3, 5, 10, 25, 50, 100},
		},
	)

	QueryCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "query_cache_total",
			Help:      "Query memoization cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(EngineTierEnteredTotal)
	prometheus.MustRegister(EngineFallbackTotal)
	prometheus.MustRegister(EngineCandidatesReturned)
	prometheus.MustRegister(QueryCacheTotal)
	engineMetricsRegistered = true
}
