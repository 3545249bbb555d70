// Package metrics provides Prometheus instrumentation for the trust engine.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// AnalysesTotal counts completed fraud analyses by resulting risk level.
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dotnation",
			Name:      "fraud_analyses_total",
			Help:      "Total fraud analyses by risk level.",
		},
		[]string{"risk_level"},
	)

	// AnalysisDuration observes end-to-end analysis latency.
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dotnation",
			Name:      "fraud_analysis_duration_seconds",
			Help:      "Fraud analysis duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// AIRequestsTotal counts external AI assessment attempts by result.
	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dotnation",
			Name:      "fraud_ai_requests_total",
			Help:      "Total AI assessment requests by result (ok, failed, skipped).",
		},
		[]string{"result"},
	)

	// KnownFraudCorpusSize tracks the size of the loaded known-fraud corpus.
	KnownFraudCorpusSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dotnation",
			Name:      "fraud_known_corpus_entries",
			Help:      "Number of known-fraud corpus entries currently loaded.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		AnalysesTotal,
		AnalysisDuration,
		AIRequestsTotal,
		KnownFraudCorpusSize,
	)
}
