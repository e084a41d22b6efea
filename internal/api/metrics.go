package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rankingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "appraise_rankings_total",
		Help: "Number of ranking computations served.",
	})

	qualityReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "appraise_quality_reports_total",
		Help: "Number of quality reports computed, by quality level.",
	}, []string{"level"})

	rankDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "appraise_rank_duration_seconds",
		Help:    "Wall time of ranking computations.",
		Buckets: prometheus.DefBuckets,
	})
)
