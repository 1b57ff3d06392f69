package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aging_curve"

var (
	// AnalysesGenerated 新生成的分析数，mode = free_text | structured
	AnalysesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_generated_total",
		Help:      "Analyses produced by the model and stored.",
	}, []string{"mode"})

	// ProfileCacheHits init 命中已有结果
	ProfileCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_hits_total",
		Help:      "Init requests answered from an existing ACTIVE result.",
	})

	FallbackUsed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_fallback_total",
		Help:      "Requests that retried against the fallback model.",
	})

	ExtractionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_failures_total",
		Help:      "Model outputs that could not be parsed into an analysis.",
	})

	// ModelLatency 单次模型调用耗时
	ModelLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "model_request_seconds",
		Help:      "Latency of a single generative model call.",
		Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 90, 120},
	}, []string{"model", "outcome"})

	DBOpenConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "db_open_connections",
		Help:      "Open database connections reported by the health monitor.",
	})
)
