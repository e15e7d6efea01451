package mjml

import "github.com/zeromicro/go-zero/core/metric"

var (
	compileDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "templateforge",
		Subsystem: "mjml",
		Name:      "compile_duration_seconds",
		Help:      "MJML compile duration in seconds",
		Labels:    []string{"result"},
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1},
	})

	compileCacheHits = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "templateforge",
		Subsystem: "mjml",
		Name:      "cache_hits_total",
		Help:      "MJML compile cache hits",
	})

	compileCacheMisses = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "templateforge",
		Subsystem: "mjml",
		Name:      "cache_misses_total",
		Help:      "MJML compile cache misses",
	})
)
