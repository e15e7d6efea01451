package worker

import "github.com/zeromicro/go-zero/core/metric"

var (
	jobsQueued = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "templateforge",
		Subsystem: "jobs",
		Name:      "queued_total",
		Help:      "Total scoring jobs queued",
	})

	jobsScored = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "templateforge",
		Subsystem: "jobs",
		Name:      "scored_total",
		Help:      "Total jobs scored, by grade",
		Labels:    []string{"grade"},
	})

	jobsFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "templateforge",
		Subsystem: "jobs",
		Name:      "failed_total",
		Help:      "Total jobs failed permanently",
		Labels:    []string{"reason"},
	})

	jobsRetried = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "templateforge",
		Subsystem: "jobs",
		Name:      "retried_total",
		Help:      "Total job retries",
	})

	scoringDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "templateforge",
		Subsystem: "jobs",
		Name:      "duration_seconds",
		Help:      "Job processing duration in seconds",
		Labels:    []string{"grade"},
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	queueDepth = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "templateforge",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Current job count by status",
		Labels:    []string{"status"},
	})
)
