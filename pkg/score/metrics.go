package score

import "github.com/zeromicro/go-zero/core/metric"

var (
	scoredDocuments = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "templateforge",
		Subsystem: "score",
		Name:      "documents_total",
		Help:      "Documents scored, by grade",
		Labels:    []string{"grade"},
	})

	scoreTotal = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "templateforge",
		Subsystem: "score",
		Name:      "total_points",
		Help:      "Distribution of total template scores",
		Labels:    []string{"grade"},
		Buckets:   []float64{40, 55, 65, 75, 85, 95, 100},
	})
)
