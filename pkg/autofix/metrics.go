package autofix

import "github.com/zeromicro/go-zero/core/metric"

var fixesApplied = metric.NewCounterVec(&metric.CounterVecOpts{
	Namespace: "templateforge",
	Subsystem: "autofix",
	Name:      "applied_total",
	Help:      "Auto-fix rules that changed a document",
	Labels:    []string{"rule"},
})
