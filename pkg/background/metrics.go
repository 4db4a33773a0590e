package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultError   = "error"
	resultPanic   = "panic"
)

var (
	TaskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "background_task_runs_total",
			Help: "Total number of background task runs",
		},
		[]string{"task", "result"},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "background_task_duration_seconds",
			Help:    "Background task run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task"},
	)
)
