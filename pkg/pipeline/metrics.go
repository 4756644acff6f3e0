/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "computectl_pipeline_duration_seconds",
			Help:    "Time taken to run the full config pipeline",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
	)

	pipelineTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "computectl_pipeline_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"status"}, // success, invalid, or error
	)
)
