/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package builder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var builderDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "computectl_builder_duration_seconds",
		Help:    "Time taken by individual sub-resource builders",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	},
	[]string{"builder"}, // volumes, nodepools, resources, securitycontext
)

func observeBuilder(name string, start time.Time) {
	builderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
