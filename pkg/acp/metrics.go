// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Evaluation outcomes for metrics labels.
const (
	outcomeResolved      = "resolved"
	outcomeIndeterminate = "indeterminate"
)

var (
	// evaluateDuration tracks the latency of ActorAccess calls.
	evaluateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "podward_acp_evaluate_duration_seconds",
		Help:    "Histogram of ACP effective-access evaluation latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// evaluations counts effective-access evaluations by outcome.
	evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podward_acp_evaluations_total",
		Help: "Total number of ACP effective-access evaluations",
	}, []string{"outcome"})
)

// recordEvaluation records metrics for one completed evaluation.
func recordEvaluation(duration time.Duration, outcome string) {
	evaluateDuration.Observe(duration.Seconds())
	evaluations.WithLabelValues(outcome).Inc()
}
