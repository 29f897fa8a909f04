// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package fetch

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for pod HTTP traffic.
var (
	// requestDuration tracks request latency including retries.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "podward_fetch_request_duration_seconds",
		Help:    "Histogram of pod HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// requestsTotal counts requests by method and final status class.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podward_fetch_requests_total",
		Help: "Total number of pod HTTP requests",
	}, []string{"method", "status"})
)

// recordRequest records metrics for one completed request cycle.
func recordRequest(method string, duration time.Duration, resp *http.Response, err error) {
	requestDuration.WithLabelValues(method).Observe(duration.Seconds())

	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode/100) + "xx"
	}
	requestsTotal.WithLabelValues(method, status).Inc()
}
