// Package metrics provides performance tracking and observability for
// tabsynth using Prometheus metrics.
//
// # Basic Usage
//
//	// Record a completed generation
//	metrics.GenerationRequests.WithLabelValues("customer", "success").Inc()
//	metrics.RecordsGenerated.WithLabelValues("customer").Add(float64(n))
//
//	// Track generation latency
//	start := time.Now()
//	table, err := eng.Generate(ctx, req)
//	metrics.GenerationLatency.WithLabelValues("customer").
//	    Observe(time.Since(start).Seconds())
//
// # Metric Types
//
// Counter: Monotonically increasing values (e.g., total requests)
// Histogram: Distribution of values (e.g., latency percentiles)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationRequests tracks the total number of generation requests.
	// Labels: intent (resolved generation intent), status (success/failure)
	GenerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabsynth_generation_requests_total",
			Help: "Total number of generation requests",
		},
		[]string{"intent", "status"},
	)

	// RecordsGenerated tracks the total number of synthetic records produced.
	// Labels: intent (resolved generation intent)
	RecordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabsynth_records_generated_total",
			Help: "Total number of synthetic records generated",
		},
		[]string{"intent"},
	)

	// GenerationLatency tracks the distribution of pipeline latencies in
	// seconds, from intent resolution to the fully-formed output table.
	// Labels: intent (resolved generation intent)
	GenerationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tabsynth_generation_latency_seconds",
			Help:    "Generation pipeline latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"intent"},
	)

	// ProfilesBuilt tracks the total number of pattern profiles learned from
	// uploaded samples. Labels: status (success/failure)
	ProfilesBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabsynth_profiles_built_total",
			Help: "Total number of pattern profiles built from uploads",
		},
		[]string{"status"},
	)

	// UploadBytes tracks the distribution of uploaded sample sizes.
	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tabsynth_upload_bytes",
			Help:    "Size of uploaded sample files in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)
