// Package telemetry exposes Prometheus metrics for aggregation and background
// jobs. Every recorder is nil-safe so callers can run without a registry.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "salescope"

// AggregationMetrics records dashboard aggregation calls.
type AggregationMetrics struct {
	duration *prometheus.HistogramVec
	buckets  *prometheus.GaugeVec
	failures *prometheus.CounterVec
}

// NewAggregationMetrics registers the aggregation metrics on reg.
// A nil registerer yields a no-op recorder.
func NewAggregationMetrics(reg prometheus.Registerer) *AggregationMetrics {
	if reg == nil {
		return &AggregationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_duration_seconds",
		Help:      "Duration of sales aggregation calls in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"granularity"})
	buckets := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "aggregation_buckets",
		Help:      "Number of buckets produced by the latest aggregation.",
	}, []string{"granularity"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregation_failures_total",
		Help:      "Aggregation calls that returned an error.",
	}, []string{"granularity"})
	reg.MustRegister(duration, buckets, failures)
	return &AggregationMetrics{
		duration: duration,
		buckets:  buckets,
		failures: failures,
	}
}

// Observe records one successful aggregation.
func (m *AggregationMetrics) Observe(granularity string, duration time.Duration, bucketCount int) {
	if m == nil || m.duration == nil {
		return
	}
	label := normalizeLabel(granularity)
	m.duration.WithLabelValues(label).Observe(duration.Seconds())
	m.buckets.WithLabelValues(label).Set(float64(bucketCount))
}

// IncFailure counts a failed aggregation.
func (m *AggregationMetrics) IncFailure(granularity string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(granularity)).Inc()
}

// JobMetrics records metadata for scheduled jobs.
type JobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	records  *prometheus.GaugeVec
}

// NewJobMetrics registers the job metrics on reg.
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of background jobs in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_success_total",
		Help:      "Successful background job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_failure_total",
		Help:      "Failed background job executions.",
	}, []string{"job"})
	records := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "job_records",
		Help:      "Records written by the latest successful run.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure, records)
	return &JobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		records:  records,
	}
}

// ObserveDuration records the duration for the named job.
func (m *JobMetrics) ObserveDuration(job string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter and records the output size.
func (m *JobMetrics) IncSuccess(job string, records int) {
	if m == nil || m.success == nil {
		return
	}
	label := normalizeLabel(job)
	m.success.WithLabelValues(label).Inc()
	m.records.WithLabelValues(label).Set(float64(records))
}

// IncFailure increments the failure counter for the named job.
func (m *JobMetrics) IncFailure(job string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
