// Package metrics provides Prometheus-backed implementations of the hook
// interfaces exposed by the storage wrapper and the logbook service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aldoforce/apex-logger-services/internal/logbook"
)

// StorageMetrics implements pebblestore.MetricsHook.
type StorageMetrics struct {
	writeSeconds  prometheus.Histogram
	readSeconds   prometheus.Histogram
	commitSeconds prometheus.Histogram
	writeBytes    prometheus.Counter
	readBytes     prometheus.Counter
}

// NewStorageMetrics registers storage collectors with reg.
func NewStorageMetrics(reg prometheus.Registerer) *StorageMetrics {
	factory := promauto.With(reg)
	return &StorageMetrics{
		writeSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Subsystem: "storage",
			Name:      "write_duration_seconds",
			Help:      "Latency of single-key writes.",
			Buckets:   prometheus.DefBuckets,
		}),
		readSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Subsystem: "storage",
			Name:      "read_duration_seconds",
			Help:      "Latency of point reads.",
			Buckets:   prometheus.DefBuckets,
		}),
		commitSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Subsystem: "storage",
			Name:      "batch_commit_duration_seconds",
			Help:      "Latency of batch commits.",
			Buckets:   prometheus.DefBuckets,
		}),
		writeBytes: factory.NewCounter(prometheus.CounterOpts{
			Subsystem: "storage",
			Name:      "write_bytes_total",
			Help:      "Bytes written through the store wrapper.",
		}),
		readBytes: factory.NewCounter(prometheus.CounterOpts{
			Subsystem: "storage",
			Name:      "read_bytes_total",
			Help:      "Bytes read through the store wrapper.",
		}),
	}
}

// ObserveWrite implements pebblestore.MetricsHook.
func (m *StorageMetrics) ObserveWrite(elapsed time.Duration, bytes int) {
	m.writeSeconds.Observe(elapsed.Seconds())
	m.writeBytes.Add(float64(bytes))
}

// ObserveRead implements pebblestore.MetricsHook.
func (m *StorageMetrics) ObserveRead(elapsed time.Duration, bytes int) {
	m.readSeconds.Observe(elapsed.Seconds())
	m.readBytes.Add(float64(bytes))
}

// ObserveBatchCommit implements pebblestore.MetricsHook.
func (m *StorageMetrics) ObserveBatchCommit(elapsed time.Duration, numOps int, bytes int) {
	m.commitSeconds.Observe(elapsed.Seconds())
}

// FlushMetrics implements logbook.FlushObserver.
type FlushMetrics struct {
	attempts     *prometheus.CounterVec
	rotations    prometheus.Counter
	flushSeconds prometheus.Histogram
	pendingBytes prometheus.Histogram
}

// NewFlushMetrics registers flush collectors with reg.
func NewFlushMetrics(reg prometheus.Registerer) *FlushMetrics {
	factory := promauto.With(reg)
	return &FlushMetrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Subsystem: "logbook",
			Name:      "flush_attempts_total",
			Help:      "Flush attempts by path and outcome.",
		}, []string{"path", "outcome"}),
		rotations: factory.NewCounter(prometheus.CounterOpts{
			Subsystem: "logbook",
			Name:      "rotations_total",
			Help:      "Flushes that started a fresh record.",
		}),
		flushSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Subsystem: "logbook",
			Name:      "flush_duration_seconds",
			Help:      "Latency of flush attempts.",
			Buckets:   prometheus.DefBuckets,
		}),
		pendingBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Subsystem: "logbook",
			Name:      "flush_pending_bytes",
			Help:      "Size of flushed batches.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
}

// ObserveFlush implements logbook.FlushObserver.
func (m *FlushMetrics) ObserveFlush(elapsed time.Duration, pendingBytes int, decision logbook.Decision, fallback bool, err error) {
	path := "primary"
	if fallback {
		path = "fallback"
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.attempts.WithLabelValues(path, outcome).Inc()
	if err == nil && decision == logbook.Rotate {
		m.rotations.Inc()
	}
	m.flushSeconds.Observe(elapsed.Seconds())
	m.pendingBytes.Observe(float64(pendingBytes))
}
