package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/aldoforce/apex-logger-services/internal/logbook"
)

func TestStorageMetricsRegisterAndObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorageMetrics(reg)

	m.ObserveWrite(time.Millisecond, 128)
	m.ObserveRead(time.Millisecond, 64)
	m.ObserveBatchCommit(time.Millisecond, 2, 256)

	if got := testutil.ToFloat64(m.writeBytes); got != 128 {
		t.Fatalf("write bytes: got %v", got)
	}
	if got := testutil.ToFloat64(m.readBytes); got != 64 {
		t.Fatalf("read bytes: got %v", got)
	}
}

func TestFlushMetricsPathsAndRotations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFlushMetrics(reg)

	m.ObserveFlush(time.Millisecond, 100, logbook.Append, false, nil)
	m.ObserveFlush(time.Millisecond, 100, logbook.Rotate, false, nil)
	m.ObserveFlush(time.Millisecond, 100, logbook.Rotate, true, errors.New("boom"))

	if got := testutil.ToFloat64(m.attempts.WithLabelValues("primary", "ok")); got != 2 {
		t.Fatalf("primary ok attempts: got %v", got)
	}
	if got := testutil.ToFloat64(m.attempts.WithLabelValues("fallback", "error")); got != 1 {
		t.Fatalf("fallback error attempts: got %v", got)
	}
	// failed rotate attempt must not count as a rotation
	if got := testutil.ToFloat64(m.rotations); got != 1 {
		t.Fatalf("rotations: got %v", got)
	}
}
