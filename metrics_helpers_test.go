package smpp

import (
	"testing"

	"github.com/rcrowley/go-metrics"
)

// counter is satisfied by both meters and histograms.
type counter interface {
	Count() int64
}

func assertMetricCount(t *testing.T, r metrics.Registry, name string, expectedCount int64) {
	t.Helper()
	metric, ok := r.Get(name).(counter)
	if !ok {
		t.Errorf("Expected countable metric named '%s', got %T", name, r.Get(name))
		return
	}
	if count := metric.Count(); count != expectedCount {
		t.Errorf("Expected metric '%s' count = %d, got %d", name, expectedCount, count)
	}
}
