package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/peter-kozarec/sysid/pkg/common"
)

func TestMiddlewarePerformance_AccumulatesDurations(t *testing.T) {
	p := NewPerformance()

	wrapped := p.WithSample(func(ctx context.Context, sample common.Sample) {
		time.Sleep(time.Millisecond)
	})

	for i := 0; i < 3; i++ {
		wrapped(context.Background(), common.Sample{})
	}

	if p.totalSampleHandlerDur < 3*time.Millisecond {
		t.Errorf("accumulated %v, expected at least 3ms", p.totalSampleHandlerDur)
	}
	if p.totalEstimateHandlerDur != 0 {
		t.Errorf("estimate duration = %v, expected 0", p.totalEstimateHandlerDur)
	}
}

func TestMiddlewareMonitor_PassesThrough(t *testing.T) {
	m := NewMonitor(MonitorNone)

	var called bool
	wrapped := m.WithEstimate(func(ctx context.Context, estimate common.Estimate) {
		called = true
	})
	wrapped(context.Background(), common.Estimate{})

	if !called {
		t.Error("wrapped handler not called")
	}
}
