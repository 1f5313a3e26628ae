package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/peter-kozarec/sysid/pkg/bus"
	"github.com/peter-kozarec/sysid/pkg/common"
)

// Performance accumulates time spent in the wrapped handlers. It is meant
// for the single-goroutine dispatch loop and keeps no locks.
type Performance struct {
	totalSampleHandlerDur   time.Duration
	totalEstimateHandlerDur time.Duration
	totalResidualHandlerDur time.Duration
}

func NewPerformance() *Performance {
	return &Performance{}
}

func (p *Performance) WithSample(handler bus.SampleEventHandler) bus.SampleEventHandler {
	return func(ctx context.Context, sample common.Sample) {
		startTime := time.Now()
		handler(ctx, sample)
		p.totalSampleHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) WithEstimate(handler bus.EstimateEventHandler) bus.EstimateEventHandler {
	return func(ctx context.Context, estimate common.Estimate) {
		startTime := time.Now()
		handler(ctx, estimate)
		p.totalEstimateHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) WithResidual(handler bus.ResidualEventHandler) bus.ResidualEventHandler {
	return func(ctx context.Context, residual common.Residual) {
		startTime := time.Now()
		handler(ctx, residual)
		p.totalResidualHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) PrintStatistics() {
	slog.Info("handler durations",
		"sample", p.totalSampleHandlerDur,
		"estimate", p.totalEstimateHandlerDur,
		"residual", p.totalResidualHandlerDur)
}
