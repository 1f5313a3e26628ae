package middleware

import (
	"context"
	"log/slog"

	"github.com/peter-kozarec/sysid/pkg/bus"
	"github.com/peter-kozarec/sysid/pkg/common"
)

type MonitorFlags uint8

//goland:noinspection GoUnusedConst
const (
	MonitorNone MonitorFlags = 1 << iota
	MonitorAll
	MonitorSamples
	MonitorEstimates
	MonitorResiduals
)

type Monitor struct {
	flags MonitorFlags
}

func NewMonitor(flags MonitorFlags) *Monitor {
	return &Monitor{
		flags: flags,
	}
}

func (m *Monitor) WithSample(handler bus.SampleEventHandler) bus.SampleEventHandler {
	return func(ctx context.Context, sample common.Sample) {
		if m.flags&MonitorSamples != 0 || m.flags&MonitorAll != 0 {
			slog.Info("event", "sample", sample)
		}
		handler(ctx, sample)
	}
}

func (m *Monitor) WithEstimate(handler bus.EstimateEventHandler) bus.EstimateEventHandler {
	return func(ctx context.Context, estimate common.Estimate) {
		if m.flags&MonitorEstimates != 0 || m.flags&MonitorAll != 0 {
			slog.Info("event", "estimate", estimate)
		}
		handler(ctx, estimate)
	}
}

func (m *Monitor) WithResidual(handler bus.ResidualEventHandler) bus.ResidualEventHandler {
	return func(ctx context.Context, residual common.Residual) {
		if m.flags&MonitorResiduals != 0 || m.flags&MonitorAll != 0 {
			slog.Info("event", "residual", residual)
		}
		handler(ctx, residual)
	}
}
