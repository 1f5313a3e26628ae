package bus

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/peter-kozarec/sysid/pkg/common"
)

var ErrCapacityReached = errors.New("event capacity reached")

type event struct {
	id   EventId
	data interface{}
}

// Router fans measurement and estimation events out to their handlers, one
// dispatch goroutine, bounded queue. Handlers run on the dispatch goroutine
// in posting order, which is what keeps a recursive estimation strictly
// sequential.
type Router struct {
	events chan event

	OnSample   SampleEventHandler
	OnEstimate EstimateEventHandler
	OnResidual ResidualEventHandler

	startTime     time.Time
	postCount     atomic.Uint64
	postFails     atomic.Uint64
	dispatchCount atomic.Uint64
	dispatchFails atomic.Uint64
}

func NewRouter(eventCapacity int) *Router {
	return &Router{
		events: make(chan event, eventCapacity),
	}
}

func (r *Router) Post(id EventId, data interface{}) error {
	select {
	case r.events <- event{id, data}:
		r.postCount.Add(1)
		return nil
	default:
		r.postFails.Add(1)
		return ErrCapacityReached
	}
}

// Exec drains the queue until the context is done. The returned channel
// yields the terminating error.
func (r *Router) Exec(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	r.startTime = time.Now()

	go func() {
		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case ev := <-r.events:
				r.dispatchCount.Add(1)
				if err := r.dispatch(ctx, ev); err != nil {
					r.dispatchFails.Add(1)
					slog.Warn("dispatch failed", "error", err, "event_id", ev.id)
				}
			}
		}
	}()
	return done
}

// ExecLoop is the replay variant: whenever the queue is drained it calls
// doOnceCb to produce more work, and stops on the first error it returns.
func (r *Router) ExecLoop(ctx context.Context, doOnceCb func() error) <-chan error {
	done := make(chan error, 1)
	r.startTime = time.Now()

	go func() {
		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case ev := <-r.events:
				r.dispatchCount.Add(1)
				if err := r.dispatch(ctx, ev); err != nil {
					r.dispatchFails.Add(1)
					slog.Warn("dispatch failed", "error", err, "event_id", ev.id)
				}
			default:
				if err := doOnceCb(); err != nil {
					done <- err
					return
				}
			}
		}
	}()
	return done
}

func (r *Router) Statistics() Statistics {
	runTime := time.Since(r.startTime)
	return Statistics{
		RunTime:       runTime,
		PostCount:     r.postCount.Load(),
		PostFails:     r.postFails.Load(),
		DispatchCount: r.dispatchCount.Load(),
		DispatchFails: r.dispatchFails.Load(),
		Throughput:    float64(r.postCount.Load()) / runTime.Seconds(),
	}
}

func (r *Router) dispatch(ctx context.Context, ev event) error {
	switch ev.id {
	case SampleEvent:
		sample, ok := ev.data.(common.Sample)
		if !ok {
			return errors.New("invalid type assertion for sample event")
		}
		if r.OnSample != nil {
			r.OnSample(ctx, sample)
		} else {
			slog.Debug("sample handler is nil")
		}
	case EstimateEvent:
		estimate, ok := ev.data.(common.Estimate)
		if !ok {
			return errors.New("invalid type assertion for estimate event")
		}
		if r.OnEstimate != nil {
			r.OnEstimate(ctx, estimate)
		} else {
			slog.Debug("estimate handler is nil")
		}
	case ResidualEvent:
		residual, ok := ev.data.(common.Residual)
		if !ok {
			return errors.New("invalid type assertion for residual event")
		}
		if r.OnResidual != nil {
			r.OnResidual(ctx, residual)
		} else {
			slog.Debug("residual handler is nil")
		}
	default:
		return errors.New("unknown event id")
	}
	return nil
}
