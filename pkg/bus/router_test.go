package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peter-kozarec/sysid/pkg/common"
)

func TestBusRouter_Post(t *testing.T) {
	r := NewRouter(10)

	err := r.Post(SampleEvent, common.Sample{})
	if err != nil {
		t.Errorf("Post failed: %v", err)
	}

	if r.postCount.Load() != 1 {
		t.Errorf("Expected postCount=1, got %d", r.postCount.Load())
	}
}

func TestBusRouter_PostCapacityReached(t *testing.T) {
	r := NewRouter(1)

	if err := r.Post(SampleEvent, common.Sample{}); err != nil {
		t.Errorf("First Post failed: %v", err)
	}
	if err := r.Post(SampleEvent, common.Sample{}); !errors.Is(err, ErrCapacityReached) {
		t.Errorf("Expected ErrCapacityReached, got %v", err)
	}

	if r.postFails.Load() != 1 {
		t.Errorf("Expected postFails=1, got %d", r.postFails.Load())
	}
}

func TestBusRouter_Exec(t *testing.T) {
	r := NewRouter(10)

	var sampleHandled bool
	r.OnSample = func(ctx context.Context, sample common.Sample) {
		sampleHandled = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errChan := r.Exec(ctx)

	if err := r.Post(SampleEvent, common.Sample{}); err != nil {
		t.Errorf("Post failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	cancel()

	err := <-errChan
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	if !sampleHandled {
		t.Error("Sample handler not called")
	}
	if r.dispatchCount.Load() != 1 {
		t.Errorf("Expected dispatchCount=1, got %d", r.dispatchCount.Load())
	}
}

func TestBusRouter_ExecLoop(t *testing.T) {
	r := NewRouter(10)

	var estimates int
	r.OnEstimate = func(ctx context.Context, estimate common.Estimate) {
		estimates++
	}

	drained := errors.New("drained")
	posted := 0
	doOnce := func() error {
		if posted == 3 {
			return drained
		}
		posted++
		return r.Post(EstimateEvent, common.Estimate{Step: posted})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := <-r.ExecLoop(ctx, doOnce)
	if !errors.Is(err, drained) {
		t.Errorf("Expected drained sentinel, got %v", err)
	}
	if estimates != 3 {
		t.Errorf("Expected 3 estimates dispatched, got %d", estimates)
	}
}

func TestBusRouter_DispatchWrongPayload(t *testing.T) {
	r := NewRouter(10)
	r.OnSample = func(ctx context.Context, sample common.Sample) {}

	if err := r.dispatch(context.Background(), event{SampleEvent, "not a sample"}); err == nil {
		t.Error("Expected a type assertion error")
	}
}

func TestBusMergeHandlers(t *testing.T) {
	var calls []int
	h := MergeHandlers(
		func(ctx context.Context, v int) { calls = append(calls, v) },
		func(ctx context.Context, v int) { calls = append(calls, v*10) },
	)

	h(context.Background(), 2)

	if len(calls) != 2 || calls[0] != 2 || calls[1] != 20 {
		t.Errorf("Merged handlers ran wrong: %v", calls)
	}
}
