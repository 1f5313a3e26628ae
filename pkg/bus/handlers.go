package bus

import (
	"context"

	"github.com/peter-kozarec/sysid/pkg/common"
)

type EventHandler[T any] = func(context.Context, T)

type SampleEventHandler EventHandler[common.Sample]
type EstimateEventHandler EventHandler[common.Estimate]
type ResidualEventHandler EventHandler[common.Residual]

func MergeHandlers[T any](handlers ...EventHandler[T]) EventHandler[T] {
	return func(ctx context.Context, event T) {
		for _, handler := range handlers {
			handler(ctx, event)
		}
	}
}
