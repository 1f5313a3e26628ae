package middleware

import (
	"context"

	"github.com/peter-kozarec/sysid/pkg/common"
)

//goland:noinspection ALL
var (
	NoopSampleHdl   = func(context.Context, common.Sample) {}
	NoopEstimateHdl = func(context.Context, common.Estimate) {}
	NoopResidualHdl = func(context.Context, common.Residual) {}
)
