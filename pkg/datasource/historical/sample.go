package historical

import (
	"time"

	"github.com/peter-kozarec/sysid/pkg/common"
	"github.com/peter-kozarec/sysid/pkg/utility/fixed"
)

// BinarySample is the on-disk record layout of an experiment log. Field
// order matters, the struct must stay free of padding.
type BinarySample struct {
	TimeStamp int64
	U         float64
	Y         float64
}

func (binarySample BinarySample) ToSample(sample *common.Sample) {
	sample.TimeStamp = time.Unix(0, binarySample.TimeStamp)
	sample.U = fixed.FromFloat64(binarySample.U)
	sample.Y = fixed.FromFloat64(binarySample.Y)
}
