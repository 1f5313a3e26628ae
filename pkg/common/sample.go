package common

import (
	"time"

	"github.com/peter-kozarec/sysid/pkg/utility"
	"github.com/peter-kozarec/sysid/pkg/utility/fixed"
)

// Sample is one measured input/output pair of an experiment. Values are
// carried as fixed-point decimals so logged readings survive storage and
// transport unchanged; estimators convert at their boundary.
type Sample struct {
	U fixed.Point `json:"u"`
	Y fixed.Point `json:"y"`

	Source     string          `json:"src,omitempty"`
	Experiment string          `json:"experiment,omitempty"`
	RunId      utility.RunID   `json:"rid,omitempty"`
	TraceID    utility.TraceID `json:"tid,omitempty"`
	TimeStamp  time.Time       `json:"ts"`
}

// Floats is the estimator boundary conversion.
func (s Sample) Floats() (u, y float64) {
	return s.U.Float64Unsafe(), s.Y.Float64Unsafe()
}
