package common

import (
	"time"

	"github.com/peter-kozarec/sysid/pkg/utility"
)

// Estimate is the state of a recursive estimation session after one update.
type Estimate struct {
	Step            int       `json:"step"`
	Parameters      []float64 `json:"theta"`
	PredictionError float64   `json:"prediction_error"`

	Source     string          `json:"src,omitempty"`
	Experiment string          `json:"experiment,omitempty"`
	RunId      utility.RunID   `json:"rid,omitempty"`
	TraceID    utility.TraceID `json:"tid,omitempty"`
	TimeStamp  time.Time       `json:"ts"`
}

// Residual is a single one-step prediction error, published separately so
// residual monitors do not need the full parameter vector.
type Residual struct {
	Step  int     `json:"step"`
	Value float64 `json:"value"`

	Source     string          `json:"src,omitempty"`
	Experiment string          `json:"experiment,omitempty"`
	RunId      utility.RunID   `json:"rid,omitempty"`
	TraceID    utility.TraceID `json:"tid,omitempty"`
	TimeStamp  time.Time       `json:"ts"`
}
