package ident

import "errors"

var (
	ErrEmptySignal        = errors.New("signal is empty")
	ErrDimensionMismatch  = errors.New("input and output signals differ in length")
	ErrInvalidOrder       = errors.New("model orders must be positive")
	ErrInvalidSampleTime  = errors.New("sample time must be positive")
	ErrInvalidDelay       = errors.New("delay must be non-negative")
	ErrInvalidForgetting  = errors.New("forgetting factor must be in (0, 1]")
	ErrInvalidCovariance  = errors.New("initial covariance must be positive")
	ErrIllConditioned     = errors.New("regression is ill-conditioned")
	ErrNoSamplesProcessed = errors.New("no samples processed yet")
)
