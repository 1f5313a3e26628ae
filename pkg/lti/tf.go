package lti

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDenominator = errors.New("denominator is empty or has a zero leading coefficient")
	ErrInvalidSampleTime  = errors.New("sample time must be positive")
	ErrInvalidDelay       = errors.New("delay must be non-negative")
	ErrStaticGain         = errors.New("static gain has no state-space realization")
)

type Domain uint8

const (
	Continuous Domain = iota
	Discrete
)

// TransferFunction is a single-input single-output rational model. Num and
// Den hold coefficients in ascending powers of the delay operator z^-1
// (discrete) or of 1/s (continuous), Den normalized so Den[0] == 1. The
// domain is a structured tag; rendering derives from it, the stored
// coefficients are never rewritten.
type TransferFunction struct {
	Num []float64
	Den []float64

	Domain     Domain
	SampleTime float64
	Delay      int
}

// NewDiscrete builds a discrete-time transfer function tagged with its
// sample time and an additional whole-sample input delay.
func NewDiscrete(num, den []float64, sampleTime float64, delay int) (TransferFunction, error) {
	if len(den) == 0 || den[0] == 0 {
		return TransferFunction{}, ErrInvalidDenominator
	}
	if sampleTime <= 0 {
		return TransferFunction{}, ErrInvalidSampleTime
	}
	if delay < 0 {
		return TransferFunction{}, ErrInvalidDelay
	}

	tf := TransferFunction{
		Num:        make([]float64, len(num)),
		Den:        make([]float64, len(den)),
		Domain:     Discrete,
		SampleTime: sampleTime,
		Delay:      delay,
	}
	for i, c := range num {
		tf.Num[i] = c / den[0]
	}
	for i, c := range den {
		tf.Den[i] = c / den[0]
	}
	return tf, nil
}

// Order is the dimension of a minimal realization. In the delay-operator
// form a numerator longer than the denominator is still causal and simply
// raises the order.
func (tf TransferFunction) Order() int {
	n := len(tf.Den)
	if len(tf.Num) > n {
		n = len(tf.Num)
	}
	return n - 1
}

func (tf TransferFunction) variable() string {
	if tf.Domain == Discrete {
		return "z"
	}
	return "s"
}

func (tf TransferFunction) String() string {
	v := tf.variable()

	var sb strings.Builder
	sb.WriteString(formatPoly(tf.Num, v))
	sb.WriteString(" / ")
	sb.WriteString(formatPoly(tf.Den, v))
	if tf.Domain == Discrete {
		fmt.Fprintf(&sb, ", Ts=%g", tf.SampleTime)
		if tf.Delay > 0 {
			fmt.Fprintf(&sb, ", delay=%d", tf.Delay)
		}
	}
	return sb.String()
}

func formatPoly(coeffs []float64, variable string) string {
	var sb strings.Builder
	sb.WriteByte('(')

	wrote := false
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		if wrote {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%g", c)
		case c == 1:
			fmt.Fprintf(&sb, "%s^-%d", variable, i)
		default:
			fmt.Fprintf(&sb, "%g %s^-%d", c, variable, i)
		}
		wrote = true
	}
	if !wrote {
		sb.WriteByte('0')
	}

	sb.WriteByte(')')
	return sb.String()
}

// Simulate runs the difference equation over the input record, zero initial
// conditions. Lags that precede the record start read as zero.
func (tf TransferFunction) Simulate(u []float64) []float64 {
	y := make([]float64, len(u))
	for k := range u {
		var acc float64
		for j := 1; j < len(tf.Den); j++ {
			if k-j >= 0 {
				acc -= tf.Den[j] * y[k-j]
			}
		}
		for j := 0; j < len(tf.Num); j++ {
			if k-j-tf.Delay >= 0 {
				acc += tf.Num[j] * u[k-j-tf.Delay]
			}
		}
		y[k] = acc
	}
	return y
}
