package ident

import (
	"fmt"
	"strings"

	"github.com/peter-kozarec/sysid/pkg/lti"
)

// Model is an estimated discrete-time model. A holds the monic denominator
// [1, a1..ana], B the numerator [b1..bnb] acting on z^-1..z^-nb, C the noise
// numerator when one was estimated, K the observer gain on the recursive
// path. G is the plant transfer function B/A, H the noise transfer function
// C/A, SS the canonical state-space realization (plant and noise combined
// block-diagonally when both are present, gain column appended when K is).
type Model struct {
	A []float64
	B []float64
	C []float64
	K []float64

	SampleTime float64
	Delay      int

	G  lti.TransferFunction
	H  *lti.TransferFunction
	SS lti.StateSpace
}

func (m *Model) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "G: %s", m.G.String())
	if m.H != nil {
		fmt.Fprintf(&sb, "; H: %s", m.H.String())
	}
	if m.K != nil {
		fmt.Fprintf(&sb, "; K: %v", m.K)
	}
	return sb.String()
}

// realize turns coefficient sets into the returned model object. den is the
// monic denominator, num the plant numerator, noise the optional noise
// numerator and gain the optional observer gain column.
func realize(den, num, noise, gain []float64, sampleTime float64, set settings) (*Model, error) {
	g, err := lti.NewDiscrete(shifted(num), den, sampleTime, set.delay)
	if err != nil {
		return nil, fmt.Errorf("plant realization: %w", err)
	}
	ss, err := g.Realize(set.form)
	if err != nil {
		return nil, fmt.Errorf("plant realization: %w", err)
	}

	m := &Model{
		A:          den,
		B:          num,
		C:          noise,
		K:          gain,
		SampleTime: sampleTime,
		Delay:      set.delay,
		G:          g,
		SS:         ss,
	}

	if noise != nil {
		h, err := lti.NewDiscrete(shifted(noise), den, sampleTime, 0)
		if err != nil {
			return nil, fmt.Errorf("noise realization: %w", err)
		}
		hs, err := h.Realize(set.form)
		if err != nil {
			return nil, fmt.Errorf("noise realization: %w", err)
		}

		m.H = &h
		m.SS = lti.Append(ss, hs).SumOutputs()

		if gain != nil {
			col := make([]float64, m.SS.Order())
			copy(col, gain)
			m.SS, err = m.SS.WithInputColumn(col)
			if err != nil {
				return nil, fmt.Errorf("observer gain: %w", err)
			}
		}
	}

	return m, nil
}

// shifted places estimated numerator coefficients onto z^-1..z^-n.
func shifted(coeffs []float64) []float64 {
	out := make([]float64, len(coeffs)+1)
	copy(out[1:], coeffs)
	return out
}
