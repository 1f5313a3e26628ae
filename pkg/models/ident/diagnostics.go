package ident

import (
	"math"
)

// Diagnostics summarizes how well an estimated model reproduces a record.
type Diagnostics struct {
	// FitPercent is the normalized root-mean-square fit, 100 meaning a
	// perfect reproduction of the measured output.
	FitPercent float64
	// ResidualVariance is the mean squared simulation error.
	ResidualVariance float64
	// FPE is Akaike's final prediction error.
	FPE float64
}

// Evaluate simulates the plant model over u and scores it against y.
func (m *Model) Evaluate(u, y []float64) (Diagnostics, error) {
	if err := validateSignals(u, y, nil); err != nil {
		return Diagnostics{}, err
	}

	sim := m.G.Simulate(u)

	n := len(y)
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)

	var sse, sst float64
	for k := range y {
		d := y[k] - sim[k]
		sse += d * d
		c := y[k] - mean
		sst += c * c
	}

	fit := 100.0
	if sst > 0 {
		fit = 100 * (1 - math.Sqrt(sse)/math.Sqrt(sst))
	} else if sse > 0 {
		fit = 0
	}

	variance := sse / float64(n)

	params := len(m.A) - 1 + len(m.B) + len(m.C)
	fpe := math.Inf(1)
	if d := float64(params) / float64(n); d < 1 {
		fpe = variance * (1 + d) / (1 - d)
	}

	return Diagnostics{
		FitPercent:       fit,
		ResidualVariance: variance,
		FPE:              fpe,
	}, nil
}
