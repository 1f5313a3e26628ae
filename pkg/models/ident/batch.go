package ident

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ARX estimates the model A(z)y = B(z)u + e from the full input/output
// record in one least-squares solve. na and nb are the denominator and
// numerator orders.
func ARX(u, y []float64, na, nb int, sampleTime float64, opts ...Option) (*Model, error) {
	return batch(u, y, nil, na, nb, 0, sampleTime, opts)
}

// ARMAX estimates A(z)y = B(z)u + C(z)e. The residual signal e must be
// supplied by the caller alongside u and y; nc is the noise numerator order.
func ARMAX(u, y, e []float64, na, nb, nc int, sampleTime float64, opts ...Option) (*Model, error) {
	if nc < 1 {
		return nil, ErrInvalidOrder
	}
	if e == nil {
		return nil, ErrEmptySignal
	}
	return batch(u, y, e, na, nb, nc, sampleTime, opts)
}

// batch does all structural validation before any matrix is allocated, then
// stacks the lagged regression matrix and solves it with gonum's QR-backed
// least squares. Normal equations are deliberately not used.
func batch(u, y, e []float64, na, nb, nc int, sampleTime float64, opts []Option) (*Model, error) {
	set := defaultSettings()
	for _, opt := range opts {
		opt(&set)
	}

	if err := validateSignals(u, y, e); err != nil {
		return nil, err
	}
	if na < 1 || nb < 1 {
		return nil, ErrInvalidOrder
	}
	if sampleTime <= 0 {
		return nil, ErrInvalidSampleTime
	}
	if err := set.validate(); err != nil {
		return nil, err
	}

	n := len(y)
	dim := na + nb + nc
	if n < dim {
		return nil, fmt.Errorf("%w: %d samples cannot determine %d parameters", ErrIllConditioned, n, dim)
	}

	a := mat.NewDense(n, dim, nil)
	for i := 1; i <= n; i++ {
		fillRegressor(a.RawRowView(i-1), u, y, e, na, nb, nc, i)
	}
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, y[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllConditioned, err)
	}

	den := make([]float64, na+1)
	den[0] = 1
	copy(den[1:], x.RawVector().Data[:na])

	num := make([]float64, nb)
	copy(num, x.RawVector().Data[na:na+nb])

	var noise []float64
	if nc > 0 {
		noise = make([]float64, nc)
		copy(noise, x.RawVector().Data[na+nb:])
	}

	return realize(den, num, noise, nil, sampleTime, set)
}

func validateSignals(u, y, e []float64) error {
	if len(u) == 0 || len(y) == 0 {
		return ErrEmptySignal
	}
	if len(u) != len(y) {
		return ErrDimensionMismatch
	}
	if e != nil && len(e) != len(y) {
		return ErrDimensionMismatch
	}
	return nil
}
