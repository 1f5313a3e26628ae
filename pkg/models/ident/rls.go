package ident

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/peter-kozarec/sysid/pkg/utility/circular"
)

// Recursive is a sequential least-squares estimation session for the ARMAX
// structure A(z)y = B(z)u + C(z)e, with the noise numerator carrying the
// same order as the denominator. The session exclusively owns its parameter
// vector, covariance and lag windows; it must not be shared across
// concurrent estimations.
type Recursive struct {
	na, nb int
	set    settings

	sampleTime float64

	dim   int
	theta *mat.VecDense
	p     *mat.Dense
	phi   *mat.VecDense

	yLags *circular.LagWindow
	uLags *circular.LagWindow
	eLags *circular.LagWindow

	lastErr float64
	steps   int
}

// NewRecursive validates everything eagerly and allocates the diffuse prior
// state: Theta = 0, P = c*I, prediction error 0.
func NewRecursive(na, nb int, sampleTime float64, opts ...Option) (*Recursive, error) {
	set := defaultSettings()
	for _, opt := range opts {
		opt(&set)
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

	dim := na + nb + na
	p := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		p.Set(i, i, set.initialCov)
	}

	return &Recursive{
		na:         na,
		nb:         nb,
		set:        set,
		sampleTime: sampleTime,
		dim:        dim,
		theta:      mat.NewVecDense(dim, nil),
		p:          p,
		phi:        mat.NewVecDense(dim, nil),
		yLags:      circular.NewLagWindow(uint(na)),
		uLags:      circular.NewLagWindow(uint(nb)),
		eLags:      circular.NewLagWindow(uint(na)),
	}, nil
}

// Step consumes one sample and returns the one-step prediction error made
// before the parameter update. The first step sees an all-zero regressor;
// from then on the fixed-width lag windows slide forward on their own, there
// is no unbounded history.
func (r *Recursive) Step(u, y float64) (float64, error) {
	raw := r.phi.RawVector().Data
	for j := 0; j < r.na; j++ {
		raw[j] = -r.yLags.Lag(uint(j) + 1)
	}
	for j := 0; j < r.nb; j++ {
		raw[r.na+j] = r.uLags.Lag(uint(j) + 1)
	}
	for j := 0; j < r.na; j++ {
		raw[r.na+r.nb+j] = r.eLags.Lag(uint(j) + 1)
	}

	predErr := y - mat.Dot(r.phi, r.theta)

	var pphi mat.VecDense
	pphi.MulVec(r.p, r.phi)

	den := r.set.forgetting + mat.Dot(r.phi, &pphi)
	if den <= 0 {
		return 0, fmt.Errorf("%w: update denominator %g at step %d", ErrIllConditioned, den, r.steps+1)
	}

	// P <- (P - P phi phi' P / den) / l, resymmetrized against drift.
	var outer mat.Dense
	outer.Outer(1/den, &pphi, &pphi)
	r.p.Sub(r.p, &outer)
	r.p.Scale(1/r.set.forgetting, r.p)
	for i := 0; i < r.dim; i++ {
		for j := i + 1; j < r.dim; j++ {
			s := (r.p.At(i, j) + r.p.At(j, i)) / 2
			r.p.Set(i, j, s)
			r.p.Set(j, i, s)
		}
	}

	var gain mat.VecDense
	gain.MulVec(r.p, r.phi)
	r.theta.AddScaledVec(r.theta, predErr, &gain)

	r.yLags.Push(y)
	r.uLags.Push(u)
	r.eLags.Push(predErr)

	r.lastErr = predErr
	r.steps++
	return predErr, nil
}

// Theta returns a copy of the current parameter vector, laid out as na
// output lags, nb input lags, na noise lags.
func (r *Recursive) Theta() []float64 {
	out := make([]float64, r.dim)
	copy(out, r.theta.RawVector().Data)
	return out
}

// Covariance returns a copy of the current covariance matrix P.
func (r *Recursive) Covariance() *mat.Dense {
	out := mat.NewDense(r.dim, r.dim, nil)
	out.Copy(r.p)
	return out
}

// LastError returns the most recent one-step prediction error.
func (r *Recursive) LastError() float64 {
	return r.lastErr
}

func (r *Recursive) Steps() int {
	return r.steps
}

// Model realizes the current parameter estimate. The observer gain is the
// elementwise difference between the noise block and the denominator tail,
// folded into the state-space input matrix as an extra column.
func (r *Recursive) Model() (*Model, error) {
	if r.steps == 0 {
		return nil, ErrNoSamplesProcessed
	}

	raw := r.theta.RawVector().Data

	den := make([]float64, r.na+1)
	den[0] = 1
	copy(den[1:], raw[:r.na])

	num := make([]float64, r.nb)
	copy(num, raw[r.na:r.na+r.nb])

	noise := make([]float64, r.na)
	copy(noise, raw[r.na+r.nb:])

	gain := make([]float64, r.na)
	for i := range gain {
		gain[i] = noise[i] - den[i+1]
	}

	return realize(den, num, noise, gain, r.sampleTime, r.set)
}

// RLS runs a full sequential pass over the record and realizes the final
// estimate. Length checks happen before the session state is allocated.
func RLS(u, y []float64, na, nb int, sampleTime float64, opts ...Option) (*Model, error) {
	if err := validateSignals(u, y, nil); err != nil {
		return nil, err
	}

	session, err := NewRecursive(na, nb, sampleTime, opts...)
	if err != nil {
		return nil, err
	}
	for k := range y {
		if _, err := session.Step(u[k], y[k]); err != nil {
			return nil, err
		}
	}
	return session.Model()
}
