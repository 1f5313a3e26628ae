package lti

import (
	"gonum.org/v1/gonum/mat"
)

// Form selects the canonical structure of a realization.
type Form uint8

const (
	Controllable Form = iota
	Observable
)

// Realize maps the transfer function onto a minimal canonical state-space
// model of dimension Order(). The direct feedthrough, if any, is extracted
// into D so that C only sees the strictly proper remainder.
func (tf TransferFunction) Realize(form Form) (StateSpace, error) {
	n := tf.Order()
	if n == 0 {
		return StateSpace{}, ErrStaticGain
	}

	// Pad both polynomials to full length and split off the direct term:
	// N(z)/D(z) = d + R(z)/D(z) with R strictly proper.
	num := make([]float64, n+1)
	copy(num, tf.Num)
	den := make([]float64, n+1)
	copy(den, tf.Den)

	d := num[0]
	r := make([]float64, n)
	for j := 1; j <= n; j++ {
		r[j-1] = num[j] - d*den[j]
	}

	a := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		a.Set(0, j, -den[j+1])
	}
	for i := 1; i < n; i++ {
		a.Set(i, i-1, 1)
	}

	b := mat.NewDense(n, 1, nil)
	b.Set(0, 0, 1)

	c := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		c.Set(0, j, r[j])
	}

	dm := mat.NewDense(1, 1, []float64{d})

	ss := StateSpace{A: a, B: b, C: c, D: dm, SampleTime: tf.SampleTime}
	if form == Observable {
		ss = ss.dual()
	}
	return ss, nil
}

// dual transposes the realization, turning the controllable canonical form
// into the observable one. Valid for single-input single-output models only.
func (ss StateSpace) dual() StateSpace {
	n := ss.Order()

	a := mat.NewDense(n, n, nil)
	a.CloneFrom(ss.A.T())

	b := mat.NewDense(n, 1, nil)
	b.CloneFrom(ss.C.T())

	c := mat.NewDense(1, n, nil)
	c.CloneFrom(ss.B.T())

	return StateSpace{A: a, B: b, C: c, D: ss.D, SampleTime: ss.SampleTime}
}
