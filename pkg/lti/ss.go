package lti

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var ErrGainDimension = errors.New("gain column length does not match state dimension")

// StateSpace is a discrete-time state-space model
//
//	x(k+1) = A x(k) + B u(k)
//	y(k)   = C x(k) + D u(k)
//
// over dense gonum matrices.
type StateSpace struct {
	A *mat.Dense
	B *mat.Dense
	C *mat.Dense
	D *mat.Dense

	SampleTime float64
}

func (ss StateSpace) Order() int {
	if ss.A == nil {
		return 0
	}
	n, _ := ss.A.Dims()
	return n
}

func (ss StateSpace) Inputs() int {
	if ss.B == nil {
		return 0
	}
	_, m := ss.B.Dims()
	return m
}

func (ss StateSpace) Outputs() int {
	if ss.C == nil {
		return 0
	}
	p, _ := ss.C.Dims()
	return p
}

// Append composes two models block-diagonally: states, inputs and outputs
// are stacked, with no coupling between the two sub-models.
func Append(s1, s2 StateSpace) StateSpace {
	n1, n2 := s1.Order(), s2.Order()
	m1, m2 := s1.Inputs(), s2.Inputs()
	p1, p2 := s1.Outputs(), s2.Outputs()

	a := mat.NewDense(n1+n2, n1+n2, nil)
	a.Slice(0, n1, 0, n1).(*mat.Dense).Copy(s1.A)
	a.Slice(n1, n1+n2, n1, n1+n2).(*mat.Dense).Copy(s2.A)

	b := mat.NewDense(n1+n2, m1+m2, nil)
	b.Slice(0, n1, 0, m1).(*mat.Dense).Copy(s1.B)
	b.Slice(n1, n1+n2, m1, m1+m2).(*mat.Dense).Copy(s2.B)

	c := mat.NewDense(p1+p2, n1+n2, nil)
	c.Slice(0, p1, 0, n1).(*mat.Dense).Copy(s1.C)
	c.Slice(p1, p1+p2, n1, n1+n2).(*mat.Dense).Copy(s2.C)

	d := mat.NewDense(p1+p2, m1+m2, nil)
	d.Slice(0, p1, 0, m1).(*mat.Dense).Copy(s1.D)
	d.Slice(p1, p1+p2, m1, m1+m2).(*mat.Dense).Copy(s2.D)

	return StateSpace{A: a, B: b, C: c, D: d, SampleTime: s1.SampleTime}
}

// SumOutputs collapses all output channels into a single row that sums them.
func (ss StateSpace) SumOutputs() StateSpace {
	p, n := ss.C.Dims()
	_, m := ss.D.Dims()

	c := mat.NewDense(1, n, nil)
	d := mat.NewDense(1, m, nil)
	for i := 0; i < p; i++ {
		for j := 0; j < n; j++ {
			c.Set(0, j, c.At(0, j)+ss.C.At(i, j))
		}
		for j := 0; j < m; j++ {
			d.Set(0, j, d.At(0, j)+ss.D.At(i, j))
		}
	}

	return StateSpace{A: ss.A, B: ss.B, C: c, D: d, SampleTime: ss.SampleTime}
}

// WithInputColumn folds an extra input column (typically an observer gain)
// into B, with a matching zero column in D.
func (ss StateSpace) WithInputColumn(col []float64) (StateSpace, error) {
	n := ss.Order()
	if len(col) != n {
		return StateSpace{}, ErrGainDimension
	}
	m := ss.Inputs()
	p := ss.Outputs()

	b := mat.NewDense(n, m+1, nil)
	b.Slice(0, n, 0, m).(*mat.Dense).Copy(ss.B)
	for i := 0; i < n; i++ {
		b.Set(i, m, col[i])
	}

	d := mat.NewDense(p, m+1, nil)
	d.Slice(0, p, 0, m).(*mat.Dense).Copy(ss.D)

	return StateSpace{A: ss.A, B: b, C: ss.C, D: d, SampleTime: ss.SampleTime}, nil
}

// Simulate runs the model over an input record, one column of u per input
// channel, zero initial state. Returns one row per output channel.
func (ss StateSpace) Simulate(u *mat.Dense) *mat.Dense {
	steps, m := u.Dims()
	n := ss.Order()
	p := ss.Outputs()

	x := mat.NewVecDense(n, nil)
	y := mat.NewDense(steps, p, nil)

	var cx, du, ax, bu mat.VecDense
	for k := 0; k < steps; k++ {
		uk := mat.NewVecDense(m, nil)
		for j := 0; j < m; j++ {
			uk.SetVec(j, u.At(k, j))
		}

		cx.MulVec(ss.C, x)
		du.MulVec(ss.D, uk)
		for j := 0; j < p; j++ {
			y.Set(k, j, cx.AtVec(j)+du.AtVec(j))
		}

		ax.MulVec(ss.A, x)
		bu.MulVec(ss.B, uk)
		x.AddVec(&ax, &bu)
	}
	return y
}
