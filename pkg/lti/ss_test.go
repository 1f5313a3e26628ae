package lti

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func column(values []float64) *mat.Dense {
	d := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		d.Set(i, 0, v)
	}
	return d
}

func TestLtiRealize_MatchesTransferFunctionResponse(t *testing.T) {
	tests := []struct {
		name     string
		num, den []float64
		form     Form
	}{
		{"FirstOrderControllable", []float64{0, 0.5}, []float64{1, -0.5}, Controllable},
		{"FirstOrderObservable", []float64{0, 0.5}, []float64{1, -0.5}, Observable},
		{"SecondOrderControllable", []float64{0, 1, 0.5}, []float64{1, -1.5, 0.7}, Controllable},
		{"SecondOrderObservable", []float64{0, 1, 0.5}, []float64{1, -1.5, 0.7}, Observable},
		{"WithFeedthrough", []float64{2, 1}, []float64{1, -0.3}, Controllable},
		{"LongNumerator", []float64{0, 1, 0.5, 0.25}, []float64{1, -0.5}, Controllable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, err := NewDiscrete(tt.num, tt.den, 1, 0)
			if err != nil {
				t.Fatalf("NewDiscrete failed: %v", err)
			}
			ss, err := tf.Realize(tt.form)
			if err != nil {
				t.Fatalf("Realize failed: %v", err)
			}

			if ss.Order() != tf.Order() {
				t.Fatalf("realization order %d, expected %d", ss.Order(), tf.Order())
			}

			u := []float64{1, 0.5, -1, 0, 2, 1, 1, -0.5, 0, 3}
			want := tf.Simulate(u)
			got := ss.Simulate(column(u))

			for k := range want {
				if math.Abs(got.At(k, 0)-want[k]) > 1e-10 {
					t.Errorf("y[%d] = %v, expected %v", k, got.At(k, 0), want[k])
				}
			}
		})
	}
}

func TestLtiRealize_StaticGain(t *testing.T) {
	tf, err := NewDiscrete([]float64{2}, []float64{1}, 1, 0)
	if err != nil {
		t.Fatalf("NewDiscrete failed: %v", err)
	}

	if _, err := tf.Realize(Controllable); err != ErrStaticGain {
		t.Errorf("expected ErrStaticGain, got %v", err)
	}
}

func TestLtiAppend_PreservesSubModelResponses(t *testing.T) {
	tf1, _ := NewDiscrete([]float64{0, 0.5}, []float64{1, -0.5}, 1, 0)
	tf2, _ := NewDiscrete([]float64{0, 1}, []float64{1, -0.9}, 1, 0)

	ss1, _ := tf1.Realize(Controllable)
	ss2, _ := tf2.Realize(Controllable)
	comb := Append(ss1, ss2)

	if comb.Order() != 2 || comb.Inputs() != 2 || comb.Outputs() != 2 {
		t.Fatalf("combined dims order=%d inputs=%d outputs=%d, expected 2/2/2",
			comb.Order(), comb.Inputs(), comb.Outputs())
	}

	u1 := []float64{1, 0, -1, 2, 0.5}
	u2 := []float64{0, 1, 1, -1, 0}
	u := mat.NewDense(len(u1), 2, nil)
	for k := range u1 {
		u.Set(k, 0, u1[k])
		u.Set(k, 1, u2[k])
	}

	got := comb.Simulate(u)
	want1 := tf1.Simulate(u1)
	want2 := tf2.Simulate(u2)

	for k := range u1 {
		if math.Abs(got.At(k, 0)-want1[k]) > 1e-10 {
			t.Errorf("channel 1, y[%d] = %v, expected %v", k, got.At(k, 0), want1[k])
		}
		if math.Abs(got.At(k, 1)-want2[k]) > 1e-10 {
			t.Errorf("channel 2, y[%d] = %v, expected %v", k, got.At(k, 1), want2[k])
		}
	}
}

func TestLtiSumOutputs_SingleSummedChannel(t *testing.T) {
	tf1, _ := NewDiscrete([]float64{0, 0.5}, []float64{1, -0.5}, 1, 0)
	tf2, _ := NewDiscrete([]float64{0, 1}, []float64{1, -0.9}, 1, 0)

	ss1, _ := tf1.Realize(Controllable)
	ss2, _ := tf2.Realize(Controllable)
	comb := Append(ss1, ss2).SumOutputs()

	if comb.Outputs() != 1 {
		t.Fatalf("expected a single output, got %d", comb.Outputs())
	}

	u1 := []float64{1, 0, -1, 2, 0.5}
	u2 := []float64{0, 1, 1, -1, 0}
	u := mat.NewDense(len(u1), 2, nil)
	for k := range u1 {
		u.Set(k, 0, u1[k])
		u.Set(k, 1, u2[k])
	}

	got := comb.Simulate(u)
	want1 := tf1.Simulate(u1)
	want2 := tf2.Simulate(u2)

	for k := range u1 {
		if math.Abs(got.At(k, 0)-(want1[k]+want2[k])) > 1e-10 {
			t.Errorf("y[%d] = %v, expected %v", k, got.At(k, 0), want1[k]+want2[k])
		}
	}
}

func TestLtiWithInputColumn(t *testing.T) {
	tf, _ := NewDiscrete([]float64{0, 1, 0.5}, []float64{1, -1.5, 0.7}, 1, 0)
	ss, _ := tf.Realize(Controllable)

	aug, err := ss.WithInputColumn([]float64{0.25, -0.5})
	if err != nil {
		t.Fatalf("WithInputColumn failed: %v", err)
	}

	if aug.Inputs() != 2 {
		t.Fatalf("expected 2 inputs, got %d", aug.Inputs())
	}
	if aug.B.At(0, 1) != 0.25 || aug.B.At(1, 1) != -0.5 {
		t.Errorf("gain column not folded into B: %v, %v", aug.B.At(0, 1), aug.B.At(1, 1))
	}
	if aug.D.At(0, 1) != 0 {
		t.Errorf("extra D column must be zero, got %v", aug.D.At(0, 1))
	}

	if _, err := ss.WithInputColumn([]float64{1}); err != ErrGainDimension {
		t.Errorf("expected ErrGainDimension, got %v", err)
	}
}
