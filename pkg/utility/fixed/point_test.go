package fixed

import (
	"math"
	"testing"
)

func TestFixedPoint_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(a, b Point) Point
		a, b     float64
		expected float64
	}{
		{"Add", Point.Add, 1.5, 2.25, 3.75},
		{"Sub", Point.Sub, 1.5, 2.25, -0.75},
		{"Mul", Point.Mul, 0.5, 0.5, 0.25},
		{"Div", Point.Div, 1.0, 4.0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(FromFloat64(tt.a), FromFloat64(tt.b))
			if !got.Eq(FromFloat64(tt.expected)) {
				t.Errorf("%s(%v, %v) = %s, expected %v", tt.name, tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestFixedPoint_Float64RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, -0.9375, 1000, 1e-6}

	for _, v := range values {
		p := FromFloat64(v)
		f, ok := p.Float64()
		if !ok {
			t.Fatalf("Float64 conversion failed for %v", v)
		}
		if math.Abs(f-v) > 1e-12 {
			t.Errorf("round trip of %v gave %v", v, f)
		}
	}
}

func TestFixedPoint_TextRoundTrip(t *testing.T) {
	p := FromFloat64(-0.875)

	data, err := p.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var q Point
	if err := q.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !p.Eq(q) {
		t.Errorf("round trip gave %s, expected %s", q, p)
	}
}

func TestFixedPoint_Compare(t *testing.T) {
	a := FromFloat64(0.5)
	b := FromFloat64(0.75)

	if !a.Lt(b) || !b.Gt(a) || a.Eq(b) {
		t.Errorf("comparison of %s and %s inconsistent", a, b)
	}
	if !Zero.IsZero() {
		t.Error("Zero.IsZero() = false")
	}
	if !One.Sub(One).IsZero() {
		t.Error("One - One not zero")
	}
}
