package circular

// LagWindow is a fixed-width sliding window over the most recent n values of
// a scalar signal. Lags that precede the start of the record read as exactly
// zero, which is the transient convention the estimators rely on. Pushing
// advances the window in O(1); there is no per-step shifting and no
// unbounded history.
type LagWindow struct {
	b *Buffer[float64]
}

func NewLagWindow(n uint) *LagWindow {
	return &LagWindow{
		b: NewBuffer[float64](n),
	}
}

func (w *LagWindow) Width() uint {
	return w.b.Capacity()
}

func (w *LagWindow) Push(v float64) {
	w.b.Push(v)
}

// Lag returns the value j samples back, j = 1 being the most recent Push.
// Out of range lags, including those the record has not reached yet, are 0.
func (w *LagWindow) Lag(j uint) float64 {
	if j == 0 || j > w.b.Size() {
		return 0
	}
	return w.b.Get(j - 1)
}

// Fill copies lags 1..len(dst) into dst, most recent first.
func (w *LagWindow) Fill(dst []float64) {
	for j := range dst {
		dst[j] = w.Lag(uint(j) + 1)
	}
}

func (w *LagWindow) Reset() {
	w.b = NewBuffer[float64](w.b.Capacity())
}
