package correlate

import (
	"errors"
	"math"
	"testing"
)

func TestFindPeak(t *testing.T) {
	idx, val := FindPeak([]float64{0.1, -3.5, 2, 0})
	if idx != 1 || val != -3.5 {
		t.Errorf("FindPeak = (%d, %v), expected (1, -3.5)", idx, val)
	}

	idx32, val32 := FindPeak([]float32{2, 2, 1})
	if idx32 != 0 || val32 != 2 {
		t.Errorf("FindPeak = (%d, %v), expected (0, 2)", idx32, val32)
	}

	if idx, _ := FindPeak[float64](nil); idx != -1 {
		t.Errorf("FindPeak(nil) index = %d, expected -1", idx)
	}
}

func TestLagIndexRoundTrip(t *testing.T) {
	const lenOther = 4
	for lag := -(lenOther - 1); lag <= 6; lag++ {
		idx := IndexFromLag(lag, lenOther)
		if got := LagFromIndex(idx, lenOther); got != lag {
			t.Errorf("round trip lag %d -> index %d -> %d", lag, idx, got)
		}
	}
	if got := LagFromIndex(3, 4); got != 0 {
		t.Errorf("LagFromIndex(3, 4) = %d, expected 0", got)
	}
}

func TestNormalizeByNorms(t *testing.T) {
	// Norms are 5 and 2.
	a := []float64{3, 4}
	b := []float64{0, 0, 2}
	corr := []float64{10, -20, 5}

	if err := NormalizeByNorms(corr, a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{1, -2, 0.5}
	for i := range corr {
		if math.Abs(corr[i]-want[i]) > 1e-12 {
			t.Errorf("corr[%d] = %v, expected %v", i, corr[i], want[i])
		}
	}
}

func TestNormalizeByNormsErrors(t *testing.T) {
	if err := NormalizeByNorms(nil, nil, []float64{1}); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("empty signal: err = %v, expected ErrEmptyBuffer", err)
	}
	if err := NormalizeByNorms([]float64{1}, []float64{0, 0}, []float64{1}); !errors.Is(err, ErrZeroNorm) {
		t.Errorf("zero norm: err = %v, expected ErrZeroNorm", err)
	}
}
