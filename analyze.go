package correlate

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrZeroNorm reports normalization of a correlation against an all-zero
// signal.
var ErrZeroNorm = errors.New("correlate: zero-norm signal")

// FindPeak returns the index and value of the largest-magnitude sample of a
// correlation result. It returns (-1, 0) for an empty slice.
func FindPeak[F Float](corr []F) (int, F) {
	if len(corr) == 0 {
		return -1, 0
	}

	best := 0
	for i := 1; i < len(corr); i++ {
		if abs(corr[i]) > abs(corr[best]) {
			best = i
		}
	}

	return best, corr[best]
}

func abs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

// LagFromIndex converts an index into a full correlation result to the
// signal lag it represents. Index len(other)-1 is lag zero; smaller indices
// are negative lags.
func LagFromIndex(index, lenOther int) int {
	return index - (lenOther - 1)
}

// IndexFromLag is the inverse of LagFromIndex.
func IndexFromLag(lag, lenOther int) int {
	return lag + lenOther - 1
}

// NormalizeByNorms scales corr in place by 1/(|a|*|b|), the Euclidean norms
// of the correlated signals, yielding normalized cross-correlation values.
func NormalizeByNorms(corr, a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyBuffer
	}

	normA := math.Sqrt(vecmath.DotProduct(a, a))
	normB := math.Sqrt(vecmath.DotProduct(b, b))
	if normA == 0 || normB == 0 {
		return ErrZeroNorm
	}

	vecmath.ScaleBlockInPlace(corr, 1/(normA*normB))

	return nil
}
