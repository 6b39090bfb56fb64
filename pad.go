package correlate

import (
	"fmt"
	"math"
)

// maxAllocSamples caps per-call buffer allocations. Transform lengths derive
// from caller-controlled input lengths, so a request beyond this must come
// back as an error instead of an out-of-memory abort. The bound is the
// largest element count a []complex128 can address.
const maxAllocSamples = math.MaxInt / 16

func allocSamples[T any](n int) ([]T, error) {
	if n <= 0 || n > maxAllocSamples {
		return nil, fmt.Errorf("%w: cannot allocate %d samples", ErrAllocation, n)
	}
	return make([]T, n), nil
}

// padSignal copies signal into a fresh zero-padded buffer of n samples.
func padSignal[C Complex](signal []C, n int) ([]C, error) {
	buf, err := allocSamples[C](n)
	if err != nil {
		return nil, err
	}
	copy(buf, signal)
	return buf, nil
}

// padRealToComplex64 lifts a real signal to complex with zero imaginary
// parts, zero-padded to n samples.
func padRealToComplex64(signal []float32, n int) ([]complex64, error) {
	buf, err := allocSamples[complex64](n)
	if err != nil {
		return nil, err
	}
	for i, s := range signal {
		buf[i] = complex(s, 0)
	}
	return buf, nil
}

// padRealToComplex128 is the double-precision counterpart of
// padRealToComplex64.
func padRealToComplex128(signal []float64, n int) ([]complex128, error) {
	buf, err := allocSamples[complex128](n)
	if err != nil {
		return nil, err
	}
	for i, s := range signal {
		buf[i] = complex(s, 0)
	}
	return buf, nil
}
