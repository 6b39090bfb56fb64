package correlate

import (
	"fmt"

	"github.com/cwbudde/algo-correlate/internal/fastdiv"
)

// Correlator is the interface satisfied by the four engine variants
// (Real32, Real64, Complex64, Complex128), parameterized by their sample
// type.
type Correlator[S any] interface {
	// Correlate computes the cross-correlation of buffer with other into
	// output, which must have exactly the mode's output length.
	Correlate(output, buffer, other []S) error

	// CorrelateManaged allocates a correctly sized output and correlates
	// into it.
	CorrelateManaged(buffer, other []S) ([]S, error)
}

// validateSizes runs the pre-mutation checks shared by every variant, in a
// fixed order: empty buffers, executor length equality, required transform
// length, output length. It returns the transform length. No buffer is
// touched until all checks pass.
func validateSizes(mode Mode, lenBuf, lenOther, lenOut, fwdLen, invLen int) (int, error) {
	if lenBuf == 0 || lenOther == 0 || lenOut == 0 {
		return 0, ErrEmptyBuffer
	}
	if fwdLen != invLen {
		return 0, fmt.Errorf("%w: forward %d, inverse %d", ErrFFTSizeMismatch, fwdLen, invLen)
	}

	fftSize := mode.FFTSize(lenBuf, lenOther)
	if fftSize != fwdLen {
		return 0, fmt.Errorf("%w: need %d, executors have %d", ErrFFTBufferMismatch, fftSize, fwdLen)
	}
	if want := mode.OutputSize(lenBuf, lenOther); lenOut != want {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrOutputSizeMismatch, lenOut, want)
	}

	return fftSize, nil
}

// windowStart returns the index of the mode's first output sample within the
// full correlation. For even-length other, ModeSame keeps the floor-division
// centering; downstream consumers depend on it.
func windowStart(mode Mode, lenOther int) int {
	switch mode {
	case ModeValid:
		return lenOther - 1
	case ModeSame:
		return (lenOther - 1) / 2
	default:
		return 0
	}
}

// forwardMultiplyInverse runs the frequency-domain stage shared by every
// variant: forward-transform both padded buffers, multiply the first by the
// conjugate of the second with 1/N normalization, inverse-transform the
// product in place. Executor failures propagate unchanged.
func forwardMultiplyInverse[C Complex](fwd, inv Executor[C], mul func(buffer, other []C, length int), padded, paddedOther []C) error {
	if err := fwd.Process(padded); err != nil {
		return err
	}
	if err := fwd.Process(paddedOther); err != nil {
		return err
	}

	mul(padded, paddedOther, len(padded))

	return inv.Process(padded)
}

// extractWindow copies the circular output window starting at the full-
// correlation position encoded in base (window start plus wrap offset). The
// hot loop replaces native modulo with a magic-number divider built for the
// call's transform length. fftSize == 1 cannot build a divider and
// degenerates to repeating the single sample.
func extractWindow[C Complex](output, padded []C, base, fftSize int) {
	if fftSize == 1 {
		v := padded[0]
		for i := range output {
			output[i] = v
		}
		return
	}

	div := fastdiv.NewUint(uint(fftSize))
	for i := range output {
		output[i] = padded[div.Mod(uint(base+i))]
	}
}
