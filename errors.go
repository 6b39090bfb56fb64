package correlate

import "errors"

// Errors returned by correlation engines. Size-carrying context is attached
// with fmt.Errorf("%w: ..."); match with errors.Is. Failures reported by the
// FFT executors are propagated unchanged.
var (
	// ErrFFTSizeMismatch reports forward and inverse executors of differing
	// lengths.
	ErrFFTSizeMismatch = errors.New("correlate: forward/inverse FFT length mismatch")

	// ErrFFTBufferMismatch reports executors whose length does not match the
	// transform length required by the mode and input lengths.
	ErrFFTBufferMismatch = errors.New("correlate: FFT length does not match required transform length")

	// ErrOutputSizeMismatch reports a caller-supplied output slice of the
	// wrong length.
	ErrOutputSizeMismatch = errors.New("correlate: output length mismatch")

	// ErrEmptyBuffer reports a zero-length input or output buffer.
	ErrEmptyBuffer = errors.New("correlate: buffers must not be empty")

	// ErrAllocation reports a transform or output buffer too large to
	// allocate.
	ErrAllocation = errors.New("correlate: allocation failure")

	// ErrNilExecutor reports a nil FFT executor passed to a factory.
	ErrNilExecutor = errors.New("correlate: nil FFT executor")
)
