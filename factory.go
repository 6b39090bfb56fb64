package correlate

import "fmt"

func validateExecutors[C Complex](fwd, inv Executor[C]) error {
	if fwd == nil || inv == nil {
		return ErrNilExecutor
	}
	if fwd.Length() != inv.Length() {
		return fmt.Errorf("%w: forward %d, inverse %d", ErrFFTSizeMismatch, fwd.Length(), inv.Length())
	}
	return nil
}

// NewReal64 builds a correlation engine for real float64 signals bound to
// mode and the given forward/inverse executors. The executors must have
// equal lengths. The spectrum-multiply kernel is probed and fixed here; the
// returned engine holds no per-call state and may be shared across
// goroutines if the executors allow concurrent calls.
func NewReal64(mode Mode, fwd, inv Executor[complex128]) (*Real64, error) {
	if err := validateExecutors(fwd, inv); err != nil {
		return nil, err
	}
	return &Real64{mode: mode, fwd: fwd, inv: inv, kernels: spectrumKernels()}, nil
}

// NewReal32 builds a correlation engine for real float32 signals.
func NewReal32(mode Mode, fwd, inv Executor[complex64]) (*Real32, error) {
	if err := validateExecutors(fwd, inv); err != nil {
		return nil, err
	}
	return &Real32{mode: mode, fwd: fwd, inv: inv, kernels: spectrumKernels()}, nil
}

// NewComplex128 builds a correlation engine for complex128 signals.
func NewComplex128(mode Mode, fwd, inv Executor[complex128]) (*Complex128, error) {
	if err := validateExecutors(fwd, inv); err != nil {
		return nil, err
	}
	return &Complex128{mode: mode, fwd: fwd, inv: inv, kernels: spectrumKernels()}, nil
}

// NewComplex64 builds a correlation engine for complex64 signals.
func NewComplex64(mode Mode, fwd, inv Executor[complex64]) (*Complex64, error) {
	if err := validateExecutors(fwd, inv); err != nil {
		return nil, err
	}
	return &Complex64{mode: mode, fwd: fwd, inv: inv, kernels: spectrumKernels()}, nil
}
