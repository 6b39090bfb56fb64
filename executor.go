package correlate

// Complex constrains the spectrum sample types the engine works in.
type Complex interface {
	~complex64 | ~complex128
}

// Float constrains the real sample types of the real-valued engine variants.
type Float interface {
	~float32 | ~float64
}

// Executor performs an in-place discrete Fourier transform of a fixed
// length. One executor is bound to a single direction; an engine takes a
// forward and an inverse executor of equal length.
//
// The inverse transform must be un-normalized, following the convention
// "forward then inverse reproduces the input scaled by N". The engine folds
// the single 1/N factor into its spectrum multiply step.
//
// Engines are shareable across goroutines only if their executors are safe
// for concurrent calls.
type Executor[C Complex] interface {
	// Length returns the fixed transform length.
	Length() int

	// Process transforms inOut in place. len(inOut) must equal Length.
	Process(inOut []C) error
}
