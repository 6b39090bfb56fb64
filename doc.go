// Package correlate computes discrete cross-correlation of one-dimensional
// signals using the FFT convolution theorem.
//
// The package provides correlation engines for four sample domains: real and
// complex signals in single and double precision. An engine binds an output
// mode and a pair of forward/inverse FFT executors at construction and is
// reusable for many correlation calls:
//
//	fwd, _ := fftexec.NewForward64(fftSize)
//	inv, _ := fftexec.NewInverse64(fftSize)
//	eng, _ := correlate.NewReal64(correlate.ModeFull, fwd, inv)
//	result, _ := eng.CorrelateManaged(signal, pattern)
//
// The transform itself is delegated to the executors; any implementation of
// the Executor interface works. The fftexec subpackage provides executors
// backed by github.com/MeKo-Christian/algo-fft.
//
// # Output Modes
//
// ModeFull returns every overlap position, length len(a)+len(b)-1. ModeSame
// returns the central max(len(a), len(b)) values. ModeValid returns only the
// positions where the signals fully overlap.
//
// # Performance
//
// The spectrum multiply step dispatches to SIMD kernels (SSE2/AVX on amd64)
// selected once at engine construction; wrap-around indexing in the output
// extraction loop uses branch-free magic-number division instead of native
// modulo. Engines hold no per-call state and are safe for concurrent use as
// long as the supplied executors are.
package correlate
