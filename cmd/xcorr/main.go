// Command xcorr cross-correlates two demo signals and prints the result.
//
// Usage:
//
//	xcorr [flags]
//
// Examples:
//
//	xcorr
//	xcorr -mode same
//	xcorr -mode valid -precision f32
//	xcorr -normalize
package main

import (
	"flag"
	"fmt"
	"os"

	correlate "github.com/cwbudde/algo-correlate"
	"github.com/cwbudde/algo-correlate/fftexec"
)

var demoSignal = []float64{5.12, 6.2136, 7.2387, 1.52312, 2.52313, 3.52313, 4.52313, 5.23871}
var demoPattern = []float64{0.31421, 0.421, 0.653, 0.121}

func main() {
	modeName := flag.String("mode", "full", "output mode: full, same or valid")
	precision := flag.String("precision", "f64", "sample precision: f32 or f64")
	normalize := flag.Bool("normalize", false, "scale output by the signal norms")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xcorr [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Cross-correlates two built-in demo signals.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var mode correlate.Mode
	switch *modeName {
	case "full":
		mode = correlate.ModeFull
	case "same":
		mode = correlate.ModeSame
	case "valid":
		mode = correlate.ModeValid
	default:
		fmt.Fprintf(os.Stderr, "xcorr: unknown mode %q\n", *modeName)
		os.Exit(2)
	}

	switch *precision {
	case "f64":
		if err := runF64(mode, *normalize); err != nil {
			fail(err)
		}
	case "f32":
		if err := runF32(mode); err != nil {
			fail(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "xcorr: unknown precision %q\n", *precision)
		os.Exit(2)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "xcorr: %v\n", err)
	os.Exit(1)
}

func runF64(mode correlate.Mode, normalize bool) error {
	fftSize := mode.FFTSize(len(demoSignal), len(demoPattern))

	fwd, err := fftexec.NewForward64(fftSize)
	if err != nil {
		return err
	}
	inv, err := fftexec.NewInverse64(fftSize)
	if err != nil {
		return err
	}

	eng, err := correlate.NewReal64(mode, fwd, inv)
	if err != nil {
		return err
	}

	corr, err := eng.CorrelateManaged(demoSignal, demoPattern)
	if err != nil {
		return err
	}
	if normalize {
		if err := correlate.NormalizeByNorms(corr, demoSignal, demoPattern); err != nil {
			return err
		}
	}

	fmt.Printf("mode %s, fft size %d, kernel %s\n", mode, fftSize, eng.KernelName())
	for i, v := range corr {
		fmt.Printf("  [%2d] % .9f\n", i, v)
	}
	if mode == correlate.ModeFull {
		idx, peak := correlate.FindPeak(corr)
		fmt.Printf("peak % .9f at lag %d\n", peak, correlate.LagFromIndex(idx, len(demoPattern)))
	}

	return nil
}

func runF32(mode correlate.Mode) error {
	signal := make([]float32, len(demoSignal))
	pattern := make([]float32, len(demoPattern))
	for i, v := range demoSignal {
		signal[i] = float32(v)
	}
	for i, v := range demoPattern {
		pattern[i] = float32(v)
	}

	fftSize := mode.FFTSize(len(signal), len(pattern))

	fwd, err := fftexec.NewForward32(fftSize)
	if err != nil {
		return err
	}
	inv, err := fftexec.NewInverse32(fftSize)
	if err != nil {
		return err
	}

	eng, err := correlate.NewReal32(mode, fwd, inv)
	if err != nil {
		return err
	}

	corr, err := eng.CorrelateManaged(signal, pattern)
	if err != nil {
		return err
	}

	fmt.Printf("mode %s, fft size %d, kernel %s\n", mode, fftSize, eng.KernelName())
	for i, v := range corr {
		fmt.Printf("  [%2d] % .6f\n", i, v)
	}

	return nil
}
