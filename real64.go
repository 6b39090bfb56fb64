package correlate

import "github.com/cwbudde/algo-correlate/internal/fastdiv"

// Real64 correlates real double-precision signals. Construct with NewReal64;
// the zero value is not usable.
type Real64 struct {
	mode    Mode
	fwd     Executor[complex128]
	inv     Executor[complex128]
	kernels kernelSet
}

var _ Correlator[float64] = (*Real64)(nil)

// Correlate computes the cross-correlation of buffer with other into output.
// output must have exactly mode.OutputSize(len(buffer), len(other))
// elements; it is not mutated unless all validation passes.
func (c *Real64) Correlate(output, buffer, other []float64) error {
	fftSize, err := validateSizes(c.mode, len(buffer), len(other), len(output), c.fwd.Length(), c.inv.Length())
	if err != nil {
		return err
	}

	padded, err := padRealToComplex128(buffer, fftSize)
	if err != nil {
		return err
	}
	paddedOther, err := padRealToComplex128(other, fftSize)
	if err != nil {
		return err
	}

	if err := forwardMultiplyInverse(c.fwd, c.inv, c.kernels.mul128, padded, paddedOther); err != nil {
		return err
	}

	// Real variants extract the real part only; the imaginary residue is
	// transform noise.
	if fftSize == 1 {
		v := real(padded[0])
		for i := range output {
			output[i] = v
		}
		return nil
	}

	div := fastdiv.NewUint(uint(fftSize))
	base := windowStart(c.mode, len(other)) + fftSize - (len(other) - 1)
	for i := range output {
		output[i] = real(padded[div.Mod(uint(base+i))])
	}

	return nil
}

// CorrelateManaged allocates a correctly sized output and correlates into
// it.
func (c *Real64) CorrelateManaged(buffer, other []float64) ([]float64, error) {
	if len(buffer) == 0 || len(other) == 0 {
		return nil, ErrEmptyBuffer
	}

	out, err := allocSamples[float64](c.mode.OutputSize(len(buffer), len(other)))
	if err != nil {
		return nil, err
	}
	if err := c.Correlate(out, buffer, other); err != nil {
		return nil, err
	}

	return out, nil
}

// Mode returns the output mode the engine was constructed with.
func (c *Real64) Mode() Mode { return c.mode }

// KernelName returns the name of the spectrum-multiply kernel chosen at
// construction ("generic", "sse2", "avx2").
func (c *Real64) KernelName() string { return c.kernels.name }
