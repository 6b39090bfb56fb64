package correlate

import "github.com/cwbudde/algo-correlate/internal/fastdiv"

// Real32 is the single-precision counterpart of Real64. Construct with
// NewReal32.
type Real32 struct {
	mode    Mode
	fwd     Executor[complex64]
	inv     Executor[complex64]
	kernels kernelSet
}

var _ Correlator[float32] = (*Real32)(nil)

// Correlate computes the cross-correlation of buffer with other into output.
func (c *Real32) Correlate(output, buffer, other []float32) error {
	fftSize, err := validateSizes(c.mode, len(buffer), len(other), len(output), c.fwd.Length(), c.inv.Length())
	if err != nil {
		return err
	}

	padded, err := padRealToComplex64(buffer, fftSize)
	if err != nil {
		return err
	}
	paddedOther, err := padRealToComplex64(other, fftSize)
	if err != nil {
		return err
	}

	if err := forwardMultiplyInverse(c.fwd, c.inv, c.kernels.mul64, padded, paddedOther); err != nil {
		return err
	}

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
func (c *Real32) CorrelateManaged(buffer, other []float32) ([]float32, error) {
	if len(buffer) == 0 || len(other) == 0 {
		return nil, ErrEmptyBuffer
	}

	out, err := allocSamples[float32](c.mode.OutputSize(len(buffer), len(other)))
	if err != nil {
		return nil, err
	}
	if err := c.Correlate(out, buffer, other); err != nil {
		return nil, err
	}

	return out, nil
}

// Mode returns the output mode the engine was constructed with.
func (c *Real32) Mode() Mode { return c.mode }

// KernelName returns the name of the chosen spectrum-multiply kernel.
func (c *Real32) KernelName() string { return c.kernels.name }
