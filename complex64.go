package correlate

// Complex64 is the single-precision counterpart of Complex128. Construct
// with NewComplex64.
type Complex64 struct {
	mode    Mode
	fwd     Executor[complex64]
	inv     Executor[complex64]
	kernels kernelSet
}

var _ Correlator[complex64] = (*Complex64)(nil)

// Correlate computes the cross-correlation of buffer with other into output.
func (c *Complex64) Correlate(output, buffer, other []complex64) error {
	fftSize, err := validateSizes(c.mode, len(buffer), len(other), len(output), c.fwd.Length(), c.inv.Length())
	if err != nil {
		return err
	}

	padded, err := padSignal(buffer, fftSize)
	if err != nil {
		return err
	}
	paddedOther, err := padSignal(other, fftSize)
	if err != nil {
		return err
	}

	if err := forwardMultiplyInverse(c.fwd, c.inv, c.kernels.mul64, padded, paddedOther); err != nil {
		return err
	}

	base := windowStart(c.mode, len(other)) + fftSize - (len(other) - 1)
	extractWindow(output, padded, base, fftSize)

	return nil
}

// CorrelateManaged allocates a correctly sized output and correlates into
// it.
func (c *Complex64) CorrelateManaged(buffer, other []complex64) ([]complex64, error) {
	if len(buffer) == 0 || len(other) == 0 {
		return nil, ErrEmptyBuffer
	}

	out, err := allocSamples[complex64](c.mode.OutputSize(len(buffer), len(other)))
	if err != nil {
		return nil, err
	}
	if err := c.Correlate(out, buffer, other); err != nil {
		return nil, err
	}

	return out, nil
}

// Mode returns the output mode the engine was constructed with.
func (c *Complex64) Mode() Mode { return c.mode }

// KernelName returns the name of the chosen spectrum-multiply kernel.
func (c *Complex64) KernelName() string { return c.kernels.name }
