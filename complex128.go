package correlate

// Complex128 correlates complex double-precision signals. Unlike the real
// variants it keeps the full complex output values. Construct with
// NewComplex128.
type Complex128 struct {
	mode    Mode
	fwd     Executor[complex128]
	inv     Executor[complex128]
	kernels kernelSet
}

var _ Correlator[complex128] = (*Complex128)(nil)

// Correlate computes the cross-correlation of buffer with other into output.
func (c *Complex128) Correlate(output, buffer, other []complex128) error {
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

	if err := forwardMultiplyInverse(c.fwd, c.inv, c.kernels.mul128, padded, paddedOther); err != nil {
		return err
	}

	base := windowStart(c.mode, len(other)) + fftSize - (len(other) - 1)
	extractWindow(output, padded, base, fftSize)

	return nil
}

// CorrelateManaged allocates a correctly sized output and correlates into
// it.
func (c *Complex128) CorrelateManaged(buffer, other []complex128) ([]complex128, error) {
	if len(buffer) == 0 || len(other) == 0 {
		return nil, ErrEmptyBuffer
	}

	out, err := allocSamples[complex128](c.mode.OutputSize(len(buffer), len(other)))
	if err != nil {
		return nil, err
	}
	if err := c.Correlate(out, buffer, other); err != nil {
		return nil, err
	}

	return out, nil
}

// Mode returns the output mode the engine was constructed with.
func (c *Complex128) Mode() Mode { return c.mode }

// KernelName returns the name of the chosen spectrum-multiply kernel.
func (c *Complex128) KernelName() string { return c.kernels.name }
