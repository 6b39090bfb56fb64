// Package generic provides the portable spectrum-multiply kernels. They are
// the correctness reference every accelerated kernel is tested against.
package generic

import (
	"github.com/cwbudde/algo-correlate/internal/arch/registry"
	"github.com/cwbudde/algo-correlate/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:           "generic",
		SIMDLevel:      cpu.SIMDNone,
		Priority:       0,
		MulSpectrum64:  MulSpectrum64,
		MulSpectrum128: MulSpectrum128,
	})
}

// MulSpectrum64 computes buffer[i] = buffer[i] * conj(other[i]) / length for
// the first length elements. The normalization factor is computed in float64
// and rounded once, matching the accelerated kernels.
func MulSpectrum64(buffer, other []complex64, length int) {
	if length == 0 {
		return
	}
	buffer = buffer[:length]
	other = other[:length]
	norm := float32(1 / float64(length))

	for i := range buffer {
		b := other[i]
		p := buffer[i] * complex(real(b), -imag(b))
		buffer[i] = complex(real(p)*norm, imag(p)*norm)
	}
}

// MulSpectrum128 is the complex128 counterpart of MulSpectrum64.
func MulSpectrum128(buffer, other []complex128, length int) {
	if length == 0 {
		return
	}
	buffer = buffer[:length]
	other = other[:length]
	norm := 1 / float64(length)

	for i := range buffer {
		b := other[i]
		p := buffer[i] * complex(real(b), -imag(b))
		buffer[i] = complex(real(p)*norm, imag(p)*norm)
	}
}
