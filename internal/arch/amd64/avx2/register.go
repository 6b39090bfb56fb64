//go:build amd64 && !purego

// Package avx2 provides spectrum-multiply kernels using 256-bit AVX
// instructions, doubling the lane width of the SSE2 kernels.
package avx2

import (
	"github.com/cwbudde/algo-correlate/internal/arch/registry"
	"github.com/cwbudde/algo-correlate/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:           "avx2",
		SIMDLevel:      cpu.SIMDAVX2,
		Priority:       20,
		MulSpectrum64:  MulSpectrum64,
		MulSpectrum128: MulSpectrum128,
	})
}
