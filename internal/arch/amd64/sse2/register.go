//go:build amd64 && !purego

// Package sse2 provides spectrum-multiply kernels using 128-bit SSE2
// instructions. SSE2 is part of the x86-64 baseline, so these kernels are
// usable on every amd64 machine.
package sse2

import (
	"github.com/cwbudde/algo-correlate/internal/arch/registry"
	"github.com/cwbudde/algo-correlate/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:           "sse2",
		SIMDLevel:      cpu.SIMDSSE2,
		Priority:       10,
		MulSpectrum64:  MulSpectrum64,
		MulSpectrum128: MulSpectrum128,
	})
}
