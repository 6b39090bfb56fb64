package correlate

import (
	"github.com/cwbudde/algo-correlate/internal/arch/generic"
	"github.com/cwbudde/algo-correlate/internal/arch/registry"
	"github.com/cwbudde/algo-correlate/internal/cpu"
)

// kernelSet is the spectrum-multiply implementation pair chosen for one
// engine.
type kernelSet struct {
	name   string
	mul64  registry.MulSpectrum64Func
	mul128 registry.MulSpectrum128Func
}

// spectrumKernels probes CPU features once and selects the widest registered
// kernel set, falling back to the portable scalar kernels. Engine factories
// call this at construction so the probe cost never lands on the hot path.
func spectrumKernels() kernelSet {
	if entry := registry.Global.Lookup(cpu.DetectFeatures()); entry != nil {
		return kernelSet{
			name:   entry.Name,
			mul64:  entry.MulSpectrum64,
			mul128: entry.MulSpectrum128,
		}
	}

	return kernelSet{
		name:   "generic",
		mul64:  generic.MulSpectrum64,
		mul128: generic.MulSpectrum128,
	}
}
