// Package registry stores the available spectrum-multiply kernel
// implementations. Architecture packages register their kernels from init();
// the correlator factory looks up the best supported entry once per engine.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-correlate/internal/cpu"
)

// MulSpectrum64Func multiplies buffer by the conjugate of other, element by
// element, scaled by 1/length: buffer[i] = buffer[i] * conj(other[i]) / length.
// Both slices must hold at least length elements; other is never mutated.
type MulSpectrum64Func func(buffer, other []complex64, length int)

// MulSpectrum128Func is the complex128 counterpart of MulSpectrum64Func.
type MulSpectrum128Func func(buffer, other []complex128, length int)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name           string
	SIMDLevel      cpu.SIMDLevel
	Priority       int
	MulSpectrum64  MulSpectrum64Func
	MulSpectrum128 MulSpectrum128Func
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default spectrum kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority complete implementation supported by
// features. Entries missing either kernel are skipped.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.MulSpectrum64 == nil || entry.MulSpectrum128 == nil {
			continue
		}
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
