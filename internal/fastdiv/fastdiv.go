// Package fastdiv implements branch-free unsigned division and modulo by a
// divisor fixed at construction time (libdivide-style magic-number division).
//
// A divider precomputes a magic multiplier and shift for one divisor d > 1.
// Division then costs one widening multiply, one add-and-shift correction and
// one shift, which beats a hardware divide when the same divisor is reused
// across many operations, such as the wrap-around indexing loop of an
// FFT-based correlation.
//
// Div and Mod match native / and % exactly for every representable dividend.
package fastdiv

import "math/bits"

// Uint32 divides uint32 values by a fixed divisor.
type Uint32 struct {
	magic   uint32
	shift   uint8
	divisor uint32
}

// NewUint32 builds a divider for d. Panics if d is 0 or 1; both are
// precondition violations, not runtime conditions (d == 1 needs no divider).
func NewUint32(d uint32) Uint32 {
	if d == 0 {
		panic("fastdiv: divisor must not be zero")
	}
	if d == 1 {
		panic("fastdiv: divisor must not be 1")
	}

	floorLog2 := uint32(31 - bits.LeadingZeros32(d))

	if d&(d-1) == 0 {
		// Power of two: pure shift. The division algorithm below has a
		// hardcoded right shift by 1, so the stored shift is one less.
		return Uint32{magic: 0, shift: uint8(floorLog2-1) & 0x1F, divisor: d}
	}

	// General case: magic = 1 + 2*floor(2^(31+floorLog2)/d), with a
	// round-up correction derived from the doubled remainder.
	num := uint64(1) << (floorLog2 + 32)
	proposed := uint32(num / uint64(d))
	rem := uint32(num % uint64(d))

	proposed += proposed
	twiceRem := rem + rem
	if twiceRem >= d || twiceRem < rem {
		proposed++
	}

	return Uint32{magic: proposed + 1, shift: uint8(floorLog2) & 0x1F, divisor: d}
}

// Div returns x / d.
func (u Uint32) Div(x uint32) uint32 {
	q := uint32((uint64(x) * uint64(u.magic)) >> 32)
	t := ((x - q) >> 1) + q
	return t >> u.shift
}

// Mod returns x % d.
func (u Uint32) Mod(x uint32) uint32 {
	return x - u.Div(x)*u.divisor
}

// Divisor returns the original divisor.
func (u Uint32) Divisor() uint32 { return u.divisor }

// Uint64 divides uint64 values by a fixed divisor.
type Uint64 struct {
	magic   uint64
	shift   uint8
	divisor uint64
}

// NewUint64 builds a divider for d. Panics if d is 0 or 1.
func NewUint64(d uint64) Uint64 {
	if d == 0 {
		panic("fastdiv: divisor must not be zero")
	}
	if d == 1 {
		panic("fastdiv: divisor must not be 1")
	}

	floorLog2 := uint64(63 - bits.LeadingZeros64(d))

	if d&(d-1) == 0 {
		return Uint64{magic: 0, shift: uint8(floorLog2-1) & 0x3F, divisor: d}
	}

	// floor(2^(63+floorLog2... ) / d) computed as a 128/64 division; the
	// high word 2^floorLog2 is below d because d is not a power of two.
	proposed, rem := bits.Div64(uint64(1)<<floorLog2, 0, d)

	proposed += proposed
	twiceRem := rem + rem
	if twiceRem >= d || twiceRem < rem {
		proposed++
	}

	return Uint64{magic: proposed + 1, shift: uint8(floorLog2) & 0x3F, divisor: d}
}

// Div returns x / d.
func (u Uint64) Div(x uint64) uint64 {
	q, _ := bits.Mul64(x, u.magic)
	t := ((x - q) >> 1) + q
	return t >> u.shift
}

// Mod returns x % d.
func (u Uint64) Mod(x uint64) uint64 {
	return x - u.Div(x)*u.divisor
}

// Divisor returns the original divisor.
func (u Uint64) Divisor() uint64 { return u.divisor }
