package fastdiv

import "math"

// Uint divides uint values by a fixed divisor, choosing between the 32-bit
// and 64-bit magic forms per dividend. Go has no pointer-width build tag, so
// both forms are precomputed when the divisor fits in 32 bits; the cheaper
// 32-bit multiply is used for dividends that fit, the 64-bit form otherwise.
type Uint struct {
	d64    Uint64
	d32    Uint32
	narrow bool
}

// NewUint builds a divider for d. Panics if d is 0 or 1.
func NewUint(d uint) Uint {
	u := Uint{d64: NewUint64(uint64(d))}
	if uint64(d) <= math.MaxUint32 {
		u.d32 = NewUint32(uint32(d))
		u.narrow = true
	}
	return u
}

// Div returns x / d.
func (u Uint) Div(x uint) uint {
	if u.narrow && uint64(x) <= math.MaxUint32 {
		return uint(u.d32.Div(uint32(x)))
	}
	return uint(u.d64.Div(uint64(x)))
}

// Mod returns x % d.
func (u Uint) Mod(x uint) uint {
	if u.narrow && uint64(x) <= math.MaxUint32 {
		return uint(u.d32.Mod(uint32(x)))
	}
	return uint(u.d64.Mod(uint64(x)))
}

// Divisor returns the original divisor.
func (u Uint) Divisor() uint { return uint(u.d64.divisor) }
