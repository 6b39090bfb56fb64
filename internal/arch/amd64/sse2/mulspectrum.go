//go:build amd64 && !purego

package sse2

// MulSpectrum64 computes buffer[i] = buffer[i] * conj(other[i]) / length for
// the first length elements. The vector body handles two complex64 values per
// iteration; an odd trailing element is finished in Go.
func MulSpectrum64(buffer, other []complex64, length int) {
	if length <= 0 {
		return
	}
	buffer = buffer[:length]
	other = other[:length]
	norm := float32(1 / float64(length))

	n := length &^ 1
	if n > 0 {
		mulSpectrum64SSE2(buffer, other, n, norm)
	}
	for i := n; i < length; i++ {
		b := other[i]
		p := buffer[i] * complex(real(b), -imag(b))
		buffer[i] = complex(real(p)*norm, imag(p)*norm)
	}
}

// MulSpectrum128 is the complex128 counterpart of MulSpectrum64. One
// complex128 value occupies a full XMM register, so there is no tail.
func MulSpectrum128(buffer, other []complex128, length int) {
	if length <= 0 {
		return
	}
	buffer = buffer[:length]
	other = other[:length]
	norm := 1 / float64(length)

	mulSpectrum128SSE2(buffer, other, length, norm)
}

//go:noescape
func mulSpectrum64SSE2(buffer, other []complex64, n int, norm float32)

//go:noescape
func mulSpectrum128SSE2(buffer, other []complex128, n int, norm float64)
