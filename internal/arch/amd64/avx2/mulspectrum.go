//go:build amd64 && !purego

package avx2

// MulSpectrum64 computes buffer[i] = buffer[i] * conj(other[i]) / length for
// the first length elements. The vector body handles four complex64 values
// per iteration; up to three trailing elements are finished in Go.
func MulSpectrum64(buffer, other []complex64, length int) {
	if length <= 0 {
		return
	}
	buffer = buffer[:length]
	other = other[:length]
	norm := float32(1 / float64(length))

	n := length &^ 3
	if n > 0 {
		mulSpectrum64AVX2(buffer, other, n, norm)
	}
	for i := n; i < length; i++ {
		b := other[i]
		p := buffer[i] * complex(real(b), -imag(b))
		buffer[i] = complex(real(p)*norm, imag(p)*norm)
	}
}

// MulSpectrum128 is the complex128 counterpart of MulSpectrum64, two values
// per iteration with at most one trailing element.
func MulSpectrum128(buffer, other []complex128, length int) {
	if length <= 0 {
		return
	}
	buffer = buffer[:length]
	other = other[:length]
	norm := 1 / float64(length)

	n := length &^ 1
	if n > 0 {
		mulSpectrum128AVX2(buffer, other, n, norm)
	}
	if n < length {
		b := other[n]
		p := buffer[n] * complex(real(b), -imag(b))
		buffer[n] = complex(real(p)*norm, imag(p)*norm)
	}
}

//go:noescape
func mulSpectrum64AVX2(buffer, other []complex64, n int, norm float32)

//go:noescape
func mulSpectrum128AVX2(buffer, other []complex128, n int, norm float64)
