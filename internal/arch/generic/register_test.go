package generic

import (
	"math"
	"testing"
)

func TestMulSpectrum128(t *testing.T) {
	buffer := []complex128{complex(1, 2), complex(3, -1)}
	other := []complex128{complex(2, -1), complex(0, 1)}

	MulSpectrum128(buffer, other, 2)

	// (1+2i)*(2+1i)/2 and (3-1i)*(0-1i)/2, computed by hand.
	want := []complex128{complex(0, 2.5), complex(-0.5, -1.5)}
	for i := range want {
		if math.Abs(real(buffer[i])-real(want[i])) > 1e-15 || math.Abs(imag(buffer[i])-imag(want[i])) > 1e-15 {
			t.Errorf("buffer[%d] = %v, expected %v", i, buffer[i], want[i])
		}
	}

	if other[0] != complex(2, -1) || other[1] != complex(0, 1) {
		t.Error("other was mutated")
	}
}

func TestMulSpectrum64(t *testing.T) {
	buffer := []complex64{complex(1, 2), complex(3, -1)}
	other := []complex64{complex(2, -1), complex(0, 1)}

	MulSpectrum64(buffer, other, 2)

	want := []complex64{complex(0, 2.5), complex(-0.5, -1.5)}
	for i := range want {
		if buffer[i] != want[i] {
			t.Errorf("buffer[%d] = %v, expected %v", i, buffer[i], want[i])
		}
	}
}

func TestMulSpectrumPartialLength(t *testing.T) {
	buffer := []complex128{complex(4, 0), complex(7, 7)}
	other := []complex128{complex(1, 0), complex(2, 2)}

	MulSpectrum128(buffer, other, 1)

	if buffer[0] != complex(4, 0) {
		t.Errorf("buffer[0] = %v, expected (4+0i)", buffer[0])
	}
	if buffer[1] != complex(7, 7) {
		t.Errorf("buffer[1] = %v mutated beyond length", buffer[1])
	}
}

func TestMulSpectrumZeroLength(t *testing.T) {
	MulSpectrum128(nil, nil, 0)
	MulSpectrum64(nil, nil, 0)
}
