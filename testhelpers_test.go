package correlate

import (
	"fmt"
	"math"
	"math/rand"
)

// dft128 is a naive O(n^2) DFT standing in for the external transform in
// tests. sign -1 is the forward direction, +1 the un-normalized inverse.
type dft128 struct {
	n    int
	sign float64
	fail error
}

func newForwardDFT128(n int) *dft128 { return &dft128{n: n, sign: -1} }
func newInverseDFT128(n int) *dft128 { return &dft128{n: n, sign: 1} }

func (e *dft128) Length() int { return e.n }

func (e *dft128) Process(inOut []complex128) error {
	if e.fail != nil {
		return e.fail
	}
	if len(inOut) != e.n {
		return fmt.Errorf("dft128: buffer length %d, want %d", len(inOut), e.n)
	}

	out := make([]complex128, e.n)
	for k := 0; k < e.n; k++ {
		var sum complex128
		for t := 0; t < e.n; t++ {
			angle := e.sign * 2 * math.Pi * float64(k) * float64(t) / float64(e.n)
			sum += inOut[t] * complex(math.Cos(angle), math.Sin(angle))
		}
		out[k] = sum
	}
	copy(inOut, out)

	return nil
}

// dft64 mirrors dft128 for complex64 buffers, accumulating in float64.
type dft64 struct {
	n    int
	sign float64
	fail error
}

func newForwardDFT64(n int) *dft64 { return &dft64{n: n, sign: -1} }
func newInverseDFT64(n int) *dft64 { return &dft64{n: n, sign: 1} }

func (e *dft64) Length() int { return e.n }

func (e *dft64) Process(inOut []complex64) error {
	if e.fail != nil {
		return e.fail
	}
	if len(inOut) != e.n {
		return fmt.Errorf("dft64: buffer length %d, want %d", len(inOut), e.n)
	}

	out := make([]complex64, e.n)
	for k := 0; k < e.n; k++ {
		var re, im float64
		for t := 0; t < e.n; t++ {
			angle := e.sign * 2 * math.Pi * float64(k) * float64(t) / float64(e.n)
			c, s := math.Cos(angle), math.Sin(angle)
			vr := float64(real(inOut[t]))
			vi := float64(imag(inOut[t]))
			re += vr*c - vi*s
			im += vr*s + vi*c
		}
		out[k] = complex(float32(re), float32(im))
	}
	copy(inOut, out)

	return nil
}

// directCorrelate128 computes the full cross-correlation by definition,
// output index k representing lag k-(len(b)-1).
func directCorrelate128(a, b []complex128) []complex128 {
	la, lb := len(a), len(b)
	out := make([]complex128, la+lb-1)
	for k := range out {
		lag := k - (lb - 1)
		var sum complex128
		for i := 0; i < la; i++ {
			j := i - lag
			if j < 0 || j >= lb {
				continue
			}
			bj := b[j]
			sum += a[i] * complex(real(bj), -imag(bj))
		}
		out[k] = sum
	}
	return out
}

func randComplex128(rng *rand.Rand, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

func randFloat64(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

var goldenSignal = []float64{5.12, 6.2136, 7.2387, 1.52312, 2.52313, 3.52313, 4.52313, 5.23871}

var goldenPattern = []float64{0.31421, 0.421, 0.653, 0.121}

var goldenFull = []float64{
	0.61952, 4.0952056, 7.0888835, 9.13584942, 6.299764046, 4.989608067,
	4.388719885, 5.8635182073, 6.4321180373, 3.6267095873, 1.6460550691,
}
