package correlate

import "math"

// NextGoodFFTSize returns the smallest m >= n whose prime factors are all in
// {2, 3, 5}, computed as the minimum of the smallest powers of 2, 3 and 5
// that reach n. Lengths of at most 2 return 2. Near the top of the int range
// the candidates saturate instead of wrapping.
func NextGoodFFTSize(n int) int {
	if n <= 2 {
		return 2
	}

	best := math.MaxInt
	for _, base := range [...]int{2, 3, 5} {
		p := 1
		for p < n {
			if p > math.MaxInt/base {
				p = math.MaxInt
				break
			}
			p *= base
		}
		if p < best {
			best = p
		}
	}

	return best
}
