package correlate

// Mode specifies the output window for correlation.
type Mode int

const (
	// ModeFull returns the full correlation result with length
	// len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns the central max(len(a), len(b)) values of the full
	// result.
	ModeSame

	// ModeValid returns only the portion where the signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// OutputSize returns the correlation output length for input lengths lenA
// and lenB.
func (m Mode) OutputSize(lenA, lenB int) int {
	switch m {
	case ModeValid:
		return max(lenA, lenB) - min(lenA, lenB) + 1
	case ModeSame:
		return max(lenA, lenB)
	default:
		return lenA + lenB - 1
	}
}

// FFTSize returns the transform length required for input lengths lenA and
// lenB. It is the same for every mode. Engines require their executors to
// have exactly this length; they validate but never re-plan the transform.
func (m Mode) FFTSize(lenA, lenB int) int {
	return lenA + lenB - 1
}

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return "unknown"
	}
}
