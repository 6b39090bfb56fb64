//go:build amd64 && !purego

package correlate

// Register the amd64 SIMD spectrum-multiply kernels.
import (
	_ "github.com/cwbudde/algo-correlate/internal/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-correlate/internal/arch/amd64/sse2"
)
