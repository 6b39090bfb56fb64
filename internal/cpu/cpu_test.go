package cpu

import "testing"

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"forced generic blocks simd", Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, SIMDSSE2, false},
		{"forced generic allows scalar", Features{ForceGeneric: true}, SIMDNone, true},
		{"sse2", Features{HasSSE2: true}, SIMDSSE2, true},
		{"sse2 missing", Features{}, SIMDSSE2, false},
		{"avx2", Features{HasAVX2: true}, SIMDAVX2, true},
		{"avx not avx2", Features{HasAVX: true}, SIMDAVX2, false},
		{"avx512", Features{HasAVX512: true}, SIMDAVX512, true},
		{"neon", Features{HasNEON: true}, SIMDNEON, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %v) = %v, expected %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestForcedFeaturesOverrideDetection(t *testing.T) {
	defer ResetDetection()

	forced := Features{ForceGeneric: true, Architecture: "test"}
	SetForcedFeatures(forced)

	got := DetectFeatures()
	if !got.ForceGeneric || got.Architecture != "test" {
		t.Errorf("DetectFeatures after SetForcedFeatures = %+v", got)
	}

	ResetDetection()
	if DetectFeatures().Architecture == "test" {
		t.Error("ResetDetection did not clear the forced features")
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	defer ResetDetection()

	first := DetectFeatures()
	second := DetectFeatures()
	if first != second {
		t.Errorf("detection not stable: %+v vs %+v", first, second)
	}
}

func TestSIMDLevelString(t *testing.T) {
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "None"},
		{SIMDSSE2, "SSE2"},
		{SIMDAVX, "AVX"},
		{SIMDAVX2, "AVX2"},
		{SIMDAVX512, "AVX-512"},
		{SIMDNEON, "NEON"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("SIMDLevel(%d).String() = %q, expected %q", int(tt.level), got, tt.want)
		}
	}
}
