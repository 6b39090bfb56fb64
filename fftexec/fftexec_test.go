package fftexec

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestForwardInverseRoundTrip64(t *testing.T) {
	const n = 16

	fwd, err := NewForward64(n)
	if err != nil {
		t.Fatalf("NewForward64: %v", err)
	}
	inv, err := NewInverse64(n)
	if err != nil {
		t.Fatalf("NewInverse64: %v", err)
	}
	if fwd.Length() != n || inv.Length() != n {
		t.Fatalf("Length() = %d/%d, expected %d", fwd.Length(), inv.Length(), n)
	}

	// The executor pair is un-normalized: forward then inverse scales by N.
	data := make([]complex128, n)
	data[0] = 1
	data[3] = complex(0.5, -0.25)

	orig := append([]complex128(nil), data...)

	if err := fwd.Process(data); err != nil {
		t.Fatalf("forward Process: %v", err)
	}
	if err := inv.Process(data); err != nil {
		t.Fatalf("inverse Process: %v", err)
	}

	for i := range data {
		want := orig[i] * complex(float64(n), 0)
		if cmplx.Abs(data[i]-want) > 1e-9 {
			t.Errorf("data[%d] = %v, expected %v", i, data[i], want)
		}
	}
}

func TestForwardImpulse64(t *testing.T) {
	const n = 8

	fwd, err := NewForward64(n)
	if err != nil {
		t.Fatalf("NewForward64: %v", err)
	}

	data := make([]complex128, n)
	data[0] = 1
	if err := fwd.Process(data); err != nil {
		t.Fatalf("Process: %v", err)
	}

	for i, v := range data {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Errorf("data[%d] = %v, expected 1", i, v)
		}
	}
}

func TestRoundTrip32(t *testing.T) {
	const n = 32

	fwd, err := NewForward32(n)
	if err != nil {
		t.Fatalf("NewForward32: %v", err)
	}
	inv, err := NewInverse32(n)
	if err != nil {
		t.Fatalf("NewInverse32: %v", err)
	}

	data := make([]complex64, n)
	for i := range data {
		data[i] = complex(float32(i)/n, -float32(i)/(2*n))
	}
	orig := append([]complex64(nil), data...)

	if err := fwd.Process(data); err != nil {
		t.Fatalf("forward Process: %v", err)
	}
	if err := inv.Process(data); err != nil {
		t.Fatalf("inverse Process: %v", err)
	}

	for i := range data {
		want := orig[i] * complex(float32(n), 0)
		d := data[i] - want
		if math.Hypot(float64(real(d)), float64(imag(d))) > 1e-2 {
			t.Errorf("data[%d] = %v, expected %v", i, data[i], want)
		}
	}
}

func TestProcessLengthMismatch(t *testing.T) {
	fwd, err := NewForward64(16)
	if err != nil {
		t.Fatalf("NewForward64: %v", err)
	}

	if err := fwd.Process(make([]complex128, 8)); !errors.Is(err, ErrBufferLength) {
		t.Errorf("err = %v, expected ErrBufferLength", err)
	}
}
