// Package fftexec provides FFT executors backed by algo-fft plans, suitable
// for the correlation engines in the parent package.
//
// The adapters present the un-normalized transform convention the engines
// expect: forward then inverse reproduces the input scaled by N. algo-fft's
// inverse applies 1/N itself, so the inverse adapter undoes that factor.
//
// Executors allocate a scratch copy per call and hold no other mutable
// state, but the underlying plans keep internal workspaces; create one
// executor pair per goroutine for concurrent use.
package fftexec

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrBufferLength reports a Process buffer whose length differs from the
// planned transform length.
var ErrBufferLength = errors.New("fftexec: buffer length does not match transform length")

type direction int

const (
	forward direction = iota
	inverse
)

type plan64 interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

type plan32 interface {
	Forward(dst, src []complex64) error
	Inverse(dst, src []complex64) error
}

// Executor64 runs double-precision transforms of a fixed length in one
// direction.
type Executor64 struct {
	n    int
	dir  direction
	plan plan64
}

// NewForward64 plans a forward double-precision transform of length n.
func NewForward64(n int) (*Executor64, error) {
	return newExecutor64(n, forward)
}

// NewInverse64 plans an un-normalized inverse double-precision transform of
// length n.
func NewInverse64(n int) (*Executor64, error) {
	return newExecutor64(n, inverse)
}

func newExecutor64(n int, dir direction) (*Executor64, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fftexec: planning length %d: %w", n, err)
	}
	return &Executor64{n: n, dir: dir, plan: plan}, nil
}

// Length returns the planned transform length.
func (e *Executor64) Length() int { return e.n }

// Process transforms inOut in place.
func (e *Executor64) Process(inOut []complex128) error {
	if len(inOut) != e.n {
		return fmt.Errorf("%w: got %d, want %d", ErrBufferLength, len(inOut), e.n)
	}

	src := make([]complex128, e.n)
	copy(src, inOut)

	if e.dir == forward {
		return e.plan.Forward(inOut, src)
	}
	if err := e.plan.Inverse(inOut, src); err != nil {
		return err
	}

	// The plan's inverse applies 1/N; undo it to keep the executor
	// un-normalized.
	scale := complex(float64(e.n), 0)
	for i := range inOut {
		inOut[i] *= scale
	}

	return nil
}

// Executor32 is the single-precision counterpart of Executor64.
type Executor32 struct {
	n    int
	dir  direction
	plan plan32
}

// NewForward32 plans a forward single-precision transform of length n.
func NewForward32(n int) (*Executor32, error) {
	return newExecutor32(n, forward)
}

// NewInverse32 plans an un-normalized inverse single-precision transform of
// length n.
func NewInverse32(n int) (*Executor32, error) {
	return newExecutor32(n, inverse)
}

func newExecutor32(n int, dir direction) (*Executor32, error) {
	plan, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, fmt.Errorf("fftexec: planning length %d: %w", n, err)
	}
	return &Executor32{n: n, dir: dir, plan: plan}, nil
}

// Length returns the planned transform length.
func (e *Executor32) Length() int { return e.n }

// Process transforms inOut in place.
func (e *Executor32) Process(inOut []complex64) error {
	if len(inOut) != e.n {
		return fmt.Errorf("%w: got %d, want %d", ErrBufferLength, len(inOut), e.n)
	}

	src := make([]complex64, e.n)
	copy(src, inOut)

	if e.dir == forward {
		return e.plan.Forward(inOut, src)
	}
	if err := e.plan.Inverse(inOut, src); err != nil {
		return err
	}

	scale := complex(float32(e.n), 0)
	for i := range inOut {
		inOut[i] *= scale
	}

	return nil
}
