package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-stereoviz/internal/testutil"
)

func naiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for i, v := range x {
			phi := -2 * math.Pi * float64(k*i) / float64(n)
			sum += complex(v, 0) * cmplx.Rect(1, phi)
		}
		out[k] = sum
	}
	return out
}

func TestNewAnalyzerSizes(t *testing.T) {
	tests := []struct {
		size    int
		wantErr bool
	}{
		{size: 1024},
		{size: 64},
		{size: 2},
		{size: 0, wantErr: true},
		{size: 1, wantErr: true},
		{size: 1000, wantErr: true},
		{size: -8, wantErr: true},
	}

	for _, tt := range tests {
		a, err := NewAnalyzer(tt.size)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("NewAnalyzer(%d) expected error", tt.size)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewAnalyzer(%d) error = %v", tt.size, err)
		}
		if a.Size() != tt.size || a.Bins() != tt.size/2 {
			t.Fatalf("Size()=%d Bins()=%d for size %d", a.Size(), a.Bins(), tt.size)
		}
	}
}

func TestForwardMatchesDFT(t *testing.T) {
	const n = 64

	a, err := NewAnalyzer(n)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	in := testutil.DeterministicNoise(7, 1, n)
	got := make([]complex128, n)
	if err := a.Forward(got, in); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	want := naiveDFT(in)
	for k := range want {
		if cmplx.Abs(got[k]-want[k]) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, got[k], want[k])
		}
	}
}

func TestForwardIsUnnormalized(t *testing.T) {
	a, err := NewAnalyzer(FFTSize)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	dst := make([]complex128, FFTSize)
	if err := a.Forward(dst, testutil.DC(1, FFTSize)); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	if math.Abs(real(dst[0])-FFTSize) > 1e-9 || math.Abs(imag(dst[0])) > 1e-9 {
		t.Fatalf("dst[0] = %v, want %d", dst[0], FFTSize)
	}

	for k := 1; k < FFTSize; k++ {
		if cmplx.Abs(dst[k]) > 1e-9 {
			t.Fatalf("dst[%d] = %v, want 0", k, dst[k])
		}
	}
}

func TestForwardDeterministic(t *testing.T) {
	a, err := NewAnalyzer(FFTSize)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	in := testutil.DeterministicSine(1000, 44100, 0.8, FFTSize)
	first := make([]complex128, FFTSize)
	second := make([]complex128, FFTSize)

	if err := a.Forward(first, in); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	// Run something different in between to dirty the scratch buffer.
	if err := a.Forward(second, testutil.DeterministicNoise(3, 1, FFTSize)); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if err := a.Forward(second, in); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	for k := range first {
		if first[k] != second[k] {
			t.Fatalf("bin %d differs between calls: %v vs %v", k, first[k], second[k])
		}
	}
}

func TestForwardDoesNotModifyWindow(t *testing.T) {
	a, err := NewAnalyzer(16)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	in := testutil.DeterministicNoise(11, 1, 16)
	orig := append([]float64(nil), in...)

	if err := a.Forward(make([]complex128, 16), in); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, in, orig, 0)
}

func TestForwardSizeMismatch(t *testing.T) {
	a, err := NewAnalyzer(16)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	err = a.Forward(make([]complex128, 8), make([]float64, 16))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Forward() error = %v, want ErrSizeMismatch", err)
	}

	err = a.Forward(make([]complex128, 16), make([]float64, 15))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Forward() error = %v, want ErrSizeMismatch", err)
	}
}
