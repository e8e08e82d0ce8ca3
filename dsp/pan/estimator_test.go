package pan

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-stereoviz/internal/testutil"
)

func constSpectrum(n int, v complex128) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestUpdateClosedFormConvergence(t *testing.T) {
	const (
		bins = 4
		m    = 250.0
	)

	e := NewEstimator(bins)
	left := constSpectrum(2*bins, complex(m, 0))
	right := constSpectrum(2*bins, complex(-m, 0))
	dst := make([]Source, bins)

	prev := 0.0
	for k := 1; k <= 12; k++ {
		e.Update(left, right, dst)

		lrev, rrev := e.State()
		want := m * (1 - math.Pow(0.1, float64(k)))
		if math.Abs(lrev[0]-want) > 1e-9*m {
			t.Fatalf("k=%d: leftRev = %v, want %v", k, lrev[0], want)
		}
		if math.Abs(rrev[0]-want) > 1e-9*m {
			t.Fatalf("k=%d: rightRev = %v, want %v", k, rrev[0], want)
		}
		if lrev[0] < prev || lrev[0] > m {
			t.Fatalf("k=%d: leftRev = %v not monotonic toward %v (prev %v)", k, lrev[0], m, prev)
		}
		prev = lrev[0]
	}
}

func TestUpdateSilenceIsStable(t *testing.T) {
	e := NewEstimator(8)
	zero := make([]complex128, 16)
	dst := make([]Source, 8)

	for range 100 {
		e.Update(zero, zero, dst)
	}

	for i, s := range dst {
		if s.Amplitude != 0 || s.Direction != 0 {
			t.Fatalf("dst[%d] = %+v, want zero source", i, s)
		}
		if math.IsNaN(s.Direction) || math.IsInf(s.Direction, 0) {
			t.Fatalf("dst[%d] direction not finite: %v", i, s.Direction)
		}
	}
}

func TestUpdateDirection(t *testing.T) {
	tests := []struct {
		name    string
		left    complex128
		right   complex128
		wantAmp float64
		wantDir float64
	}{
		{name: "loud right", left: 0, right: 100, wantAmp: 90, wantDir: 1},
		{name: "loud left", left: -100, right: 0, wantAmp: 90, wantDir: -1},
		{name: "centered", left: 40, right: -40, wantAmp: 36, wantDir: 0},
		{name: "quiet right is damped", left: 0, right: 0.5, wantAmp: 0.45, wantDir: 0.45},
		{name: "imaginary part ignored", left: 10 + 500i, right: 10 - 500i, wantAmp: 9, wantDir: 0},
		{name: "partial lean", left: 20, right: 60, wantAmp: 54, wantDir: 36.0 / 54.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEstimator(1)
			dst := make([]Source, 1)

			e.Update([]complex128{tt.left, 0}, []complex128{tt.right, 0}, dst)

			if math.Abs(dst[0].Amplitude-tt.wantAmp) > 1e-12 {
				t.Fatalf("Amplitude = %v, want %v", dst[0].Amplitude, tt.wantAmp)
			}
			if math.Abs(dst[0].Direction-tt.wantDir) > 1e-12 {
				t.Fatalf("Direction = %v, want %v", dst[0].Direction, tt.wantDir)
			}
		})
	}
}

func TestUpdateIdenticalChannelsCentered(t *testing.T) {
	const bins = 64

	sig := testutil.DeterministicNoise(5, 300, 2*bins)
	spec := make([]complex128, len(sig))
	for i, v := range sig {
		spec[i] = complex(v, v/3)
	}

	e := NewEstimator(bins)
	dst := make([]Source, bins)
	for range 20 {
		e.Update(spec, spec, dst)
	}

	for i, s := range dst {
		if s.Direction != 0 {
			t.Fatalf("dst[%d].Direction = %v, want 0", i, s.Direction)
		}
	}
}

func TestModulusMode(t *testing.T) {
	e := NewEstimator(2, WithMode(ModeModulus))
	if e.Mode() != ModeModulus {
		t.Fatalf("Mode() = %v, want %v", e.Mode(), ModeModulus)
	}

	dst := make([]Source, 2)
	e.Update([]complex128{3 + 4i, 0, 9, 9}, []complex128{0, 6 - 8i, 9, 9}, dst)

	if math.Abs(dst[0].Amplitude-4.5) > 1e-12 || math.Abs(dst[0].Direction+1) > 1e-12 {
		t.Fatalf("dst[0] = %+v, want {4.5 -1}", dst[0])
	}
	if math.Abs(dst[1].Amplitude-9) > 1e-12 || math.Abs(dst[1].Direction-1) > 1e-12 {
		t.Fatalf("dst[1] = %+v, want {9 1}", dst[1])
	}
}

func TestOptions(t *testing.T) {
	e := NewEstimator(1, WithSmoothing(0.5), WithFloor(10), nil)
	dst := make([]Source, 1)
	e.Update([]complex128{0}, []complex128{8}, dst)

	// rightRev = 4, divisor = max(4, 10)
	if dst[0].Amplitude != 4 || dst[0].Direction != 0.4 {
		t.Fatalf("dst[0] = %+v, want {4 0.4}", dst[0])
	}

	ignored := NewEstimator(1, WithSmoothing(0), WithSmoothing(1.5), WithFloor(-1), WithMode(Mode(42)))
	if ignored.cfg != defaultConfig() {
		t.Fatalf("invalid options changed config: %+v", ignored.cfg)
	}
}

func TestReset(t *testing.T) {
	e := NewEstimator(3)
	dst := make([]Source, 3)
	e.Update(constSpectrum(6, 5), constSpectrum(6, 7), dst)

	e.Reset()

	left, right := e.State()
	testutil.RequireSliceNearlyEqual(t, left, []float64{0, 0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, right, []float64{0, 0, 0}, 0)
}

func TestModeString(t *testing.T) {
	if ModeRealPart.String() != "real" || ModeModulus.String() != "modulus" || Mode(9).String() != "unknown" {
		t.Fatal("unexpected Mode strings")
	}
}

func BenchmarkUpdate(b *testing.B) {
	const bins = 512

	left := make([]complex128, 2*bins)
	right := make([]complex128, 2*bins)
	for i := range left {
		left[i] = complex(float64(i%17), 1)
		right[i] = complex(float64(i%5), -1)
	}
	e := NewEstimator(bins)
	dst := make([]Source, bins)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		e.Update(left, right, dst)
	}
}
