package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PCM16 quantizes normalized samples to signed 16-bit PCM, saturating
// values outside [-1, 1].
func PCM16(x []float64) []int16 {
	out := make([]int16, len(x))
	for i, v := range x {
		v = math.Round(v * math.MaxInt16)
		switch {
		case v > math.MaxInt16:
			v = math.MaxInt16
		case v < math.MinInt16:
			v = math.MinInt16
		}
		out[i] = int16(v)
	}
	return out
}

// InterleaveStereo builds interleaved stereo PCM (L, R, L, R, ...) from two
// normalized channels. The shorter channel determines the frame count.
func InterleaveStereo(left, right []float64) []int16 {
	n := min(len(left), len(right))
	l := PCM16(left[:n])
	r := PCM16(right[:n])

	out := make([]int16, 2*n)
	for i := 0; i < n; i++ {
		out[2*i] = l[i]
		out[2*i+1] = r[i]
	}
	return out
}
