package level

import "math"

// Channel holds the level of one channel.
//
//nolint:revive
type Channel struct {
	DC      float64 // mean
	RMS     float64
	RMS_dB  float64
	Peak    float64 // max |x|
	Peak_dB float64
	Crest   float64 // peak / RMS (linear)
}

// Image holds the level of both channels and how they relate.
type Image struct {
	Length int
	Left   Channel
	Right  Channel

	Mid  Channel // (L + R) / 2
	Side Channel // (L - R) / 2

	// Correlation is the normalized cross-correlation in [-1, 1]:
	// 1 for identical channels, -1 for inverted, 0 if either is silent.
	Correlation float64

	// Balance is (rightRMS - leftRMS) / max(leftRMS, rightRMS) in [-1, 1];
	// negative leans left. It is 0 for silence.
	Balance float64
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}

type accumulator struct {
	sum   float64
	sumSq float64
	peak  float64
}

func (a *accumulator) add(x float64) {
	a.sum += x
	a.sumSq += x * x
	if ax := math.Abs(x); ax > a.peak {
		a.peak = ax
	}
}

func (a *accumulator) channel(n int) Channel {
	if n == 0 {
		return Channel{RMS_dB: math.Inf(-1), Peak_dB: math.Inf(-1)}
	}
	rms := math.Sqrt(a.sumSq / float64(n))
	c := Channel{
		DC:      a.sum / float64(n),
		RMS:     rms,
		RMS_dB:  ampTodB(rms),
		Peak:    a.peak,
		Peak_dB: ampTodB(a.peak),
	}
	if rms > 0 {
		c.Crest = a.peak / rms
	}
	return c
}

// Measure computes the stereo image of left and right over their common
// length.
func Measure(left, right []float64) Image {
	n := min(len(left), len(right))

	var l, r, mid, side accumulator
	var cross float64
	for i := range n {
		x, y := left[i], right[i]
		l.add(x)
		r.add(y)
		mid.add((x + y) / 2)
		side.add((x - y) / 2)
		cross += x * y
	}

	img := Image{
		Length: n,
		Left:   l.channel(n),
		Right:  r.channel(n),
		Mid:    mid.channel(n),
		Side:   side.channel(n),
	}

	if den := math.Sqrt(l.sumSq * r.sumSq); den > 0 {
		img.Correlation = max(-1, min(1, cross/den))
	}
	if loud := max(img.Left.RMS, img.Right.RMS); loud > 0 {
		img.Balance = (img.Right.RMS - img.Left.RMS) / loud
	}
	return img
}

// Analyze computes the level of a single channel.
func Analyze(x []float64) Channel {
	var a accumulator
	for _, v := range x {
		a.add(v)
	}
	return a.channel(len(x))
}
