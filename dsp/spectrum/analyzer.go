package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-stereoviz/dsp/core"
)

// FFTSize is the transform length used by the visualizer.
const FFTSize = 1024

// Analyzer runs a forward FFT of a fixed size over real-valued windows.
//
// It is not safe for concurrent use; the scratch buffer is reused between calls.
type Analyzer struct {
	size  int
	plan  *algofft.Plan[complex128]
	input []complex128
}

// NewAnalyzer creates an analyzer for power-of-two sizes.
func NewAnalyzer(size int) (*Analyzer, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	return &Analyzer{
		size:  size,
		plan:  plan,
		input: core.EnsureComplexLen(nil, size),
	}, nil
}

// Size returns the transform length.
func (a *Analyzer) Size() int {
	return a.size
}

// Bins returns the number of non-mirrored bins, Size()/2.
func (a *Analyzer) Bins() int {
	return a.size / 2
}

// Forward transforms window into dst. Both must have length Size().
func (a *Analyzer) Forward(dst []complex128, window []float64) error {
	if len(dst) != a.size || len(window) != a.size {
		return fmt.Errorf("%w: dst=%d window=%d size=%d", ErrSizeMismatch, len(dst), len(window), a.size)
	}

	core.PromoteReal(a.input, window)

	if err := a.plan.Forward(dst, a.input); err != nil {
		return fmt.Errorf("spectrum: forward transform: %w", err)
	}

	return nil
}

// BinFrequency returns the center frequency in Hz of bin for a transform of
// the given size.
func BinFrequency(bin, size int, sampleRate float64) float64 {
	if size <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(size)
}
