package pan

import (
	"math"

	"github.com/cwbudde/algo-stereoviz/dsp/core"
	"github.com/cwbudde/algo-stereoviz/dsp/spectrum"
)

// Source is the renderable state of one frequency bin.
type Source struct {
	Amplitude float64
	Direction float64
}

// Estimator owns the smoothed per-bin energy of both channels.
//
// The state persists across updates and is only cleared by Reset.
type Estimator struct {
	cfg config

	leftRev  []float64
	rightRev []float64

	// scratch for ModeModulus
	leftAmp  []float64
	rightAmp []float64
}

// NewEstimator creates an estimator for bins frequency bins.
func NewEstimator(bins int, opts ...Option) *Estimator {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if bins < 0 {
		bins = 0
	}

	e := &Estimator{
		cfg:      cfg,
		leftRev:  make([]float64, bins),
		rightRev: make([]float64, bins),
	}
	if cfg.mode == ModeModulus {
		e.leftAmp = make([]float64, bins)
		e.rightAmp = make([]float64, bins)
	}
	return e
}

// Bins returns the number of bins tracked.
func (e *Estimator) Bins() int {
	return len(e.leftRev)
}

// Mode returns the configured energy mode.
func (e *Estimator) Mode() Mode {
	return e.cfg.mode
}

// Update advances the smoothing with one pair of spectra and writes the
// resulting sources into dst.
//
// left and right must hold at least Bins() values and dst exactly Bins().
func (e *Estimator) Update(left, right []complex128, dst []Source) {
	if e.cfg.mode == ModeModulus {
		spectrum.MagnitudeInto(e.leftAmp, left)
		spectrum.MagnitudeInto(e.rightAmp, right)
	}

	step := e.cfg.smoothing
	floor := e.cfg.floor

	for i := range e.leftRev {
		var leftAmp, rightAmp float64
		if e.cfg.mode == ModeModulus {
			leftAmp, rightAmp = e.leftAmp[i], e.rightAmp[i]
		} else {
			leftAmp = math.Abs(real(left[i]))
			rightAmp = math.Abs(real(right[i]))
		}

		e.leftRev[i] += (leftAmp - e.leftRev[i]) * step
		e.rightRev[i] += (rightAmp - e.rightRev[i]) * step

		amp := math.Max(e.leftRev[i], e.rightRev[i])
		dst[i] = Source{
			Amplitude: amp,
			Direction: (e.rightRev[i] - e.leftRev[i]) / math.Max(amp, floor),
		}
	}
}

// Reset clears the smoothed energy of both channels.
func (e *Estimator) Reset() {
	core.Zero(e.leftRev)
	core.Zero(e.rightRev)
}

// State returns the smoothed energy of both channels. The slices are owned by
// the estimator and must not be modified.
func (e *Estimator) State() (left, right []float64) {
	return e.leftRev, e.rightRev
}
