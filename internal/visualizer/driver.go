package visualizer

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stereoviz/dsp/core"
	"github.com/cwbudde/algo-stereoviz/dsp/pan"
	"github.com/cwbudde/algo-stereoviz/dsp/spectrum"
	"github.com/cwbudde/algo-stereoviz/dsp/window"
)

// Clock reports the playback transport state the driver follows.
type Clock interface {
	IsPlaying() bool
	Elapsed() time.Duration
}

// Track is the loaded audio the driver windows into.
type Track interface {
	SampleRate() int
	Channels() (left, right []float64)
}

// State is the outcome of one tick.
type State int

const (
	// StateIdle means no analysis ran and the sources were left untouched.
	StateIdle State = iota
	// StateAnalyzing means the sources were updated from the current window.
	StateAnalyzing
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	default:
		return "unknown"
	}
}

// Driver owns the analysis buffers and the smoothed per-bin state.
type Driver struct {
	analyzer  *spectrum.Analyzer
	estimator *pan.Estimator
	log       logrus.FieldLogger

	sampleRate float64
	left       []float64
	right      []float64
	offset     int
	analyzed   bool

	window  []float64
	scratch []float64

	leftSpec  []complex128
	rightSpec []complex128
	sources   []pan.Source

	state State
}

// New creates a driver around a shared analyzer. The analyzer size fixes the
// window length and the number of published sources (Size()/2).
func New(analyzer *spectrum.Analyzer, opts ...Option) *Driver {
	cfg := applyOptions(opts)

	n := analyzer.Size()
	d := &Driver{
		analyzer:  analyzer,
		estimator: pan.NewEstimator(analyzer.Bins(), cfg.estimator...),
		log:       cfg.log,
		leftSpec:  core.EnsureComplexLen(nil, n),
		rightSpec: core.EnsureComplexLen(nil, n),
		sources:   make([]pan.Source, analyzer.Bins()),
	}

	switch {
	case cfg.window == nil:
	case len(cfg.window) != n:
		d.log.WithFields(logrus.Fields{
			"window": len(cfg.window),
			"size":   n,
		}).Warn("analysis window length mismatch, using raw samples")
	default:
		d.window = cfg.window
		d.scratch = core.EnsureLen(d.scratch, n)
	}
	return d
}

// Load replaces the channel buffers. The smoothed state is kept.
func (d *Driver) Load(track Track) {
	d.left, d.right = track.Channels()
	d.sampleRate = float64(track.SampleRate())
	d.analyzed = false

	d.log.WithFields(logrus.Fields{
		"sampleRate": track.SampleRate(),
		"left":       len(d.left),
		"right":      len(d.right),
	}).Debug("visualizer track loaded")
}

// Tick runs one frame against clock.
func (d *Driver) Tick(clock Clock) (State, error) {
	if clock == nil || !clock.IsPlaying() {
		return d.settle(StateIdle), nil
	}
	return d.AnalyzeAt(clock.Elapsed())
}

// AnalyzeAt runs one frame as if playback were active at elapsed.
func (d *Driver) AnalyzeAt(elapsed time.Duration) (State, error) {
	offset, ok := d.windowOffset(elapsed)
	if !ok {
		return d.settle(StateIdle), nil
	}

	n := d.analyzer.Size()
	if err := d.transform(d.leftSpec, d.left[offset:offset+n]); err != nil {
		return d.settle(StateIdle), err
	}
	if err := d.transform(d.rightSpec, d.right[offset:offset+n]); err != nil {
		return d.settle(StateIdle), err
	}

	d.estimator.Update(d.leftSpec, d.rightSpec, d.sources)
	d.offset, d.analyzed = offset, true

	return d.settle(StateAnalyzing), nil
}

func (d *Driver) transform(dst []complex128, samples []float64) error {
	if d.window == nil {
		return d.analyzer.Forward(dst, samples)
	}
	if err := window.ApplyTo(d.scratch, samples, d.window); err != nil {
		return err
	}
	return d.analyzer.Forward(dst, d.scratch)
}

// windowOffset returns the first sample of the window for elapsed and whether
// the window fits inside both channels.
func (d *Driver) windowOffset(elapsed time.Duration) (int, bool) {
	if d.sampleRate <= 0 || elapsed < 0 {
		return 0, false
	}

	pos := math.Floor(elapsed.Seconds() * d.sampleRate)
	n := d.analyzer.Size()
	if pos > float64(len(d.left)-n) || pos > float64(len(d.right)-n) {
		return 0, false
	}
	return int(pos), true
}

func (d *Driver) settle(next State) State {
	if next != d.state {
		d.log.WithFields(logrus.Fields{
			"from": d.state,
			"to":   next,
		}).Debug("visualizer state changed")
		d.state = next
	}
	return next
}

// State returns the outcome of the most recent tick.
func (d *Driver) State() State {
	return d.state
}

// Sources returns the published per-bin sources. The slice is owned by the
// driver and is updated in place by analyzing ticks.
func (d *Driver) Sources() []pan.Source {
	return d.sources
}

// Window returns the samples of the most recent analyzed window of the
// current track. ok is false until a tick has analyzed it.
func (d *Driver) Window() (left, right []float64, ok bool) {
	if !d.analyzed {
		return nil, nil, false
	}
	n := d.analyzer.Size()
	return d.left[d.offset : d.offset+n], d.right[d.offset : d.offset+n], true
}
