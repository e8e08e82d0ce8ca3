package visualizer

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stereoviz/dsp/pan"
)

type config struct {
	log       logrus.FieldLogger
	estimator []pan.Option
	window    []float64
}

// Option configures a Driver.
type Option func(*config)

// WithLogger sets the logger used for load and state-change messages.
func WithLogger(log logrus.FieldLogger) Option {
	return func(cfg *config) {
		if log != nil {
			cfg.log = log
		}
	}
}

// WithEstimatorOptions forwards options to the directional estimator.
func WithEstimatorOptions(opts ...pan.Option) Option {
	return func(cfg *config) {
		cfg.estimator = append(cfg.estimator, opts...)
	}
}

// WithWindow tapers each analysis window by coeffs before the transform.
// coeffs must match the analyzer size; without it the raw samples are used.
func WithWindow(coeffs []float64) Option {
	return func(cfg *config) {
		cfg.window = append([]float64(nil), coeffs...)
	}
}

func applyOptions(opts []Option) config {
	cfg := config{log: discardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
