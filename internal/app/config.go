package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stereoviz/dsp/pan"
	"github.com/cwbudde/algo-stereoviz/internal/render"
)

const (
	// DefaultPath is loaded when no file is given on the command line.
	DefaultPath = "sound.mp3"
	// DefaultVolume is the initial playback gain.
	DefaultVolume = 0.4
	// Title is the window title.
	Title = "Stereo Visualizer"
)

// Config describes one visualizer session.
type Config struct {
	Path      string
	Volume    float64
	Layout    render.Layout
	Log       logrus.FieldLogger
	Estimator []pan.Option
}

// Option configures a Config.
type Option func(*Config)

// WithVolume sets the playback gain, clamped by the output to [0, 1].
func WithVolume(volume float64) Option {
	return func(c *Config) {
		if volume >= 0 && volume <= 1 {
			c.Volume = volume
		}
	}
}

// WithLayout replaces the canvas layout.
func WithLayout(layout render.Layout) Option {
	return func(c *Config) {
		c.Layout = layout
	}
}

// WithLogger sets the session logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Config) {
		if log != nil {
			c.Log = log
		}
	}
}

// WithEstimatorOptions forwards options to the directional estimator.
func WithEstimatorOptions(opts ...pan.Option) Option {
	return func(c *Config) {
		c.Estimator = append(c.Estimator, opts...)
	}
}

// NewConfig returns the configuration for path. An empty path selects
// DefaultPath.
func NewConfig(path string, opts ...Option) Config {
	if path == "" {
		path = DefaultPath
	}
	cfg := Config{
		Path:   path,
		Volume: DefaultVolume,
		Layout: render.DefaultLayout(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Log == nil {
		cfg.Log = discardLogger()
	}
	return cfg
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
