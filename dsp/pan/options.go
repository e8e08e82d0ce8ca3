package pan

// Mode selects how a bin's energy is read from its complex value.
type Mode int

const (
	// ModeRealPart uses |Re(X[k])|.
	ModeRealPart Mode = iota
	// ModeModulus uses |X[k]|.
	ModeModulus
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeRealPart:
		return "real"
	case ModeModulus:
		return "modulus"
	default:
		return "unknown"
	}
}

const (
	// DefaultSmoothing is the one-pole step toward the newest bin energy.
	DefaultSmoothing = 0.9
	// DefaultFloor is the smallest divisor used for the direction.
	DefaultFloor = 1.0
)

type config struct {
	smoothing float64
	floor     float64
	mode      Mode
}

func defaultConfig() config {
	return config{
		smoothing: DefaultSmoothing,
		floor:     DefaultFloor,
		mode:      ModeRealPart,
	}
}

// Option configures an Estimator.
type Option func(*config)

// WithSmoothing sets the one-pole step in (0, 1]. Other values are ignored.
func WithSmoothing(step float64) Option {
	return func(cfg *config) {
		if step > 0 && step <= 1 {
			cfg.smoothing = step
		}
	}
}

// WithFloor sets the minimum direction divisor. Non-positive values are ignored.
func WithFloor(floor float64) Option {
	return func(cfg *config) {
		if floor > 0 {
			cfg.floor = floor
		}
	}
}

// WithMode selects how bin energy is computed.
func WithMode(mode Mode) Option {
	return func(cfg *config) {
		switch mode {
		case ModeRealPart, ModeModulus:
			cfg.mode = mode
		}
	}
}
