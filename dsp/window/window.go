package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var names = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

// cosine-sum coefficients a0 - a1 cos(x) + a2 cos(2x)
var terms = map[Type][3]float64{
	TypeRectangular: {1, 0, 0},
	TypeHann:        {0.5, 0.5, 0},
	TypeHamming:     {0.54, 0.46, 0},
	TypeBlackman:    {0.42, 0.5, 0.08},
}

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a case-insensitive name to a Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return TypeRectangular, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Generate returns the periodic form of t with the given length.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	a, ok := terms[t]
	if !ok {
		a = terms[TypeRectangular]
	}

	out := make([]float64, length)
	step := 2 * math.Pi / float64(length)
	for i := range out {
		x := step * float64(i)
		out[i] = a[0] - a[1]*math.Cos(x) + a[2]*math.Cos(2*x)
	}
	return out
}

// ApplyTo writes samples*coeffs into dst. All three must have the same length.
func ApplyTo(dst, samples, coeffs []float64) error {
	if len(samples) != len(coeffs) || len(dst) != len(coeffs) {
		return fmt.Errorf("window: length mismatch: dst %d, samples %d, coeffs %d", len(dst), len(samples), len(coeffs))
	}
	vecmath.MulBlock(dst, samples, coeffs)
	return nil
}

// CoherentGain returns the mean of coeffs: the amplitude factor a window
// applies to a bin-centred sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs)), nil
}
