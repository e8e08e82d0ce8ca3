package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// FloorByte floors x and saturates it to the uint8 range.
// NaN maps to 0.
func FloorByte(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(math.Floor(x))
}
