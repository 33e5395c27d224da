package tankcad

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
	// tolerance below which values are considered equal.
	tolerance = 1e-9
	// epsilon guards divisions near machine noise.
	epsilon = 1e-12
)

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b.
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Mix does a linear interpolation from x to y, a = [0,1].
func Mix(x, y, a float64) float64 {
	return x + (a * (y - x))
}
