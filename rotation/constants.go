package rotation

import "math"

// GimbalLockThreshold is the |sin| of the middle Euler angle at which two
// rotation axes are treated as aligned. At or above it the decomposition
// pins the trailing free angle to 0.
const GimbalLockThreshold = 0.99999

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// clampUnit keeps an asin argument inside [-1, 1]; rounding at exactly
// ±90° otherwise yields NaN.
func clampUnit(s float64) float64 {
	return math.Max(-1, math.Min(s, 1))
}
