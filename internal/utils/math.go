// internal/utils/math.go
package utils

import "math"

// Lerp performs linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOut is the quadratic ease-out curve used for particles and the glow bar.
func EaseOut(t float64) float64 {
	t = Clamp01(t)
	return t * (2 - t)
}
