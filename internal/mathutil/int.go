package mathutil

import "math"

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FloorInt floors a float toward negative infinity (search: tile-math).
// Non-finite input maps to math.MinInt so callers land outside any grid.
func FloorInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.MinInt
	}
	return int(math.Floor(v))
}

// Frac returns v - floor(v), always in [0, 1) (search: tile-math).
func Frac(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}

// WrapAngle maps an angle in radians into [0, 2π) (search: angle-math).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// Clamp limits v to [lo, hi] (search: int-math).
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
