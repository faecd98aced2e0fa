// Package vmath provides the small amount of 2D geometry the simulation needs:
// axis-aligned box tests, clamping and normalized direction vectors.
package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
