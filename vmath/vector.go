package vmath

import "math"

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize2D returns the unit vector of (x, y)
// ok is false for a zero-length vector, in which case the result is (0, 0)
func Normalize2D(x, y float64) (nx, ny float64, ok bool) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0, false
	}
	return x / mag, y / mag, true
}

// Direction returns the velocity from (fromX, fromY) toward (toX, toY) scaled to speed
// ok is false when both points coincide
func Direction(fromX, fromY, toX, toY, speed float64) (vx, vy float64, ok bool) {
	nx, ny, ok := Normalize2D(toX-fromX, toY-fromY)
	if !ok {
		return 0, 0, false
	}
	return nx * speed, ny * speed, true
}
