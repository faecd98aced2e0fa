package vmath

import "github.com/lixenwraith/gunslinger/core"

// AreaIntersects reports whether two boxes overlap
// Boxes intersect iff their projections overlap on both axes; touching edges do not count
// Empty boxes never intersect anything
func AreaIntersects(a, b core.Area) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// AreaContains reports whether cell (x, y) falls inside a, right and bottom edges excluded
func AreaContains(a core.Area, x, y int) bool {
	return x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom()
}

// AreaCenter returns the center point of the area in float precision
func AreaCenter(a core.Area) (float64, float64) {
	return float64(a.X) + float64(a.Width)/2, float64(a.Y) + float64(a.Height)/2
}

// AreaCenterDistance returns the distance between the centers of two areas
func AreaCenterDistance(a, b core.Area) float64 {
	ax, ay := AreaCenter(a)
	bx, by := AreaCenter(b)
	return Magnitude(bx-ax, by-ay)
}

// AreaOutside reports whether the area lies entirely outside the field grown by margin
// Field is anchored at the origin
func AreaOutside(a core.Area, fieldW, fieldH, margin int) bool {
	return a.X < -margin || a.X > fieldW+margin ||
		a.Y < -margin || a.Y > fieldH+margin
}
