package core

// Area is an axis-aligned box in field units, anchored at its top-left corner
type Area struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right edge
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the exclusive bottom edge
func (a Area) Bottom() int {
	return a.Y + a.Height
}

// Empty reports whether the area has no extent on either axis
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}
