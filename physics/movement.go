// Package physics integrates entity positions for one tick.
// There is no physics response: contact is only detected, never resolved.
package physics

import (
	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/vmath"
)

// Field describes the play area anchored at the origin
type Field struct {
	Width, Height int

	// Margin extends the field for projectile exit tests
	Margin int
}

// MovePlayer applies a discrete (dx, dy) step to the player
// Each axis is clamped to the field independently, then the whole move is rejected if the
// resulting box overlaps any obstacle. No sliding along obstacle edges
// Returns true if the player position changed
func MovePlayer(p *component.Player, dx, dy int, field Field, obstacles []component.Obstacle) bool {
	box := p.Bounds()
	nextX := vmath.Clamp(p.X+dx, 0, field.Width-box.Width)
	nextY := vmath.Clamp(p.Y+dy, 0, field.Height-box.Height)

	if nextX == p.X && nextY == p.Y {
		return false
	}

	next := component.BoundsAt(nextX, nextY)
	for _, o := range obstacles {
		if vmath.AreaIntersects(next, o.Bounds()) {
			return false
		}
	}

	p.X, p.Y = nextX, nextY
	return true
}
