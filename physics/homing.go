package physics

import (
	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/vmath"
)

// Pursue advances an enemy by speed along the normalized vector to the target
// A coincident target leaves the enemy in place. Obstacles are ignored, an enemy may stall
// against one indefinitely
// Returns true if the enemy moved
func Pursue(e *component.Enemy, targetX, targetY, speed float64) bool {
	nx, ny, ok := vmath.Normalize2D(targetX-e.X, targetY-e.Y)
	if !ok {
		return false
	}
	e.X += nx * speed
	e.Y += ny * speed
	return true
}
