package component

import (
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
)

// Enemy is a pursuing bandit
// Position is kept in float precision for sub-pixel pursuit
type Enemy struct {
	X, Y  float64
	Alive bool
}

// NewEnemy creates a live enemy at (x, y)
func NewEnemy(x, y float64) *Enemy {
	return &Enemy{X: x, Y: y, Alive: true}
}

// Kill marks the enemy dead; it is purged at the end of the tick
func (e *Enemy) Kill() {
	e.Alive = false
}

// Bounds returns the bounding box at the truncated integer position
func (e *Enemy) Bounds() core.Area {
	return core.Area{X: int(e.X), Y: int(e.Y), Width: constants.EnemySize, Height: constants.EnemySize}
}
