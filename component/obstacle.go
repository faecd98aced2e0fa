package component

import "github.com/lixenwraith/gunslinger/core"

// Obstacle is a static rock blocking movement and projectiles
// Immutable after creation: the box is only reachable through accessors
type Obstacle struct {
	area core.Area
}

// NewObstacle creates an obstacle occupying the given box
func NewObstacle(x, y, width, height int) Obstacle {
	return Obstacle{area: core.Area{X: x, Y: y, Width: width, Height: height}}
}

// Bounds returns the obstacle box
func (o Obstacle) Bounds() core.Area {
	return o.area
}

func (o Obstacle) X() int      { return o.area.X }
func (o Obstacle) Y() int      { return o.area.Y }
func (o Obstacle) Width() int  { return o.area.Width }
func (o Obstacle) Height() int { return o.area.Height }
