package component

import (
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
)

// Owner identifies who fired a projectile and therefore what it may hit
type Owner uint8

const (
	OwnerPlayer Owner = iota // Hits enemies
	OwnerEnemy               // Hits the player
)

// String returns the owner name
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Projectile is a constant-velocity shot
// Velocity is fixed at creation and not writable afterwards
type Projectile struct {
	X, Y   float64
	vx, vy float64

	Owner  Owner
	Active bool

	// HitObstacle records that the shot was stopped by an obstacle, not counted as a miss
	HitObstacle bool
}

// NewProjectile creates an active projectile
func NewProjectile(owner Owner, x, y, vx, vy float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		vx:     vx,
		vy:     vy,
		Owner:  owner,
		Active: true,
	}
}

// Velocity returns the per-tick displacement
func (p *Projectile) Velocity() (float64, float64) {
	return p.vx, p.vy
}

// Advance moves the projectile by one tick of velocity
func (p *Projectile) Advance() {
	p.X += p.vx
	p.Y += p.vy
}

// Retire deactivates the projectile; it is purged at the end of the tick
func (p *Projectile) Retire() {
	p.Active = false
}

// Bounds returns the bounding box at the truncated integer position
func (p *Projectile) Bounds() core.Area {
	return core.Area{X: int(p.X), Y: int(p.Y), Width: constants.ProjectileSize, Height: constants.ProjectileSize}
}
