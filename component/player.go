// Package component holds the plain data records of the simulation.
// Records carry only simple state transitions; rules live in the system package.
package component

import (
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
)

// PlayerLimits configures the stat caps and starting ammo of a new player
type PlayerLimits struct {
	MaxHealth int
	MaxAmmo   int
	StartAmmo int
}

// DefaultPlayerLimits returns the stock caps
func DefaultPlayerLimits() PlayerLimits {
	return PlayerLimits{
		MaxHealth: constants.MaxHealth,
		MaxAmmo:   constants.MaxAmmo,
		StartAmmo: constants.StartAmmo,
	}
}

// Player is the single player-controlled entity of a session
// Health and Ammo stay within [0, Max]; Score never decreases
type Player struct {
	X, Y int

	Health    int
	MaxHealth int
	Ammo      int
	MaxAmmo   int
	Score     int

	Username string
}

// NewPlayer creates a player at full health with the configured starting ammo
func NewPlayer(x, y int, username string, limits PlayerLimits) *Player {
	p := &Player{
		X:         x,
		Y:         y,
		Health:    limits.MaxHealth,
		MaxHealth: limits.MaxHealth,
		MaxAmmo:   limits.MaxAmmo,
		Username:  username,
	}
	p.AddAmmo(limits.StartAmmo)
	return p
}

// Bounds returns the player's bounding box
func (p *Player) Bounds() core.Area {
	return BoundsAt(p.X, p.Y)
}

// BoundsAt returns the box the player would occupy at (x, y)
func BoundsAt(x, y int) core.Area {
	return core.Area{X: x, Y: y, Width: constants.PlayerSize, Height: constants.PlayerSize}
}

// TakeDamage removes health, floored at zero
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// AddAmmo grants ammo, capped at MaxAmmo
func (p *Player) AddAmmo(amount int) {
	if amount <= 0 {
		return
	}
	p.Ammo += amount
	if p.Ammo > p.MaxAmmo {
		p.Ammo = p.MaxAmmo
	}
}

// UseAmmo consumes one round, returns false when empty
func (p *Player) UseAmmo() bool {
	if p.Ammo <= 0 {
		return false
	}
	p.Ammo--
	return true
}

// AddScore increases score; negative amounts are ignored
func (p *Player) AddScore(amount int) {
	if amount > 0 {
		p.Score += amount
	}
}

// IsDead reports whether health is exhausted
func (p *Player) IsDead() bool {
	return p.Health <= 0
}
