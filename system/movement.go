// Package system holds the per-tick rules of the simulation.
// Systems run under the world lock in priority order; handlers run first, during event dispatch.
package system

import (
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/physics"
)

// MovementSystem steers enemies toward the player and integrates projectiles
type MovementSystem struct {
	ctx *engine.GameContext
}

// NewMovementSystem creates a movement system
func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

func (s *MovementSystem) Init() {}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update advances every live entity by one tick
func (s *MovementSystem) Update() {
	w := s.ctx.World
	if w.Player == nil {
		return
	}

	px, py := float64(w.Player.X), float64(w.Player.Y)
	speed := s.ctx.Config.PursuitSpeed
	for _, e := range w.Enemies {
		if e.Alive {
			physics.Pursue(e, px, py, speed)
		}
	}

	for _, p := range w.PlayerShots {
		if p.Active {
			physics.Integrate(p)
		}
	}
	for _, p := range w.EnemyShots {
		if p.Active {
			physics.Integrate(p)
		}
	}
}
