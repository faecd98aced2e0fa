package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/event"
	"github.com/lixenwraith/gunslinger/log"
	"github.com/lixenwraith/gunslinger/physics"
	"github.com/lixenwraith/gunslinger/status"
	"github.com/lixenwraith/gunslinger/vmath"
)

// PlayerSystem applies queued move and fire commands
type PlayerSystem struct {
	ctx *engine.GameContext

	statShots *atomic.Int64
}

// NewPlayerSystem creates a player command system
func NewPlayerSystem(ctx *engine.GameContext) *PlayerSystem {
	return &PlayerSystem{
		ctx:       ctx,
		statShots: ctx.Status.Ints.Get(status.CombatShots),
	}
}

func (s *PlayerSystem) Init() {}

// Name returns system's name
func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update is a no-op, commands arrive through HandleEvent
func (s *PlayerSystem) Update() {}

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerMove,
		event.EventPlayerFire,
	}
}

func (s *PlayerSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if w.Player == nil {
		return
	}

	switch ev.Type {
	case event.EventPlayerMove:
		if payload, ok := ev.Payload.(*event.MovePayload); ok {
			physics.MovePlayer(w.Player, payload.DX, payload.DY, s.ctx.Field, w.Obstacles)
		}

	case event.EventPlayerFire:
		if payload, ok := ev.Payload.(*event.FirePayload); ok {
			s.fire(w, payload.X, payload.Y)
		}
	}
}

// fire spawns a shot at the player's position aimed at (x, y)
// Empty ammo and a zero-length aim are silent no-ops
func (s *PlayerSystem) fire(w *engine.World, x, y int) {
	p := w.Player
	if p.Ammo <= 0 {
		log.Debug("fire rejected", "reason", "no ammo")
		return
	}

	ox, oy := float64(p.X), float64(p.Y)
	vx, vy, ok := vmath.Direction(ox, oy, float64(x), float64(y), s.ctx.Config.PlayerShotSpeed)
	if !ok {
		return
	}

	p.UseAmmo()
	w.AddProjectile(component.NewProjectile(component.OwnerPlayer, ox, oy, vx, vy))
	w.Stats.RecordShot(p.Ammo)
	s.statShots.Add(1)

	s.ctx.Notify(core.CueShotFired)
	s.ctx.Banter.OnShot()
}
