package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/physics"
	"github.com/lixenwraith/gunslinger/status"
	"github.com/lixenwraith/gunslinger/vmath"
)

// CombatSystem resolves projectile contacts and applies damage, ammo and score
// Entities are only flagged here; CullSystem removes them after all contacts are settled
type CombatSystem struct {
	ctx *engine.GameContext

	// Telemetry
	statKills     *atomic.Int64
	statMissed    *atomic.Int64
	statHitsTaken *atomic.Int64
}

// NewCombatSystem creates a combat system
func NewCombatSystem(ctx *engine.GameContext) *CombatSystem {
	return &CombatSystem{
		ctx:           ctx,
		statKills:     ctx.Status.Ints.Get(status.CombatKills),
		statMissed:    ctx.Status.Ints.Get(status.CombatMissed),
		statHitsTaken: ctx.Status.Ints.Get(status.CombatHitsTaken),
	}
}

func (s *CombatSystem) Init() {}

// Name returns system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

// Update runs the three contact passes in order
func (s *CombatSystem) Update() {
	w := s.ctx.World
	if w.Player == nil {
		return
	}

	s.resolvePlayerShots(w)
	s.resolveEnemyShots(w)
	s.resolveKills(w)
}

// resolvePlayerShots stops player shots on obstacles and counts misses on exit
func (s *CombatSystem) resolvePlayerShots(w *engine.World) {
	for _, p := range w.PlayerShots {
		if !p.Active {
			continue
		}
		if hitsObstacle(p, w.Obstacles) {
			p.HitObstacle = true
			p.Retire()
			continue
		}
		if physics.Exited(p, s.ctx.Field) {
			p.Retire()
			w.Stats.RecordMiss()
			s.statMissed.Add(1)
		}
	}
}

// resolveEnemyShots damages the player; player contact wins over exit and obstacle
func (s *CombatSystem) resolveEnemyShots(w *engine.World) {
	cfg := s.ctx.Config
	player := w.Player.Bounds()

	for _, p := range w.EnemyShots {
		if !p.Active {
			continue
		}
		switch {
		case vmath.AreaIntersects(p.Bounds(), player):
			w.Player.TakeDamage(cfg.EnemyDamage)
			p.Retire()
			s.statHitsTaken.Add(1)
			s.ctx.Notify(core.CuePlayerDamaged)

		case physics.Exited(p, s.ctx.Field):
			// Near miss
			w.Player.AddAmmo(cfg.NearMissAmmo)
			p.Retire()

		case hitsObstacle(p, w.Obstacles):
			p.HitObstacle = true
			p.Retire()
		}
	}
}

// resolveKills matches each player shot to the first live enemy it touches, in insertion order
func (s *CombatSystem) resolveKills(w *engine.World) {
	for _, p := range w.PlayerShots {
		if !p.Active {
			continue
		}
		box := p.Bounds()
		for _, e := range w.Enemies {
			if !e.Alive || !vmath.AreaIntersects(box, e.Bounds()) {
				continue
			}
			e.Kill()
			p.Retire()
			w.Player.AddScore(s.ctx.Config.KillScore)
			w.Stats.RecordHit(w.Player.Score)
			s.statKills.Add(1)
			s.ctx.Notify(core.CueEnemyKilled)
			s.ctx.Banter.OnKill()
			break
		}
	}
}

func hitsObstacle(p *component.Projectile, obstacles []component.Obstacle) bool {
	box := p.Bounds()
	for _, o := range obstacles {
		if vmath.AreaIntersects(box, o.Bounds()) {
			return true
		}
	}
	return false
}
