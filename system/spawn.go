package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/event"
	"github.com/lixenwraith/gunslinger/status"
	"github.com/lixenwraith/gunslinger/vmath"
)

// SpawnSystem creates enemies and enemy volleys on spawner timer events
type SpawnSystem struct {
	ctx *engine.GameContext

	statEnemies *atomic.Int64
	statVolleys *atomic.Int64
}

// NewSpawnSystem creates a spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{
		ctx:         ctx,
		statEnemies: ctx.Status.Ints.Get(status.SpawnEnemies),
		statVolleys: ctx.Status.Ints.Get(status.SpawnVolleys),
	}
}

func (s *SpawnSystem) Init() {}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update is a no-op, spawns arrive through HandleEvent
func (s *SpawnSystem) Update() {}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemySpawn,
		event.EventEnemyVolley,
	}
}

func (s *SpawnSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if w.Player == nil {
		return
	}

	switch ev.Type {
	case event.EventEnemySpawn:
		s.spawnEnemy(w)
	case event.EventEnemyVolley:
		s.volley(w)
	}
}

// spawnEnemy places one enemy in the band above the bottom edge
func (s *SpawnSystem) spawnEnemy(w *engine.World) {
	cfg := s.ctx.Config
	inset, band := constants.EnemySpawnInset, constants.EnemySpawnBand

	x := s.ctx.Rand.IntRange(inset, cfg.FieldWidth-inset)
	bottom := cfg.FieldHeight - inset
	y := s.ctx.Rand.IntRange(bottom-band, bottom)

	w.AddEnemy(component.NewEnemy(float64(x), float64(y)))
	s.statEnemies.Add(1)
}

// volley fires one shot from every live enemy at the player
func (s *SpawnSystem) volley(w *engine.World) int {
	px, py := float64(w.Player.X), float64(w.Player.Y)
	speed := s.ctx.Config.EnemyShotSpeed

	fired := 0
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		vx, vy, ok := vmath.Direction(e.X, e.Y, px, py, speed)
		if !ok {
			continue
		}
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, e.X, e.Y, vx, vy))
		fired++
	}

	s.statVolleys.Add(1)
	if fired > 0 {
		s.ctx.Notify(core.CueEnemyFired)
	}
	return fired
}
