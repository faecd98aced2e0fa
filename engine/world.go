package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/gunslinger/component"
)

// System is a per-tick update step; systems run in ascending priority
type System interface {
	Init()
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World holds every entity of the running session
// Collections keep insertion order, which decides first-match tie-breaks in combat
// All access goes through RunSafe (or Lock/Unlock); the tick is the only writer
type World struct {
	mu sync.Mutex

	Player      *component.Player
	Stats       *component.SessionStats
	Enemies     []*component.Enemy
	PlayerShots []*component.Projectile
	EnemyShots  []*component.Projectile
	Obstacles   []component.Obstacle

	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.systems)
}

// RunSafe runs fn with the world lock held
func (w *World) RunSafe(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn()
}

// UpdateLocked runs all systems in priority order, caller holds the lock
func (w *World) UpdateLocked() {
	for _, s := range w.systems {
		s.Update()
	}
}

// InitSystemsLocked resets per-session system state, caller holds the lock
func (w *World) InitSystemsLocked() {
	for _, s := range w.systems {
		s.Init()
	}
}

// AddEnemy appends an enemy, caller holds the lock
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// AddProjectile appends a projectile to the collection of its owner, caller holds the lock
func (w *World) AddProjectile(p *component.Projectile) {
	if p.Owner == component.OwnerEnemy {
		w.EnemyShots = append(w.EnemyShots, p)
		return
	}
	w.PlayerShots = append(w.PlayerShots, p)
}

// PurgeResult counts entities removed by one purge pass
type PurgeResult struct {
	Enemies     int
	PlayerShots int
	EnemyShots  int
}

// Total returns the number of purged entities
func (r PurgeResult) Total() int {
	return r.Enemies + r.PlayerShots + r.EnemyShots
}

// Purge removes dead enemies and retired projectiles in one pass, preserving order
// Caller holds the lock; never call while iterating a collection
func (w *World) Purge() PurgeResult {
	var r PurgeResult
	w.Enemies, r.Enemies = compact(w.Enemies, func(e *component.Enemy) bool { return e.Alive })
	w.PlayerShots, r.PlayerShots = compact(w.PlayerShots, isActive)
	w.EnemyShots, r.EnemyShots = compact(w.EnemyShots, isActive)
	return r
}

func isActive(p *component.Projectile) bool {
	return p.Active
}

// compact filters in place and clears the vacated tail so purged entities can be collected
func compact[T any](items []*T, keep func(*T) bool) ([]*T, int) {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	removed := len(items) - n
	clear(items[n:])
	return items[:n], removed
}

// Reset discards every entity and installs a new player, stats and obstacle set
// Caller holds the lock
func (w *World) Reset(player *component.Player, stats *component.SessionStats, obstacles []component.Obstacle) {
	w.Player = player
	w.Stats = stats
	w.Enemies = nil
	w.PlayerShots = nil
	w.EnemyShots = nil
	w.Obstacles = slices.Clone(obstacles)
}

// Clear discards every entity, leaving systems registered
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Reset(nil, nil, nil)
}
