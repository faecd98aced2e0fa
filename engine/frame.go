package engine

import (
	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/store"
)

// Frame is a detached copy of everything a renderer may show
// Mutating a Frame never reaches the world
type Frame struct {
	State State

	FieldWidth, FieldHeight int

	HasPlayer   bool
	Player      component.Player
	Stats       component.SessionStats
	Enemies     []component.Enemy
	PlayerShots []component.Projectile
	EnemyShots  []component.Projectile
	Obstacles   []component.Obstacle

	Banter BanterLine
	Ticks  int64

	// Menu screen data
	LastResult  *component.SessionStats
	Leaderboard []store.Record
}

// Renderer receives one frame per tick and after lifecycle transitions
type Renderer interface {
	Render(f Frame)
}

// snapshotLocked copies the world, caller holds the world lock
func snapshotLocked(w *World, f *Frame) {
	if w.Player != nil {
		f.HasPlayer = true
		f.Player = *w.Player
	}
	if w.Stats != nil {
		f.Stats = *w.Stats
	}

	f.Enemies = make([]component.Enemy, len(w.Enemies))
	for i, e := range w.Enemies {
		f.Enemies[i] = *e
	}
	f.PlayerShots = copyShots(w.PlayerShots)
	f.EnemyShots = copyShots(w.EnemyShots)
	f.Obstacles = append([]component.Obstacle(nil), w.Obstacles...)
}

func copyShots(src []*component.Projectile) []component.Projectile {
	out := make([]component.Projectile, len(src))
	for i, p := range src {
		out[i] = *p
	}
	return out
}
