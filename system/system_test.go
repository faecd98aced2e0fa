package system

import (
	"reflect"
	"sync"
	"testing"

	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/config"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/event"
	"github.com/lixenwraith/gunslinger/store"
)

type cueRecorder struct {
	mu     sync.Mutex
	counts map[core.Cue]int
}

func (r *cueRecorder) Notify(c core.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[core.Cue]int)
	}
	r.counts[c]++
}

func (r *cueRecorder) count(c core.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[c]
}

type fixture struct {
	t       *testing.T
	ctx     *engine.GameContext
	session *engine.Session
	history *store.Memory
	cues    *cueRecorder
}

// newFixture starts a manually ticked session with no obstacles
func newFixture(t *testing.T, tune ...func(*config.Config)) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.TickInterval = 0
	cfg.SpawnInterval = 0
	cfg.VolleyInterval = 0
	cfg.Seed = 7
	for _, fn := range tune {
		fn(&cfg)
	}

	cues := &cueRecorder{}
	ctx := engine.NewGameContext(cfg, engine.WithNotifier(cues))
	Install(ctx)

	f := &fixture{
		t:       t,
		ctx:     ctx,
		history: store.NewMemory(),
		cues:    cues,
	}
	f.session = engine.NewSession(ctx, f.history, nil)
	t.Cleanup(f.session.Close)

	if err := f.session.Start("tester"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.with(func(w *engine.World) { w.Obstacles = nil })
	return f
}

func (f *fixture) with(fn func(w *engine.World)) {
	f.ctx.World.RunSafe(func() { fn(f.ctx.World) })
}

func (f *fixture) ticks(n int) {
	for i := 0; i < n; i++ {
		f.session.Tick()
	}
}

func (f *fixture) player() component.Player {
	var p component.Player
	f.with(func(w *engine.World) { p = *w.Player })
	return p
}

func TestInstallOrdersSystems(t *testing.T) {
	f := newFixture(t)
	var names []string
	for _, s := range f.ctx.World.Systems() {
		names = append(names, s.Name())
	}
	want := []string{"player", "spawn", "movement", "combat", "cull"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("systems = %v, want %v", names, want)
	}
	for _, et := range []event.EventType{event.EventPlayerMove, event.EventPlayerFire, event.EventEnemySpawn, event.EventEnemyVolley} {
		if f.ctx.Router.HandlerCount(et) != 1 {
			t.Errorf("%s has %d handlers", et, f.ctx.Router.HandlerCount(et))
		}
	}
}

func TestFireTravelsAlongAim(t *testing.T) {
	f := newFixture(t)

	if !f.session.Fire(400, 260) {
		t.Fatal("Fire rejected while playing")
	}
	f.ticks(5)

	var shot component.Projectile
	var stats component.SessionStats
	f.with(func(w *engine.World) {
		if len(w.PlayerShots) != 1 {
			t.Fatalf("player shots = %d, want 1", len(w.PlayerShots))
		}
		shot = *w.PlayerShots[0]
		stats = *w.Stats
	})

	vx, vy := shot.Velocity()
	if vx != 8 || vy != 0 {
		t.Errorf("velocity = (%v,%v), want (8,0)", vx, vy)
	}
	if shot.X != 420 || shot.Y != 260 {
		t.Errorf("position after 5 ticks = (%v,%v), want (420,260)", shot.X, shot.Y)
	}
	if p := f.player(); p.Ammo != 19 {
		t.Errorf("ammo = %d, want 19", p.Ammo)
	}
	if stats.ShotsFired != 1 || stats.AmmoRemaining != 19 {
		t.Errorf("stats = %+v", stats)
	}
	if f.cues.count(core.CueShotFired) != 1 {
		t.Error("shot cue not emitted")
	}
}

func TestFireRejectedWithoutAmmoOrAim(t *testing.T) {
	f := newFixture(t)

	// Aim at own position
	f.session.Fire(380, 260)
	f.ticks(1)

	f.with(func(w *engine.World) { w.Player.Ammo = 0 })
	f.session.Fire(600, 260)
	f.ticks(1)

	f.with(func(w *engine.World) {
		if len(w.PlayerShots) != 0 {
			t.Errorf("player shots = %d, want 0", len(w.PlayerShots))
		}
		if w.Stats.ShotsFired != 0 {
			t.Errorf("ShotsFired = %d, want 0", w.Stats.ShotsFired)
		}
	})
	if f.cues.count(core.CueShotFired) != 0 {
		t.Error("shot cue emitted for a rejected shot")
	}
}

func TestShotIntoObstacleIsNotAMiss(t *testing.T) {
	velocities := []struct {
		name   string
		vx, vy float64
	}{
		{"east", 8, 0},
		{"south", 0, 4},
		{"north-west", -3, -3},
		{"diagonal", 5.66, 5.66},
		{"full speed", 8, 8},
	}

	for _, v := range velocities {
		t.Run(v.name, func(t *testing.T) {
			f := newFixture(t)
			shot := component.NewProjectile(component.OwnerPlayer, 0, 0, v.vx, v.vy)
			f.with(func(w *engine.World) {
				w.Obstacles = []component.Obstacle{component.NewObstacle(0, 0, 64, 64)}
				w.AddProjectile(shot)
			})

			f.ticks(1)

			f.with(func(w *engine.World) {
				if len(w.PlayerShots) != 0 {
					t.Error("shot survived the collision pass")
				}
				if w.Stats.ShotsMissed != 0 {
					t.Errorf("ShotsMissed = %d, want 0", w.Stats.ShotsMissed)
				}
			})
			if !shot.HitObstacle || shot.Active {
				t.Errorf("shot active=%v hitObstacle=%v", shot.Active, shot.HitObstacle)
			}
		})
	}
}

func TestShotLeavingFieldCountsMiss(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.AddProjectile(component.NewProjectile(component.OwnerPlayer, 845, 100, 8, 0))
	})

	f.ticks(1)

	f.with(func(w *engine.World) {
		if len(w.PlayerShots) != 0 || w.Stats.ShotsMissed != 1 {
			t.Errorf("shots=%d missed=%d", len(w.PlayerShots), w.Stats.ShotsMissed)
		}
	})
}

func TestEnemyShotHitsPlayer(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, 380, 260, 4, 0))
	})

	f.ticks(1)

	p := f.player()
	if p.Health != 90 {
		t.Errorf("health = %d, want 90", p.Health)
	}
	if p.Ammo != 20 {
		t.Errorf("ammo = %d, want 20", p.Ammo)
	}
	f.with(func(w *engine.World) {
		if len(w.EnemyShots) != 0 {
			t.Error("enemy shot not retired")
		}
	})
	if f.cues.count(core.CuePlayerDamaged) != 1 {
		t.Error("damage cue not emitted")
	}
}

func TestEnemyShotNearMissGrantsAmmo(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, -48, 300, -4, 0))
	})

	f.ticks(1)

	if p := f.player(); p.Ammo != 21 || p.Health != 100 {
		t.Errorf("ammo=%d health=%d, want 21/100", p.Ammo, p.Health)
	}
	f.with(func(w *engine.World) {
		if len(w.EnemyShots) != 0 {
			t.Error("exited enemy shot not retired")
		}
	})
}

func TestNearMissRespectsAmmoCap(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.Player.AddAmmo(100)
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, -48, 300, -4, 0))
	})

	f.ticks(1)

	if p := f.player(); p.Ammo != p.MaxAmmo {
		t.Errorf("ammo = %d, want cap %d", p.Ammo, p.MaxAmmo)
	}
}

func TestPlayerContactWinsOverExit(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		// Player pushed past the exit margin so one shot both touches it and leaves the field
		w.Player.X, w.Player.Y = -100, 0
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, -90, 10, -1, 0))
	})

	f.ticks(1)

	if p := f.player(); p.Health != 90 || p.Ammo != 20 {
		t.Errorf("health=%d ammo=%d, want 90/20", p.Health, p.Ammo)
	}
}

func TestEnemyShotStoppedByObstacle(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.Obstacles = []component.Obstacle{component.NewObstacle(100, 100, 64, 64)}
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, 120, 120, 4, 0))
	})

	f.ticks(1)

	if p := f.player(); p.Health != 100 || p.Ammo != 20 {
		t.Errorf("health=%d ammo=%d", p.Health, p.Ammo)
	}
	f.with(func(w *engine.World) {
		if len(w.EnemyShots) != 0 {
			t.Error("shot passed through obstacle")
		}
	})
}

func TestDiagonalShotClearsCornerWithoutContact(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.PursuitSpeed = 0 })

	// Lands at (199.66,240.16): box {199,240,6,6} sits just below the enemy box [200,240)
	enemy := component.NewEnemy(200, 200)
	playerShot := component.NewProjectile(component.OwnerPlayer, 194, 234.5, 5.66, 5.66)
	// Lands at (376.83,300.33): box {376,300,6,6} sits just below the player box [260,300)
	enemyShot := component.NewProjectile(component.OwnerEnemy, 374, 297.5, 2.83, 2.83)
	f.with(func(w *engine.World) {
		w.AddEnemy(enemy)
		w.AddProjectile(playerShot)
		w.AddProjectile(enemyShot)
	})

	f.ticks(1)

	if !enemy.Alive {
		t.Error("enemy killed by a shot that never overlapped it")
	}
	if p := f.player(); p.Health != 100 || p.Score != 0 {
		t.Errorf("health=%d score=%d, want 100/0", p.Health, p.Score)
	}
	if !playerShot.Active || !enemyShot.Active {
		t.Errorf("shots retired: player=%v enemy=%v", !playerShot.Active, !enemyShot.Active)
	}
}

func TestFirstEnemyInInsertionOrderWins(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.PursuitSpeed = 0 })

	first := component.NewEnemy(400, 100)
	second := component.NewEnemy(405, 100)
	shot := component.NewProjectile(component.OwnerPlayer, 410, 110, 0, 0)
	f.with(func(w *engine.World) {
		w.AddEnemy(first)
		w.AddEnemy(second)
		w.AddProjectile(shot)
	})

	f.ticks(1)

	if first.Alive || !second.Alive {
		t.Errorf("first alive=%v second alive=%v", first.Alive, second.Alive)
	}
	f.with(func(w *engine.World) {
		if len(w.Enemies) != 1 || w.Enemies[0] != second {
			t.Error("wrong enemy purged")
		}
		if w.Player.Score != 100 || w.Stats.ShotsHit != 1 || w.Stats.Score != 100 {
			t.Errorf("score=%d hits=%d", w.Player.Score, w.Stats.ShotsHit)
		}
		if len(w.PlayerShots) != 0 {
			t.Error("shot survived a kill")
		}
	})
	if f.cues.count(core.CueEnemyKilled) != 1 {
		t.Error("kill cue count wrong")
	}
}

func TestMovePlayerCommands(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.Obstacles = []component.Obstacle{component.NewObstacle(430, 260, 64, 64)}
	})

	// Touching the obstacle edge is allowed
	f.session.MovePlayer(10, 0)
	f.ticks(1)
	if p := f.player(); p.X != 390 {
		t.Fatalf("x = %d, want 390", p.X)
	}

	// Overlap rejects the whole move, including the free axis
	f.session.MovePlayer(10, 10)
	f.ticks(1)
	if p := f.player(); p.X != 390 || p.Y != 260 {
		t.Errorf("position = (%d,%d), want (390,260)", p.X, p.Y)
	}

	f.session.MovePlayer(-1000, 0)
	f.ticks(1)
	if p := f.player(); p.X != 0 {
		t.Errorf("x = %d, want clamped 0", p.X)
	}
}

func TestSpawnEventPlacesEnemyInBand(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.PursuitSpeed = 0 })

	for i := 0; i < 20; i++ {
		f.ctx.PushEvent(event.EventEnemySpawn, nil)
	}
	f.ticks(1)

	f.with(func(w *engine.World) {
		if len(w.Enemies) != 20 {
			t.Fatalf("enemies = %d, want 20", len(w.Enemies))
		}
		for _, e := range w.Enemies {
			if e.X < 50 || e.X >= 750 || e.Y < 500 || e.Y >= 550 {
				t.Errorf("enemy outside spawn band: (%v,%v)", e.X, e.Y)
			}
		}
	})
}

func TestVolleyFiresFromEveryEnemy(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.PursuitSpeed = 0 })
	f.with(func(w *engine.World) {
		w.AddEnemy(component.NewEnemy(380, 500))
		w.AddEnemy(component.NewEnemy(380, 260)) // Co-located with the player
		dead := component.NewEnemy(100, 500)
		dead.Kill()
		w.AddEnemy(dead)
	})

	f.ctx.PushEvent(event.EventEnemyVolley, nil)
	f.ticks(1)

	f.with(func(w *engine.World) {
		if len(w.EnemyShots) != 1 {
			t.Fatalf("enemy shots = %d, want 1", len(w.EnemyShots))
		}
		vx, vy := w.EnemyShots[0].Velocity()
		if vx != 0 || vy != -4 {
			t.Errorf("velocity = (%v,%v), want (0,-4)", vx, vy)
		}
		if w.EnemyShots[0].Y != 496 {
			t.Errorf("y = %v, want 496 after one tick", w.EnemyShots[0].Y)
		}
	})
	if f.cues.count(core.CueEnemyFired) != 1 {
		t.Error("volley cue not emitted")
	}
}

func TestEnemiesPursuePlayer(t *testing.T) {
	f := newFixture(t)
	enemy := component.NewEnemy(380, 500)
	f.with(func(w *engine.World) { w.AddEnemy(enemy) })

	f.ticks(10)

	if enemy.X != 380 || enemy.Y != 495 {
		t.Errorf("enemy at (%v,%v), want (380,495)", enemy.X, enemy.Y)
	}
}

func TestPausedTickChangesNothing(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.AddEnemy(component.NewEnemy(100, 500))
		w.AddProjectile(component.NewProjectile(component.OwnerPlayer, 200, 200, 8, 0))
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, 380, 250, 0, 4))
	})
	f.session.Fire(600, 260)
	f.ticks(1)

	f.session.TogglePause()
	before := f.session.Frame()
	f.ticks(5)
	after := f.session.Frame()

	if before.Player != after.Player || before.Stats != after.Stats {
		t.Error("player or stats changed while paused")
	}
	if !reflect.DeepEqual(before.Enemies, after.Enemies) ||
		!reflect.DeepEqual(before.PlayerShots, after.PlayerShots) ||
		!reflect.DeepEqual(before.EnemyShots, after.EnemyShots) {
		t.Error("entities changed while paused")
	}
}

func TestHealthExhaustionSavesOnce(t *testing.T) {
	f := newFixture(t)
	f.with(func(w *engine.World) {
		w.Player.AddScore(700)
		w.Player.TakeDamage(90)
		w.Stats.RecordMiss()
		w.Stats.RecordMiss()
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, 380, 260, 4, 0))
		w.AddProjectile(component.NewProjectile(component.OwnerEnemy, 382, 262, 4, 0))
	})

	f.ticks(1)

	if f.session.State() != engine.StateMenu {
		t.Fatalf("state = %v, want menu", f.session.State())
	}
	f.ticks(3)
	f.session.ReturnToMenu()

	records := f.history.All()
	if len(records) != 1 {
		t.Fatalf("saved %d records, want 1", len(records))
	}
	got := records[0]
	if got.Username != "tester" || got.Score != 700 || got.Ammo != 20 || got.Missed != 2 {
		t.Errorf("record = %+v", got)
	}
}

func TestInvariantsHoldUnderLoad(t *testing.T) {
	f := newFixture(t)

	for tick := 0; tick < 600 && f.session.State() == engine.StatePlaying; tick++ {
		if tick%20 == 0 {
			f.ctx.PushEvent(event.EventEnemySpawn, nil)
		}
		if tick%10 == 0 {
			f.ctx.PushEvent(event.EventEnemyVolley, nil)
		}
		if tick%3 == 0 {
			f.session.Fire(400, 560)
		}
		if tick%7 == 0 {
			f.session.MovePlayer(10*(tick%3-1), 10*(tick%5-2))
		}
		f.session.Tick()

		f.with(func(w *engine.World) {
			if w.Player == nil {
				return
			}
			p := w.Player
			if p.Health < 0 || p.Health > p.MaxHealth || p.Ammo < 0 || p.Ammo > p.MaxAmmo {
				t.Fatalf("tick %d: health=%d ammo=%d out of bounds", tick, p.Health, p.Ammo)
			}
			for _, e := range w.Enemies {
				if !e.Alive {
					t.Fatalf("tick %d: dead enemy left after purge", tick)
				}
			}
			for _, shots := range [][]*component.Projectile{w.PlayerShots, w.EnemyShots} {
				for _, s := range shots {
					if !s.Active {
						t.Fatalf("tick %d: retired projectile left after purge", tick)
					}
				}
			}
		})
	}
}
