package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/event"
	"github.com/lixenwraith/gunslinger/log"
	"github.com/lixenwraith/gunslinger/status"
	"github.com/lixenwraith/gunslinger/store"
	"github.com/lixenwraith/gunslinger/vmath"
)

// State is the session lifecycle state
type State int32

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver // Transient, routes to StateMenu once the result is saved
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a lifecycle call does not apply to the current state
var ErrInvalidTransition = errors.New("invalid session transition")

// HistoryStore persists finished sessions
type HistoryStore interface {
	Save(ctx context.Context, rec store.Record) error
	Top(ctx context.Context, n int) ([]store.Record, error)
}

// run owns the drivers of one play-through; recreated on every Start
type run struct {
	clock  *ClockScheduler // nil when ticking manually
	spawn  *IntervalTimer
	volley *IntervalTimer
}

func (r *run) startTimers() {
	r.spawn.Start()
	r.volley.Start()
}

func (r *run) stopTimers() {
	r.spawn.Stop()
	r.volley.Stop()
}

// stop tears the run down; wait=false when called from inside a tick
func (r *run) stop(wait bool) {
	r.stopTimers()
	if r.clock == nil {
		return
	}
	if wait {
		r.clock.Stop()
	} else {
		r.clock.StopAsync()
	}
}

// Session is the lifecycle state machine around the simulation
// Menu -> Playing <-> Paused, Playing -> GameOver -> Menu, Playing/Paused -> Menu
type Session struct {
	ctx      *GameContext
	history  HistoryStore
	renderer Renderer

	mu    sync.Mutex // Serializes Start, TogglePause, ReturnToMenu and game-over teardown
	state atomic.Int32
	ended atomic.Bool // Terminal latch, claimed once per play-through

	run   atomic.Pointer[run]
	last  atomic.Pointer[component.SessionStats]
	board atomic.Pointer[[]store.Record]

	statTicks      *atomic.Int64
	statSaves      *atomic.Int64
	statSaveErrors *atomic.Int64
	statAccuracy   *status.Gauge
}

// NewSession creates a session in the menu state
// history and renderer may be nil
func NewSession(ctx *GameContext, history HistoryStore, renderer Renderer) *Session {
	s := &Session{
		ctx:            ctx,
		history:        history,
		renderer:       renderer,
		statTicks:      ctx.Status.Ints.Get(status.EngineTicks),
		statSaves:      ctx.Status.Ints.Get(status.SessionSaves),
		statSaveErrors: ctx.Status.Ints.Get(status.SessionSaveError),
		statAccuracy:   ctx.Status.Floats.Get(status.SessionAccuracy),
	}
	s.state.Store(int32(StateMenu))
	s.RefreshLeaderboard()
	ctx.Notify(core.CueMusicMenu)
	return s
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return State(s.state.Load())
}

// Start begins a play-through; blank usernames are replaced by the default
func (s *Session) Start(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() != StateMenu {
		return ErrInvalidTransition
	}

	name := strings.TrimSpace(username)
	if name == "" {
		name = constants.DefaultUsername
	}

	cfg := s.ctx.Config
	spawn := component.BoundsAt(
		vmath.Clamp(constants.PlayerSpawnX, 0, cfg.FieldWidth-constants.PlayerSize),
		vmath.Clamp(constants.PlayerSpawnY, 0, cfg.FieldHeight-constants.PlayerSize),
	)

	stale := s.ctx.discardEvents()

	var obstacleCount int
	var fallback bool
	s.ctx.World.RunSafe(func() {
		obstacles, fb := PlaceObstacles(s.ctx.Rand, PlacementConfig{
			FieldWidth:  cfg.FieldWidth,
			FieldHeight: cfg.FieldHeight,
			Count:       cfg.ObstacleCount,
			Size:        cfg.ObstacleSize,
			Attempts:    cfg.ObstacleAttempts,
			Spawn:       spawn,
			Clearance:   cfg.SpawnClearance,
			Separation:  cfg.ObstacleSeparation,
			Inset:       cfg.CornerInset,
		})
		obstacleCount, fallback = len(obstacles), fb

		player := component.NewPlayer(spawn.X, spawn.Y, name, component.PlayerLimits{
			MaxHealth: cfg.MaxHealth,
			MaxAmmo:   cfg.MaxAmmo,
			StartAmmo: cfg.StartAmmo,
		})
		stats := component.NewSessionStats(name)
		stats.AmmoRemaining = player.Ammo

		s.ctx.World.Reset(player, stats, obstacles)
		s.ctx.World.InitSystemsLocked()
		s.ctx.Banter.Clear()
		s.ended.Store(false)
		s.state.Store(int32(StatePlaying))
	})
	s.ctx.Clock.Resume()

	r := &run{
		spawn:  NewIntervalTimer(cfg.SpawnInterval, func() { s.ctx.PushEvent(event.EventEnemySpawn, nil) }),
		volley: NewIntervalTimer(cfg.VolleyInterval, func() { s.ctx.PushEvent(event.EventEnemyVolley, nil) }),
	}
	if cfg.TickInterval > 0 {
		r.clock = NewClockScheduler(cfg.TickInterval, s.Tick)
	}
	s.run.Store(r)
	r.startTimers()
	if r.clock != nil {
		r.clock.Start()
	}

	s.ctx.Notify(core.CueMusicPlaying)
	log.Info("session started",
		"username", name,
		"obstacles", obstacleCount,
		"fallback_placement", fallback,
		"stale_events", stale,
	)
	s.render()
	return nil
}

// TogglePause switches between Playing and Paused; other states are left unchanged
// Returns the resulting state
func (s *Session) TogglePause() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.State()
	to := from
	s.ctx.World.RunSafe(func() {
		from = s.State()
		switch from {
		case StatePlaying:
			to = StatePaused
		case StatePaused:
			to = StatePlaying
		default:
			return
		}
		s.state.Store(int32(to))
	})

	r := s.run.Load()
	switch {
	case from == StatePlaying && to == StatePaused:
		if r != nil {
			r.stopTimers()
		}
		s.ctx.Clock.Pause()
		s.ctx.Notify(core.CueMusicStop)
		log.Info("session paused")
	case from == StatePaused && to == StatePlaying:
		s.ctx.Clock.Resume()
		if r != nil {
			r.startTimers()
		}
		s.ctx.Notify(core.CueMusicPlaying)
		log.Info("session resumed")
	default:
		return to
	}

	s.render()
	return to
}

// ReturnToMenu ends a running or paused play-through early, saving its result once
// No-op in Menu, and after a game over has already been saved
func (s *Session) ReturnToMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var final *component.SessionStats
	s.ctx.World.RunSafe(func() {
		switch s.State() {
		case StatePlaying, StatePaused:
		default:
			return
		}
		if !s.ended.CompareAndSwap(false, true) {
			return
		}
		final = finalizeLocked(s.ctx.World)
		s.state.Store(int32(StateGameOver))
	})
	if final == nil {
		return
	}

	log.Info("session abandoned", "username", final.Username, "score", final.Score)
	s.finish(final, true)
}

// Close tears down any active play-through
func (s *Session) Close() {
	s.ReturnToMenu()
}

// MovePlayer queues a player step; rejected unless Playing
func (s *Session) MovePlayer(dx, dy int) bool {
	if s.State() != StatePlaying {
		return false
	}
	s.ctx.PushEvent(event.EventPlayerMove, &event.MovePayload{DX: dx, DY: dy})
	return true
}

// Fire queues a player shot toward (x, y); rejected unless Playing
func (s *Session) Fire(x, y int) bool {
	if s.State() != StatePlaying {
		return false
	}
	s.ctx.PushEvent(event.EventPlayerFire, &event.FirePayload{X: x, Y: y})
	return true
}

// Tick runs one simulation step: queued commands, systems in priority order, end check
// No-op unless Playing
func (s *Session) Tick() {
	var final *component.SessionStats
	ran := false

	w := s.ctx.World
	w.RunSafe(func() {
		if s.State() != StatePlaying {
			return
		}
		ran = true

		s.ctx.Router.DispatchAll(w)
		w.UpdateLocked()

		if w.Player.IsDead() && s.ended.CompareAndSwap(false, true) {
			final = finalizeLocked(w)
			s.state.Store(int32(StateGameOver))
		}
	})
	if !ran {
		return
	}
	s.statTicks.Add(1)

	if final != nil {
		log.Info("game over",
			"username", final.Username,
			"score", final.Score,
			"ammo", final.AmmoRemaining,
			"missed", final.ShotsMissed,
		)
		// Start waits until the menu is fully entered
		s.mu.Lock()
		defer s.mu.Unlock()
		s.finish(final, false)
		return
	}
	s.render()
}

// finalizeLocked freezes the session stats and returns a detached copy
func finalizeLocked(w *World) *component.SessionStats {
	w.Stats.Finalize(w.Player.Score, w.Player.Ammo)
	final := *w.Stats
	return &final
}

// finish tears down the run, saves the result and enters the menu, caller holds s.mu
func (s *Session) finish(final *component.SessionStats, wait bool) {
	if r := s.run.Swap(nil); r != nil {
		r.stop(wait)
	}
	s.ctx.Clock.Resume()

	s.persist(final)
	s.statAccuracy.Store(final.Accuracy())
	s.last.Store(final)
	s.RefreshLeaderboard()

	s.ctx.World.RunSafe(func() {
		s.ctx.World.Reset(nil, nil, nil)
		s.ctx.Banter.Clear()
		s.state.Store(int32(StateMenu))
	})
	s.ctx.Notify(core.CueMusicMenu)
	s.render()
}

func (s *Session) persist(final *component.SessionStats) {
	if s.history == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.SaveTimeout)
	defer cancel()

	rec := store.Record{
		Username: final.Username,
		Score:    final.Score,
		Ammo:     final.AmmoRemaining,
		Missed:   final.ShotsMissed,
	}
	if err := s.history.Save(ctx, rec); err != nil {
		s.statSaveErrors.Add(1)
		log.Warn("history save skipped", "username", rec.Username, "error", err)
		return
	}
	s.statSaves.Add(1)
	log.Info("history saved", "username", rec.Username, "score", rec.Score)
}

// Leaderboard returns the top n records; n <= 0 uses the configured size
// Errors are logged and yield an empty result
func (s *Session) Leaderboard(n int) []store.Record {
	if s.history == nil {
		return nil
	}
	if n <= 0 {
		n = s.ctx.Config.LeaderboardSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.SaveTimeout)
	defer cancel()

	records, err := s.history.Top(ctx, n)
	if err != nil {
		log.Warn("leaderboard unavailable", "error", err)
		return nil
	}
	return records
}

// RefreshLeaderboard reloads the cached menu leaderboard
func (s *Session) RefreshLeaderboard() {
	records := s.Leaderboard(0)
	s.board.Store(&records)
}

// LastResult returns the final stats of the previous play-through, nil if none
func (s *Session) LastResult() *component.SessionStats {
	last := s.last.Load()
	if last == nil {
		return nil
	}
	cp := *last
	return &cp
}

// Frame returns a detached snapshot for rendering
func (s *Session) Frame() Frame {
	f := Frame{
		State:       s.State(),
		FieldWidth:  s.ctx.Config.FieldWidth,
		FieldHeight: s.ctx.Config.FieldHeight,
		Ticks:       s.statTicks.Load(),
		LastResult:  s.LastResult(),
	}
	if board := s.board.Load(); board != nil {
		f.Leaderboard = append([]store.Record(nil), (*board)...)
	}

	s.ctx.World.RunSafe(func() {
		snapshotLocked(s.ctx.World, &f)
		f.Banter = s.ctx.Banter.Current()
	})
	return f
}

func (s *Session) render() {
	if s.renderer != nil {
		s.renderer.Render(s.Frame())
	}
}
