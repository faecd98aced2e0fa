package engine

import (
	"time"

	"github.com/lixenwraith/gunslinger/config"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/event"
	"github.com/lixenwraith/gunslinger/physics"
	"github.com/lixenwraith/gunslinger/status"
	"github.com/lixenwraith/gunslinger/vmath"
)

// GameContext bundles the world with the services systems need
type GameContext struct {
	// ===== Immutable After Init =====
	World  *World
	Config config.Config
	Field  physics.Field
	Clock  *PausableClock   // Game time; frozen while paused
	Status *status.Registry // Atomic counters
	Audio  core.Notifier    // Never nil
	Router *event.Router[*World]

	// ===== Tick Exclusive (world lock) =====
	Rand   *vmath.FastRand
	Banter *Banter

	queue *event.EventQueue
}

// Option customizes a GameContext at construction
type Option func(*GameContext)

// WithClock drives game time from the given clock
func WithClock(clock *PausableClock) Option {
	return func(ctx *GameContext) { ctx.Clock = clock }
}

// WithNotifier routes audio cues to n
func WithNotifier(n core.Notifier) Option {
	return func(ctx *GameContext) {
		if n != nil {
			ctx.Audio = n
		}
	}
}

// WithStatus shares an existing metrics registry
func WithStatus(reg *status.Registry) Option {
	return func(ctx *GameContext) { ctx.Status = reg }
}

// NewGameContext creates a context with an empty world
func NewGameContext(cfg config.Config, opts ...Option) *GameContext {
	cfg.Sanitize()
	queue := event.NewEventQueue()

	ctx := &GameContext{
		World:  NewWorld(),
		Config: cfg,
		Field: physics.Field{
			Width:  cfg.FieldWidth,
			Height: cfg.FieldHeight,
			Margin: cfg.ExitMargin,
		},
		Audio:  core.NopNotifier{},
		Router: event.NewRouter[*World](queue),
		queue:  queue,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.Clock == nil {
		ctx.Clock = NewPausableClock()
	}
	if ctx.Status == nil {
		ctx.Status = status.NewRegistry()
	}

	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ctx.Rand = vmath.NewFastRand(seed)
	ctx.Banter = NewBanter(ctx.Clock, ctx.Rand, cfg.BanterEnabled)
	return ctx
}

// PushEvent queues an event for the next tick, safe from any goroutine
func (ctx *GameContext) PushEvent(t event.EventType, payload any) {
	ctx.queue.Push(event.GameEvent{Type: t, Payload: payload})
}

// PendingEvents returns the approximate queue depth
func (ctx *GameContext) PendingEvents() int {
	return ctx.queue.Len()
}

// discardEvents drops queued events left over from a previous session
func (ctx *GameContext) discardEvents() int {
	return ctx.queue.Discard()
}

// Notify forwards a cue to the audio collaborator
func (ctx *GameContext) Notify(cue core.Cue) {
	ctx.Audio.Notify(cue)
}
