package system

import (
	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/event"
)

// Install registers every gameplay system with the world and its handlers with the router
func Install(ctx *engine.GameContext) {
	systems := []engine.System{
		NewPlayerSystem(ctx),
		NewSpawnSystem(ctx),
		NewMovementSystem(ctx),
		NewCombatSystem(ctx),
		NewCullSystem(ctx),
	}

	for _, s := range systems {
		ctx.World.AddSystem(s)
		if h, ok := s.(event.Handler[*engine.World]); ok {
			ctx.Router.Register(h)
		}
	}
}
