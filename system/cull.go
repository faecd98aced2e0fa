package system

import (
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/engine"
)

// CullSystem removes dead enemies and retired projectiles
// It runs last in the tick so every contact of the tick sees the same entity set
type CullSystem struct {
	ctx *engine.GameContext
}

// NewCullSystem creates a new cull system
func NewCullSystem(ctx *engine.GameContext) *CullSystem {
	return &CullSystem{ctx: ctx}
}

func (s *CullSystem) Init() {}

// Name returns system's name
func (s *CullSystem) Name() string {
	return "cull"
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCleanup
}

// Update purges flagged entities in one pass
func (s *CullSystem) Update() {
	s.ctx.World.Purge()
}
