package engine

import (
	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/vmath"
)

// PlacementConfig bounds randomized obstacle placement
type PlacementConfig struct {
	FieldWidth, FieldHeight int

	Count    int
	Size     int
	Attempts int // Random tries per obstacle before falling back to a corner

	Spawn      core.Area // Player spawn box to keep clear
	Clearance  float64   // Minimum centre distance from Spawn
	Separation float64   // Minimum centre distance between obstacles
	Inset      int       // Corner fallback gap from the field edge
}

// PlaceObstacles generates up to Count obstacles clear of the spawn and of each other
// Reports whether any obstacle had to use a corner fallback
func PlaceObstacles(rng *vmath.FastRand, pc PlacementConfig) ([]component.Obstacle, bool) {
	placed := make([]core.Area, 0, pc.Count)
	fallback := false

	for i := 0; i < pc.Count; i++ {
		if a, ok := randomSlot(rng, pc, placed); ok {
			placed = append(placed, a)
			continue
		}

		fallback = true
		if a, ok := cornerSlot(pc, placed); ok {
			placed = append(placed, a)
		}
	}

	out := make([]component.Obstacle, len(placed))
	for i, a := range placed {
		out[i] = component.NewObstacle(a.X, a.Y, a.Width, a.Height)
	}
	return out, fallback
}

func randomSlot(rng *vmath.FastRand, pc PlacementConfig, placed []core.Area) (core.Area, bool) {
	maxX := pc.FieldWidth - pc.Size
	maxY := pc.FieldHeight - pc.Size
	if maxX < 0 || maxY < 0 {
		return core.Area{}, false
	}

	for try := 0; try < pc.Attempts; try++ {
		a := core.Area{
			X:      rng.IntRange(0, maxX+1),
			Y:      rng.IntRange(0, maxY+1),
			Width:  pc.Size,
			Height: pc.Size,
		}
		if slotClear(a, pc, placed) {
			return a, true
		}
	}
	return core.Area{}, false
}

// Corners in order: top-left, top-right, bottom-left, bottom-right
func cornerSlot(pc PlacementConfig, placed []core.Area) (core.Area, bool) {
	right := pc.FieldWidth - pc.Inset - pc.Size
	bottom := pc.FieldHeight - pc.Inset - pc.Size
	corners := [4][2]int{
		{pc.Inset, pc.Inset},
		{right, pc.Inset},
		{pc.Inset, bottom},
		{right, bottom},
	}

	for _, c := range corners {
		a := core.Area{X: c[0], Y: c[1], Width: pc.Size, Height: pc.Size}
		if a.X < 0 || a.Y < 0 || vmath.AreaIntersects(a, pc.Spawn) {
			continue
		}
		taken := false
		for _, p := range placed {
			if vmath.AreaIntersects(a, p) {
				taken = true
				break
			}
		}
		if !taken {
			return a, true
		}
	}
	return core.Area{}, false
}

func slotClear(a core.Area, pc PlacementConfig, placed []core.Area) bool {
	if vmath.AreaIntersects(a, pc.Spawn) || vmath.AreaCenterDistance(a, pc.Spawn) < pc.Clearance {
		return false
	}
	for _, p := range placed {
		if vmath.AreaCenterDistance(a, p) < pc.Separation {
			return false
		}
	}
	return true
}
