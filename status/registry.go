// Package status holds the process-wide simulation counters.
// Systems cache metric pointers at install time and write atomics directly from the tick.
package status

import "sync/atomic"

// Well-known metric keys
const (
	EngineTicks      = "engine.ticks"
	CombatKills      = "combat.kills"
	CombatShots      = "combat.shots"
	CombatMissed     = "combat.missed"
	CombatHitsTaken  = "combat.hits_taken"
	SpawnEnemies     = "spawn.enemies"
	SpawnVolleys     = "spawn.volleys"
	SessionSaves     = "session.saves"
	SessionSaveError = "session.save_errors"
	SessionAccuracy  = "session.accuracy"
)

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Snapshot is a point-in-time copy of all metrics
type Snapshot struct {
	Ints   map[string]int64
	Floats map[string]float64
}

// Snapshot copies every registered metric
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Ints:   make(map[string]int64, r.Ints.Count()),
		Floats: make(map[string]float64, r.Floats.Count()),
	}
	r.Ints.Range(func(key string, v *atomic.Int64) {
		s.Ints[key] = v.Load()
	})
	r.Floats.Range(func(key string, v *Gauge) {
		s.Floats[key] = v.Load()
	})
	return s
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
