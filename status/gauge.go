package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric stored as IEEE bits in an atomic word
// The zero value reads 0.0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Store(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Load() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add applies delta with a CAS loop and returns the new value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
