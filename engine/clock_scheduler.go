package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gunslinger/core"
)

// ClockScheduler runs a tick function on a fixed cadence in its own goroutine
// Stop is cooperative: the running flag is checked between ticks, a tick is never interrupted
type ClockScheduler struct {
	tickInterval time.Duration
	tick         func()

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler; Start must be called to begin ticking
func NewClockScheduler(tickInterval time.Duration, tick func()) *ClockScheduler {
	return &ClockScheduler{
		tickInterval: tickInterval,
		tick:         tick,
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start begins the scheduler loop; a stopped scheduler cannot be restarted
func (cs *ClockScheduler) Start() {
	select {
	case <-cs.stopChan:
		return
	default:
	}
	if cs.running.CompareAndSwap(false, true) {
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the loop and waits for the in-flight tick to finish
// Must not be called from inside the tick function, use StopAsync there
func (cs *ClockScheduler) Stop() {
	wasRunning := cs.running.Load()
	cs.StopAsync()
	if wasRunning {
		<-cs.done
	}
}

// StopAsync clears the running flag; the loop exits after the current tick
func (cs *ClockScheduler) StopAsync() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
}

// IsRunning reports whether the loop goroutine is alive
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer close(cs.done)
	defer cs.running.Store(false)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	nextDeadline := time.Now().Add(cs.tickInterval)

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		// Flag may have been cleared while waiting on the timer
		select {
		case <-cs.stopChan:
			return
		default:
		}

		cs.tick()
		cs.tickCount.Add(1)

		now := time.Now()
		nextDeadline = nextDeadline.Add(cs.tickInterval)
		// Drop missed ticks instead of bursting to catch up
		if now.Sub(nextDeadline) > cs.tickInterval*2 {
			nextDeadline = now.Add(cs.tickInterval)
		}

		sleep := nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
