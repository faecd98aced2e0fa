package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/gunslinger/core"
)

// IntervalTimer invokes a callback every interval until stopped
// A non-positive interval makes the timer manual: it reports active but only fires via Trigger
type IntervalTimer struct {
	interval time.Duration
	fn       func()

	mu     sync.Mutex
	active bool
	stop   chan struct{}
	done   chan struct{}
}

// NewIntervalTimer creates a stopped timer
func NewIntervalTimer(interval time.Duration, fn func()) *IntervalTimer {
	return &IntervalTimer{interval: interval, fn: fn}
}

// Start arms the timer; the first callback fires one interval later
func (t *IntervalTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return
	}
	t.active = true
	if t.interval <= 0 {
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	t.stop, t.done = stop, done

	core.Go(func() {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.fn()
			}
		}
	})
}

// Stop disarms the timer and waits for its goroutine to exit
// The callback must not call Stop on its own timer
func (t *IntervalTimer) Stop() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// IsActive reports whether the timer is armed
func (t *IntervalTimer) IsActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Trigger runs the callback immediately if the timer is armed
// Returns false when stopped
func (t *IntervalTimer) Trigger() bool {
	if !t.IsActive() {
		return false
	}
	t.fn()
	return true
}
