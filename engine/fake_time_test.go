package engine

import (
	"sync"
	"time"
)

// fakeTime is a TimeProvider that only moves when told to
type fakeTime struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeTime(start time.Time) *fakeTime {
	return &fakeTime{now: start}
}

func (f *fakeTime) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeTime) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
