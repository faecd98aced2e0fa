package event

import (
	"sync/atomic"

	"github.com/lixenwraith/gunslinger/constants"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (simulation tick)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events    [constants.EventQueueSize]GameEvent
	published [constants.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event, safe for concurrent producers
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1

		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & constants.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true) // MUST be after write

		// Drop the oldest unread event when the ring wraps
		head := eq.head.Load()
		if next-head > constants.EventQueueSize {
			eq.head.CompareAndSwap(head, next-constants.EventQueueSize)
		}
		return
	}
}

// Consume returns all fully published events in FIFO order and advances head
// Single consumer only
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		available := tail - head
		if available > constants.EventQueueSize {
			available = constants.EventQueueSize
			head = tail - constants.EventQueueSize
		}

		out := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & constants.EventBufferMask
			if !eq.published[idx].Load() {
				break // Writer incomplete, pick it up next tick
			}
			out = append(out, eq.events[idx])
			eq.events[idx] = GameEvent{}
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Discard drops every pending event, returns how many were dropped
func (eq *EventQueue) Discard() int {
	return len(eq.Consume())
}

// Len returns the approximate number of pending events
func (eq *EventQueue) Len() int {
	n := eq.tail.Load() - eq.head.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}
