package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/gunslinger/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventPlayerMove, Payload: &MovePayload{DX: i}})
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Consume returned %d events, want 5", len(got))
	}
	for i, ev := range got {
		if p := ev.Payload.(*MovePayload); p.DX != i {
			t.Errorf("event %d has DX %d", i, p.DX)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("second Consume returned %d events, want none", len(again))
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventEnemySpawn, Payload: i})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Consume returned %d events, want %d", len(got), constants.EventQueueSize)
	}
	if first := got[0].Payload.(int); first != 10 {
		t.Errorf("oldest retained event = %d, want 10", first)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	producers, perProducer := 4, 50

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventEnemyVolley})
			}
		}()
	}
	wg.Wait()

	if n := len(q.Consume()); n != producers*perProducer {
		t.Errorf("Consume returned %d events, want %d", n, producers*perProducer)
	}
}

func TestQueueDiscard(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventPlayerFire})
	q.Push(GameEvent{Type: EventPlayerFire})

	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
	if n := q.Discard(); n != 2 {
		t.Errorf("Discard = %d, want 2", n)
	}
	if q.Len() != 0 {
		t.Errorf("Len after Discard = %d, want 0", q.Len())
	}
}

type countingHandler struct {
	seen []EventType
}

func (h *countingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.seen = append(h.seen, ev.Type)
}

func (h *countingHandler) EventTypes() []EventType {
	return []EventType{EventEnemySpawn, EventEnemyVolley}
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)
	h := &countingHandler{}
	r.Register(h)

	q.Push(GameEvent{Type: EventEnemySpawn})
	q.Push(GameEvent{Type: EventPlayerMove}) // No handler
	q.Push(GameEvent{Type: EventEnemyVolley})

	calls := 0
	if n := r.DispatchAll(&calls); n != 3 {
		t.Errorf("DispatchAll consumed %d, want 3", n)
	}
	if calls != 2 {
		t.Errorf("handler invoked %d times, want 2", calls)
	}
	if len(h.seen) != 2 || h.seen[0] != EventEnemySpawn || h.seen[1] != EventEnemyVolley {
		t.Errorf("handler saw %v", h.seen)
	}
	if r.HandlerCount(EventPlayerMove) != 0 {
		t.Error("unexpected handler for PlayerMove")
	}
}
