// Package event carries commands and timer triggers into the simulation tick.
// Producers (input, spawn timers) push from any goroutine; the tick is the only consumer,
// so every world mutation happens on a single writer.
package event

// EventType represents the type of game event
type EventType int

const (
	// EventPlayerMove requests a discrete player step
	// Trigger: input collaborator | Consumer: PlayerSystem | Payload: *MovePayload
	EventPlayerMove EventType = iota

	// EventPlayerFire requests a player shot toward a field point
	// Trigger: input collaborator | Consumer: PlayerSystem | Payload: *FirePayload
	EventPlayerFire

	// EventEnemySpawn requests one new enemy in the spawn band
	// Trigger: enemy-spawn timer | Consumer: SpawnSystem | Payload: nil
	EventEnemySpawn

	// EventEnemyVolley requests one shot from every alive enemy
	// Trigger: enemy-volley timer | Consumer: SpawnSystem | Payload: nil
	EventEnemyVolley

	eventTypeCount
)

// String returns the event name
func (t EventType) String() string {
	switch t {
	case EventPlayerMove:
		return "PlayerMove"
	case EventPlayerFire:
		return "PlayerFire"
	case EventEnemySpawn:
		return "EnemySpawn"
	case EventEnemyVolley:
		return "EnemyVolley"
	default:
		return "Unknown"
	}
}

// GameEvent is one queued event
type GameEvent struct {
	Type    EventType
	Payload any
}
