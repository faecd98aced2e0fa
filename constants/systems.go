package constants

// System priorities, lower runs first within a tick
const (
	PriorityPlayer   = 50
	PrioritySpawn    = 60
	PriorityMovement = 100
	PriorityCombat   = 200
	PriorityCleanup  = 900
)

// Event queue sizing (must be a power of two)
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
