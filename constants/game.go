package constants

import "time"

// Simulation clock
const (
	// GameUpdateInterval is the simulation tick period (~60 ticks per second)
	GameUpdateInterval = 16 * time.Millisecond

	// SaveTimeout bounds a single history write issued at session end
	SaveTimeout = 2 * time.Second
)

// Play field, in screen units
const (
	FieldWidth  = 800
	FieldHeight = 600

	// ExitMargin extends the field for projectile exit tests to avoid edge flicker
	ExitMargin = 50
)

// Entity footprints
const (
	PlayerSize     = 40
	EnemySize      = 40
	ProjectileSize = 6
	ObstacleSize   = 64
)

// Player spawn and stat caps
const (
	PlayerSpawnX = 380
	PlayerSpawnY = 260

	MaxHealth  = 100
	MaxAmmo    = 50
	StartAmmo  = 20
	PlayerStep = 10

	// DefaultUsername replaces blank usernames at session start
	DefaultUsername = "Player1"
)

// Obstacle placement
const (
	ObstacleCount = 3

	// ObstacleAttempts bounds randomized placement tries per obstacle before falling back to corners
	ObstacleAttempts = 50

	// SpawnClearance is the minimum centre distance between an obstacle and the player spawn box
	SpawnClearance = 150.0

	// ObstacleSeparation is the minimum centre distance between two obstacles
	ObstacleSeparation = 120.0

	// CornerInset is the gap between a fallback corner obstacle and the field edge
	CornerInset = 40
)

// Leaderboard
const (
	LeaderboardSize = 10
)
