package constants

import "time"

// Combat rules
const (
	// EnemyShotDamage is the health removed by one enemy projectile
	EnemyShotDamage = 10

	// KillScore is awarded per enemy killed
	KillScore = 100

	// NearMissAmmo is granted when an enemy projectile leaves the field
	NearMissAmmo = 1
)

// Speeds in units per tick
const (
	PlayerShotSpeed = 8.0
	EnemyShotSpeed  = 4.0

	// EnemyPursuitSpeed is the difficulty knob, sensible range 0.5-1.5
	EnemyPursuitSpeed = 0.5
)

// Spawner timers
const (
	EnemySpawnInterval  = 3000 * time.Millisecond
	EnemyVolleyInterval = 1500 * time.Millisecond

	// EnemySpawnBand is the height of the spawn strip above the bottom margin
	EnemySpawnBand = 50

	// EnemySpawnInset keeps spawns away from the side and bottom edges
	EnemySpawnInset = 50
)

// Banter subtitles
const (
	BanterDuration   = 3 * time.Second
	BanterCooldown   = 5 * time.Second
	BanterFade       = 500 * time.Millisecond
	BanterShotChance = 0.3
)
