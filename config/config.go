// Package config resolves runtime tunables from defaults, an optional .env file and GUNSLINGER_* variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/gunslinger/constants"
)

// EnvPrefix prefixes every recognized environment variable
const EnvPrefix = "GUNSLINGER_"

// Config holds every gameplay and runtime tunable
type Config struct {
	// Field
	FieldWidth  int
	FieldHeight int
	ExitMargin  int

	// Timing, zero disables the background driver (manual ticking)
	TickInterval   time.Duration
	SpawnInterval  time.Duration
	VolleyInterval time.Duration

	// Player economy
	MaxHealth    int
	MaxAmmo      int
	StartAmmo    int
	PlayerStep   int
	EnemyDamage  int
	KillScore    int
	NearMissAmmo int

	// Speeds in field units per tick
	PlayerShotSpeed float64
	EnemyShotSpeed  float64
	PursuitSpeed    float64

	// Obstacle placement
	ObstacleCount      int
	ObstacleSize       int
	ObstacleAttempts   int
	SpawnClearance     float64
	ObstacleSeparation float64
	CornerInset        int

	// Runtime
	DSN             string
	LogFile         string
	AudioEnabled    bool
	MasterVolume    float64
	BanterEnabled   bool
	LeaderboardSize int
	Seed            int64 // 0 seeds from wall clock
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		FieldWidth:  constants.FieldWidth,
		FieldHeight: constants.FieldHeight,
		ExitMargin:  constants.ExitMargin,

		TickInterval:   constants.GameUpdateInterval,
		SpawnInterval:  constants.EnemySpawnInterval,
		VolleyInterval: constants.EnemyVolleyInterval,

		MaxHealth:    constants.MaxHealth,
		MaxAmmo:      constants.MaxAmmo,
		StartAmmo:    constants.StartAmmo,
		PlayerStep:   constants.PlayerStep,
		EnemyDamage:  constants.EnemyShotDamage,
		KillScore:    constants.KillScore,
		NearMissAmmo: constants.NearMissAmmo,

		PlayerShotSpeed: constants.PlayerShotSpeed,
		EnemyShotSpeed:  constants.EnemyShotSpeed,
		PursuitSpeed:    constants.EnemyPursuitSpeed,

		ObstacleCount:      constants.ObstacleCount,
		ObstacleSize:       constants.ObstacleSize,
		ObstacleAttempts:   constants.ObstacleAttempts,
		SpawnClearance:     constants.SpawnClearance,
		ObstacleSeparation: constants.ObstacleSeparation,
		CornerInset:        constants.CornerInset,

		DSN:             "gunslinger.db",
		LogFile:         "gunslinger.log",
		AudioEnabled:    true,
		MasterVolume:    0.5,
		BanterEnabled:   true,
		LeaderboardSize: constants.LeaderboardSize,
	}
}

// Load returns defaults overridden by .env entries and environment variables
// A missing .env file is not an error; malformed values are ignored
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Default(), fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	cfg.Sanitize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	envInt("WIDTH", &c.FieldWidth)
	envInt("HEIGHT", &c.FieldHeight)
	envInt("EXIT_MARGIN", &c.ExitMargin)

	envDuration("TICK", &c.TickInterval)
	envDuration("SPAWN_INTERVAL", &c.SpawnInterval)
	envDuration("VOLLEY_INTERVAL", &c.VolleyInterval)

	envInt("MAX_HEALTH", &c.MaxHealth)
	envInt("MAX_AMMO", &c.MaxAmmo)
	envInt("START_AMMO", &c.StartAmmo)
	envInt("PLAYER_STEP", &c.PlayerStep)
	envInt("ENEMY_DAMAGE", &c.EnemyDamage)
	envInt("KILL_SCORE", &c.KillScore)
	envInt("NEAR_MISS_AMMO", &c.NearMissAmmo)

	envFloat("PLAYER_SHOT_SPEED", &c.PlayerShotSpeed)
	envFloat("ENEMY_SHOT_SPEED", &c.EnemyShotSpeed)
	envFloat("PURSUIT_SPEED", &c.PursuitSpeed)

	envInt("OBSTACLES", &c.ObstacleCount)
	envInt("OBSTACLE_ATTEMPTS", &c.ObstacleAttempts)

	if v, ok := os.LookupEnv(EnvPrefix + "DSN"); ok && v != "" {
		c.DSN = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	envBool("AUDIO", &c.AudioEnabled)
	envBool("BANTER", &c.BanterEnabled)
	envInt("LEADERBOARD", &c.LeaderboardSize)

	// Volume 0-100
	var vol int
	if envInt("VOLUME", &vol) {
		c.MasterVolume = float64(vol) / 100.0
	}

	var seed int
	if envInt("SEED", &seed) {
		c.Seed = int64(seed)
	}
}

// Sanitize forces caps and sizes into usable ranges
func (c *Config) Sanitize() {
	d := Default()
	if c.FieldWidth <= 0 {
		c.FieldWidth = d.FieldWidth
	}
	if c.FieldHeight <= 0 {
		c.FieldHeight = d.FieldHeight
	}
	if c.ExitMargin < 0 {
		c.ExitMargin = 0
	}
	if c.TickInterval < 0 {
		c.TickInterval = 0
	}
	if c.SpawnInterval < 0 {
		c.SpawnInterval = 0
	}
	if c.VolleyInterval < 0 {
		c.VolleyInterval = 0
	}
	if c.MaxHealth <= 0 {
		c.MaxHealth = d.MaxHealth
	}
	if c.MaxAmmo <= 0 {
		c.MaxAmmo = d.MaxAmmo
	}
	c.StartAmmo = clamp(c.StartAmmo, 0, c.MaxAmmo)
	if c.PlayerStep <= 0 {
		c.PlayerStep = d.PlayerStep
	}
	// A non-moving shot never exits and is never purged
	if c.PlayerShotSpeed <= 0 {
		c.PlayerShotSpeed = d.PlayerShotSpeed
	}
	if c.EnemyShotSpeed <= 0 {
		c.EnemyShotSpeed = d.EnemyShotSpeed
	}
	if c.PursuitSpeed < 0 {
		c.PursuitSpeed = d.PursuitSpeed
	}
	if c.ObstacleCount < 0 {
		c.ObstacleCount = 0
	}
	if c.ObstacleAttempts <= 0 {
		c.ObstacleAttempts = 1
	}
	if c.LeaderboardSize <= 0 {
		c.LeaderboardSize = d.LeaderboardSize
	}
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
}

// ErrManualTiming is returned by RequireClock when an interval is zero
var ErrManualTiming = errors.New("zero interval selects manual ticking")

// RequireClock rejects configurations that leave a driver to manual ticking
// Interactive play has no manual driver, so every interval must be positive
func (c Config) RequireClock() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("%sTICK: %w", EnvPrefix, ErrManualTiming)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%sSPAWN_INTERVAL: %w", EnvPrefix, ErrManualTiming)
	case c.VolleyInterval <= 0:
		return fmt.Errorf("%sVOLLEY_INTERVAL: %w", EnvPrefix, ErrManualTiming)
	}
	return nil
}

func envInt(key string, dst *int) bool {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	*dst = n
	return true
}

func envFloat(key string, dst *float64) {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envBool(key string, dst *bool) {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Durations accept Go syntax ("16ms") or bare milliseconds
func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
		return
	}
	if ms, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(ms) * time.Millisecond
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
