package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesTuning(t *testing.T) {
	c := Default()
	if c.FieldWidth != 800 || c.FieldHeight != 600 {
		t.Errorf("field = %dx%d", c.FieldWidth, c.FieldHeight)
	}
	if c.MaxHealth != 100 || c.MaxAmmo != 50 || c.StartAmmo != 20 {
		t.Errorf("economy = %d/%d/%d", c.MaxHealth, c.MaxAmmo, c.StartAmmo)
	}
	if c.EnemyDamage != 10 || c.KillScore != 100 || c.NearMissAmmo != 1 {
		t.Errorf("rewards = %d/%d/%d", c.EnemyDamage, c.KillScore, c.NearMissAmmo)
	}
	if c.PlayerShotSpeed != 8 || c.EnemyShotSpeed != 4 {
		t.Errorf("speeds = %v/%v", c.PlayerShotSpeed, c.EnemyShotSpeed)
	}
	if c.SpawnInterval != 3*time.Second || c.VolleyInterval != 1500*time.Millisecond {
		t.Errorf("intervals = %v/%v", c.SpawnInterval, c.VolleyInterval)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GUNSLINGER_MAX_AMMO", "30")
	t.Setenv("GUNSLINGER_START_AMMO", "99")
	t.Setenv("GUNSLINGER_TICK", "0")
	t.Setenv("GUNSLINGER_VOLLEY_INTERVAL", "750")
	t.Setenv("GUNSLINGER_PURSUIT_SPEED", "1.25")
	t.Setenv("GUNSLINGER_AUDIO", "false")
	t.Setenv("GUNSLINGER_VOLUME", "80")
	t.Setenv("GUNSLINGER_KILL_SCORE", "not-a-number")

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.MaxAmmo != 30 {
		t.Errorf("MaxAmmo = %d, want 30", c.MaxAmmo)
	}
	if c.StartAmmo != 30 {
		t.Errorf("StartAmmo = %d, want clamped to 30", c.StartAmmo)
	}
	if c.TickInterval != 0 {
		t.Errorf("TickInterval = %v, want 0", c.TickInterval)
	}
	if c.VolleyInterval != 750*time.Millisecond {
		t.Errorf("VolleyInterval = %v", c.VolleyInterval)
	}
	if c.PursuitSpeed != 1.25 {
		t.Errorf("PursuitSpeed = %v", c.PursuitSpeed)
	}
	if c.AudioEnabled {
		t.Error("AudioEnabled should be false")
	}
	if c.MasterVolume != 0.8 {
		t.Errorf("MasterVolume = %v", c.MasterVolume)
	}
	if c.KillScore != 100 {
		t.Errorf("malformed KillScore applied: %d", c.KillScore)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("GUNSLINGER_DSN=postgres://localhost/game\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("GUNSLINGER_DSN") })

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DSN != "postgres://localhost/game" {
		t.Errorf("DSN = %q", c.DSN)
	}
}

func TestSanitize(t *testing.T) {
	c := Config{MaxAmmo: -1, StartAmmo: -5, MasterVolume: 3, ObstacleCount: -2, EnemyShotSpeed: -4, PursuitSpeed: -1}
	c.Sanitize()

	if c.PlayerShotSpeed != 8 || c.EnemyShotSpeed != 4 || c.PursuitSpeed != 0.5 {
		t.Errorf("speeds = %v/%v/%v, want defaults", c.PlayerShotSpeed, c.EnemyShotSpeed, c.PursuitSpeed)
	}

	if c.MaxAmmo != 50 {
		t.Errorf("MaxAmmo = %d", c.MaxAmmo)
	}
	if c.StartAmmo != 0 {
		t.Errorf("StartAmmo = %d", c.StartAmmo)
	}
	if c.MasterVolume != 1 {
		t.Errorf("MasterVolume = %v", c.MasterVolume)
	}
	if c.ObstacleCount != 0 {
		t.Errorf("ObstacleCount = %d", c.ObstacleCount)
	}
	if c.FieldWidth != 800 || c.LeaderboardSize != 10 {
		t.Errorf("defaults not restored: %d %d", c.FieldWidth, c.LeaderboardSize)
	}
}

func TestRequireClock(t *testing.T) {
	if err := Default().RequireClock(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	tests := []struct {
		name string
		tune func(*Config)
	}{
		{"tick", func(c *Config) { c.TickInterval = 0 }},
		{"spawn", func(c *Config) { c.SpawnInterval = 0 }},
		{"volley", func(c *Config) { c.VolleyInterval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.tune(&c)
			if err := c.RequireClock(); !errors.Is(err, ErrManualTiming) {
				t.Errorf("err = %v, want ErrManualTiming", err)
			}
		})
	}
}
