package audio

import (
	"github.com/lixenwraith/gunslinger/config"
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/core"
)

// AudioConfig holds playback settings resolved from the game configuration
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int

	// EffectVolumes scales each cue before the master volume
	EffectVolumes [core.CueCount]float64
}

// DefaultAudioConfig returns enabled playback at half volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
	}
	cfg.EffectVolumes[core.CueShotFired] = 0.6
	cfg.EffectVolumes[core.CueEnemyFired] = 0.35
	cfg.EffectVolumes[core.CueEnemyKilled] = 0.7
	cfg.EffectVolumes[core.CuePlayerDamaged] = 0.8
	cfg.EffectVolumes[core.CueMusicMenu] = 0.25
	cfg.EffectVolumes[core.CueMusicPlaying] = 0.3
	return cfg
}

// FromConfig derives audio settings from the game configuration
func FromConfig(c config.Config) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.AudioEnabled
	cfg.MasterVolume = min(max(c.MasterVolume, 0), 1)
	return cfg
}

// volume returns the effective gain for a cue
func (c *AudioConfig) volume(cue core.Cue) float64 {
	if cue < 0 || cue >= core.CueCount {
		return 0
	}
	return c.EffectVolumes[cue] * c.MasterVolume
}
