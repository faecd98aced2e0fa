package core

// Cue is an audio cue emitted by the simulation
type Cue int

const (
	CueShotFired     Cue = iota // Player shot created
	CueEnemyFired               // Volley with at least one shot
	CueEnemyKilled              // Player projectile hit an enemy
	CuePlayerDamaged            // Enemy projectile hit the player
	CueMusicMenu                // Enter menu
	CueMusicPlaying             // Enter playing
	CueMusicStop                // Pause or game over
	CueCount
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueShotFired:
		return "shot_fired"
	case CueEnemyFired:
		return "enemy_fired"
	case CueEnemyKilled:
		return "enemy_killed"
	case CuePlayerDamaged:
		return "player_damaged"
	case CueMusicMenu:
		return "music_menu"
	case CueMusicPlaying:
		return "music_playing"
	case CueMusicStop:
		return "music_stop"
	default:
		return "unknown"
	}
}

// Notifier receives audio cues; implementations must not block the caller
type Notifier interface {
	Notify(cue Cue)
}

// NopNotifier discards every cue
type NopNotifier struct{}

func (NopNotifier) Notify(Cue) {}
