package constants

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length passed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond
)

// Gunshot timing (player shot)
const (
	ShotSoundDuration = 90 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 70 * time.Millisecond
)

// Enemy shot timing
const (
	EnemyShotSoundDuration = 120 * time.Millisecond
	EnemyShotSoundAttack   = 2 * time.Millisecond
	EnemyShotSoundRelease  = 90 * time.Millisecond
)

// Kill chime timing
const (
	KillSoundNote1Duration = 80 * time.Millisecond
	KillSoundNote2Duration = 220 * time.Millisecond
	KillSoundAttack        = 5 * time.Millisecond
	KillSoundNote1Release  = 40 * time.Millisecond
	KillSoundNote2Release  = 180 * time.Millisecond
)

// Damage buzz timing
const (
	HurtSoundDuration = 150 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 60 * time.Millisecond
)

// Music loops
const (
	// MusicNoteDuration is the length of one step in the looping music patterns
	MusicNoteDuration = 250 * time.Millisecond
	MusicNoteAttack   = 10 * time.Millisecond
	MusicNoteRelease  = 120 * time.Millisecond
)
