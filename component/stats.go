package component

// SessionStats accumulates per-session accounting for the history record
type SessionStats struct {
	Username string

	Score         int // Mirrors player score
	ShotsFired    int
	ShotsHit      int
	ShotsMissed   int // Left the field without hitting anything
	AmmoRemaining int

	Finalized bool
}

// NewSessionStats creates empty stats for a session
func NewSessionStats(username string) *SessionStats {
	return &SessionStats{Username: username}
}

// RecordShot counts a fired projectile and the ammo left after it
func (s *SessionStats) RecordShot(ammoLeft int) {
	s.ShotsFired++
	s.AmmoRemaining = ammoLeft
}

// RecordMiss counts a projectile that left the field
func (s *SessionStats) RecordMiss() {
	s.ShotsMissed++
}

// RecordHit counts a kill and mirrors the new score
func (s *SessionStats) RecordHit(score int) {
	s.ShotsHit++
	s.Score = score
}

// Finalize freezes the closing values; later calls are ignored
func (s *SessionStats) Finalize(score, ammo int) bool {
	if s.Finalized {
		return false
	}
	s.Score = score
	s.AmmoRemaining = ammo
	s.Finalized = true
	return true
}

// Accuracy returns hits over fired shots in [0, 1]
func (s *SessionStats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired)
}
