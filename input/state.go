package input

import "github.com/lixenwraith/gunslinger/engine"

// InputMode selects the key table in use
// Kept in sync with the session state by the Dispatcher
type InputMode uint8

const (
	ModeMenu InputMode = iota // Name entry and leaderboard
	ModeGame                  // Playing, paused or ending
)

// ModeFor maps a session state to its input mode
func ModeFor(s engine.State) InputMode {
	if s == engine.StateMenu {
		return ModeMenu
	}
	return ModeGame
}
