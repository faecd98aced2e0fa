package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, Ctrl+Q, ESC on the menu
	IntentResize // Terminal resize event

	// Menu
	IntentStart         // Enter
	IntentTextChar      // Printable character appended to the name
	IntentTextBackspace // Backspace

	// Game
	IntentMove        // Arrows, wasd, hjkl
	IntentFire        // Left-click
	IntentTogglePause // Space, p
	IntentMenu        // ESC during a session
)

// MotionOp identifies a movement direction
type MotionOp uint8

const (
	MotionNone  MotionOp = iota
	MotionLeft           // h, a, Left arrow
	MotionRight          // l, d, Right arrow
	MotionUp             // k, w, Up arrow
	MotionDown           // j, s, Down arrow
)

// Delta returns the unit step of a motion in field axes (y grows downward)
func (m MotionOp) Delta() (dx, dy int) {
	switch m {
	case MotionLeft:
		return -1, 0
	case MotionRight:
		return 1, 0
	case MotionUp:
		return 0, -1
	case MotionDown:
		return 0, 1
	}
	return 0, 0
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	Motion MotionOp
	Char   rune

	// Screen cell of a mouse intent
	Col, Row int
}
