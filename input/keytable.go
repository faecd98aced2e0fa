package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	IntentType IntentType
	Motion     MotionOp
}

// KeyTable maps keys to behaviors for both modes
type KeyTable struct {
	// Keys honoured in every mode
	SystemKeys map[tcell.Key]KeyEntry

	// Menu special keys; runes on the menu are name text
	MenuKeys map[tcell.Key]KeyEntry

	// Game bindings
	GameKeys  map[tcell.Key]KeyEntry
	GameRunes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SystemKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: {IntentType: IntentQuit},
			tcell.KeyCtrlQ: {IntentType: IntentQuit},
		},

		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:      {IntentType: IntentStart},
			tcell.KeyEscape:     {IntentType: IntentQuit},
			tcell.KeyBackspace:  {IntentType: IntentTextBackspace},
			tcell.KeyBackspace2: {IntentType: IntentTextBackspace},
		},

		GameKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentMenu},
			tcell.KeyUp:     {IntentType: IntentMove, Motion: MotionUp},
			tcell.KeyDown:   {IntentType: IntentMove, Motion: MotionDown},
			tcell.KeyLeft:   {IntentType: IntentMove, Motion: MotionLeft},
			tcell.KeyRight:  {IntentType: IntentMove, Motion: MotionRight},
		},

		GameRunes: map[rune]KeyEntry{
			'w': {IntentType: IntentMove, Motion: MotionUp},
			'a': {IntentType: IntentMove, Motion: MotionLeft},
			's': {IntentType: IntentMove, Motion: MotionDown},
			'd': {IntentType: IntentMove, Motion: MotionRight},
			'k': {IntentType: IntentMove, Motion: MotionUp},
			'h': {IntentType: IntentMove, Motion: MotionLeft},
			'j': {IntentType: IntentMove, Motion: MotionDown},
			'l': {IntentType: IntentMove, Motion: MotionRight},

			' ': {IntentType: IntentTogglePause},
			'p': {IntentType: IntentTogglePause},
		},
	}
}
