// Package input turns terminal events into session commands.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunslinger/constants"
)

// Machine is the input state machine
// Parses tcell events into semantic Intents and owns the menu name buffer
type Machine struct {
	mode     InputMode
	keyTable *KeyTable

	name []rune

	// Mouse button state of the previous event, fire triggers on press only
	buttons tcell.ButtonMask
}

// NewMachine creates a new input machine in menu mode
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeMenu,
		keyTable: DefaultKeyTable(),
		name:     make([]rune, 0, constants.MaxUsernameLength),
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	if mode != m.mode {
		m.buttons = 0
	}
	m.mode = mode
}

// Mode returns the current parser mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Name returns the typed username
func (m *Machine) Name() string {
	return string(m.name)
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning in the current mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if entry, ok := m.keyTable.SystemKeys[ev.Key()]; ok {
		return &Intent{Type: entry.IntentType}
	}

	switch m.mode {
	case ModeMenu:
		return m.processMenuKey(ev)
	case ModeGame:
		if ev.Key() == tcell.KeyRune {
			if entry, ok := m.keyTable.GameRunes[unicode.ToLower(ev.Rune())]; ok {
				return &Intent{Type: entry.IntentType, Motion: entry.Motion}
			}
			return nil
		}
		if entry, ok := m.keyTable.GameKeys[ev.Key()]; ok {
			return &Intent{Type: entry.IntentType, Motion: entry.Motion}
		}
	}
	return nil
}

func (m *Machine) processMenuKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if !unicode.IsPrint(r) || len(m.name) >= constants.MaxUsernameLength {
			return nil
		}
		m.name = append(m.name, r)
		return &Intent{Type: IntentTextChar, Char: r}
	}

	entry, ok := m.keyTable.MenuKeys[ev.Key()]
	if !ok {
		return nil
	}
	if entry.IntentType == IntentTextBackspace {
		if len(m.name) == 0 {
			return nil
		}
		m.name = m.name[:len(m.name)-1]
	}
	return &Intent{Type: entry.IntentType}
}

// processMouse emits a fire intent on the left button's press edge
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0
	m.buttons = buttons

	if m.mode != ModeGame || !pressed {
		return nil
	}
	col, row := ev.Position()
	return &Intent{Type: IntentFire, Col: col, Row: row}
}
