package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/engine"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestGameMotions(t *testing.T) {
	m := NewMachine()
	m.SetMode(ModeGame)

	tests := []struct {
		name   string
		ev     tcell.Event
		dx, dy int
	}{
		{"arrow up", key(tcell.KeyUp), 0, -1},
		{"arrow down", key(tcell.KeyDown), 0, 1},
		{"arrow left", key(tcell.KeyLeft), -1, 0},
		{"arrow right", key(tcell.KeyRight), 1, 0},
		{"w", runeKey('w'), 0, -1},
		{"A shifted", runeKey('A'), -1, 0},
		{"s", runeKey('s'), 0, 1},
		{"l", runeKey('l'), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := m.Process(tt.ev)
			if intent == nil || intent.Type != IntentMove {
				t.Fatalf("got %+v, want move", intent)
			}
			dx, dy := intent.Motion.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("delta (%d,%d), want (%d,%d)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestGameCommands(t *testing.T) {
	m := NewMachine()
	m.SetMode(ModeGame)

	if in := m.Process(runeKey(' ')); in == nil || in.Type != IntentTogglePause {
		t.Errorf("space = %+v, want pause toggle", in)
	}
	if in := m.Process(key(tcell.KeyEscape)); in == nil || in.Type != IntentMenu {
		t.Errorf("esc = %+v, want menu", in)
	}
	if in := m.Process(key(tcell.KeyCtrlC)); in == nil || in.Type != IntentQuit {
		t.Errorf("ctrl-c = %+v, want quit", in)
	}
	if in := m.Process(runeKey('z')); in != nil {
		t.Errorf("unbound rune = %+v, want nil", in)
	}
	if in := m.Process(tcell.NewEventResize(100, 40)); in == nil || in.Type != IntentResize {
		t.Errorf("resize = %+v", in)
	}
}

func TestMenuNameEntry(t *testing.T) {
	m := NewMachine()

	for _, r := range "wyatt" {
		if in := m.Process(runeKey(r)); in == nil || in.Type != IntentTextChar {
			t.Fatalf("rune %q = %+v, want text", r, in)
		}
	}
	m.Process(key(tcell.KeyBackspace2))
	if got := m.Name(); got != "wyat" {
		t.Errorf("name = %q, want wyat", got)
	}

	if in := m.Process(key(tcell.KeyEnter)); in == nil || in.Type != IntentStart {
		t.Errorf("enter = %+v, want start", in)
	}
	if in := m.Process(key(tcell.KeyEscape)); in == nil || in.Type != IntentQuit {
		t.Errorf("esc on menu = %+v, want quit", in)
	}
}

func TestMenuNameLimits(t *testing.T) {
	m := NewMachine()

	if in := m.Process(key(tcell.KeyBackspace)); in != nil {
		t.Errorf("backspace on empty name = %+v, want nil", in)
	}
	for i := 0; i < constants.MaxUsernameLength+5; i++ {
		m.Process(runeKey('x'))
	}
	if got := m.Name(); got != strings.Repeat("x", constants.MaxUsernameLength) {
		t.Errorf("name = %q, want %d runes", got, constants.MaxUsernameLength)
	}
}

func TestMouseFiresOnPressEdge(t *testing.T) {
	m := NewMachine()

	// Clicks on the menu are ignored but still tracked
	if in := m.Process(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone)); in != nil {
		t.Errorf("menu click = %+v, want nil", in)
	}
	m.SetMode(ModeGame)

	in := m.Process(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if in == nil || in.Type != IntentFire || in.Col != 10 || in.Row != 5 {
		t.Fatalf("press = %+v, want fire at (10,5)", in)
	}
	if in := m.Process(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone)); in != nil {
		t.Errorf("drag = %+v, want nil", in)
	}
	m.Process(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
	if in := m.Process(tcell.NewEventMouse(12, 6, tcell.Button1, tcell.ModNone)); in == nil || in.Type != IntentFire {
		t.Errorf("second press = %+v, want fire", in)
	}
	if in := m.Process(tcell.NewEventMouse(12, 6, tcell.Button2, tcell.ModNone)); in != nil {
		t.Errorf("right button = %+v, want nil", in)
	}
}

func TestModeFor(t *testing.T) {
	if ModeFor(engine.StateMenu) != ModeMenu {
		t.Error("menu state should map to menu mode")
	}
	for _, s := range []engine.State{engine.StatePlaying, engine.StatePaused, engine.StateGameOver} {
		if ModeFor(s) != ModeGame {
			t.Errorf("%s should map to game mode", s)
		}
	}
}
