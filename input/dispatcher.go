package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/log"
)

// Session is the command surface the dispatcher drives
type Session interface {
	State() engine.State
	Start(username string) error
	TogglePause() engine.State
	ReturnToMenu()
	MovePlayer(dx, dy int) bool
	Fire(x, y int) bool
}

// View is the renderer surface needed for prompts and mouse aiming
type View interface {
	SetPrompt(prompt string)
	Redraw()
	FieldPoint(col, row int) (x, y int, ok bool)
}

// Dispatcher applies parsed intents to a session
type Dispatcher struct {
	machine *Machine
	session Session
	view    View
	step    int
}

// NewDispatcher creates a dispatcher moving the player step units per key press
func NewDispatcher(session Session, view View, step int) *Dispatcher {
	return &Dispatcher{
		machine: NewMachine(),
		session: session,
		view:    view,
		step:    step,
	}
}

// HandleEvent parses and applies one terminal event, returning true when the program should quit
func (d *Dispatcher) HandleEvent(ev tcell.Event) bool {
	d.machine.SetMode(ModeFor(d.session.State()))

	intent := d.machine.Process(ev)
	if intent == nil {
		return false
	}
	return d.Apply(intent)
}

// Apply executes an intent, returning true when the program should quit
func (d *Dispatcher) Apply(intent *Intent) bool {
	switch intent.Type {
	case IntentQuit:
		return true

	case IntentResize:
		if d.view != nil {
			d.view.Redraw()
		}

	case IntentTextChar, IntentTextBackspace:
		if d.view != nil {
			d.view.SetPrompt(d.machine.Name())
		}

	case IntentStart:
		if err := d.session.Start(d.machine.Name()); err != nil {
			log.Warn("start rejected", "error", err)
		}

	case IntentTogglePause:
		d.session.TogglePause()

	case IntentMenu:
		d.session.ReturnToMenu()

	case IntentMove:
		dx, dy := intent.Motion.Delta()
		d.session.MovePlayer(dx*d.step, dy*d.step)

	case IntentFire:
		if d.view == nil {
			return false
		}
		if x, y, ok := d.view.FieldPoint(intent.Col, intent.Row); ok {
			d.session.Fire(x, y)
		}
	}
	return false
}
