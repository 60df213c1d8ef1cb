package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravity/pkg/engine"
)

// Control is one of the simulation's inputs.
type Control int

const (
	RotateLeft Control = iota
	RotateRight
	Thrust
	controlCount
)

// TerminalInput turns terminal key presses into held controls. Terminals
// report presses and repeats but no releases, so a control stays active for
// a hold window after its last press.
type TerminalInput struct {
	mu       sync.Mutex
	hold     time.Duration
	now      func() time.Time
	lastSeen [controlCount]time.Time
}

// NewTerminalInput creates an input latch with the given hold window.
func NewTerminalInput(hold time.Duration) *TerminalInput {
	return &TerminalInput{hold: hold, now: time.Now}
}

// Press marks control as pressed at t.
func (in *TerminalInput) Press(c Control, t time.Time) {
	if c < 0 || c >= controlCount {
		return
	}
	in.mu.Lock()
	in.lastSeen[c] = t
	in.mu.Unlock()
}

// Poll implements engine.InputSource.
func (in *TerminalInput) Poll() engine.Input {
	return in.StateAt(in.now())
}

// StateAt returns the controls held at t.
func (in *TerminalInput) StateAt(t time.Time) engine.Input {
	in.mu.Lock()
	defer in.mu.Unlock()

	held := func(c Control) bool {
		last := in.lastSeen[c]
		return !last.IsZero() && t.Sub(last) <= in.hold
	}
	return engine.Input{
		RotateLeft:  held(RotateLeft),
		RotateRight: held(RotateRight),
		Thrust:      held(Thrust),
	}
}

// HandleEvent records key events from the screen. It returns false when the
// event asks to quit.
func (in *TerminalInput) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	if IsQuitKey(key.Key(), key.Rune()) {
		return false
	}
	if c, ok := ControlForKey(key.Key(), key.Rune()); ok {
		in.Press(c, in.now())
	}
	return true
}

// ControlForKey maps arrow keys and WASD-style letters to controls.
func ControlForKey(k tcell.Key, r rune) (Control, bool) {
	switch k {
	case tcell.KeyLeft:
		return RotateLeft, true
	case tcell.KeyRight:
		return RotateRight, true
	case tcell.KeyUp:
		return Thrust, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return RotateLeft, true
		case 'd', 'D':
			return RotateRight, true
		case 'w', 'W':
			return Thrust, true
		}
	}
	return 0, false
}

// IsQuitKey reports whether a key ends the session.
func IsQuitKey(k tcell.Key, r rune) bool {
	if k == tcell.KeyEscape || k == tcell.KeyCtrlC {
		return true
	}
	return k == tcell.KeyRune && (r == 'q' || r == 'Q')
}
