// pkg/render/input.go
package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// DefaultHoldWindow is how long a key counts as held after its last
// press or repeat. Terminals report no key releases.
const DefaultHoldWindow = 150 * time.Millisecond

type action int

const (
	actThrustForward action = iota
	actThrustBackward
	actTurnLeft
	actTurnRight
	actFreeze
	actSlow
	actFast
	actCount
)

// TerminalInput turns tcell key events into per-frame engine commands.
// Movement and dilation keys behave as held for DefaultHoldWindow after
// each press; the rest are one-shot and consumed by Commands.
type TerminalInput struct {
	mu      sync.Mutex
	held    [actCount]time.Time
	pending engine.Commands
	slow    float64
	fast    float64
	hold    time.Duration
	now     func() time.Time
}

// NewTerminalInput creates an input mapper with the given slow and fast
// dilation presets.
func NewTerminalInput(slow, fast float64) *TerminalInput {
	return &TerminalInput{
		slow: slow,
		fast: fast,
		hold: DefaultHoldWindow,
		now:  time.Now,
	}
}

// HandleEvent records a tcell event. It is safe to call from the polling
// goroutine while the frame loop reads Commands.
func (in *TerminalInput) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	now := in.now()
	switch key.Key() {
	case tcell.KeyUp:
		in.held[actThrustForward] = now
	case tcell.KeyDown:
		in.held[actThrustBackward] = now
	case tcell.KeyLeft:
		in.held[actTurnLeft] = now
	case tcell.KeyRight:
		in.held[actTurnRight] = now
	case tcell.KeyTab:
		in.held[actFast] = now
	case tcell.KeyF3:
		in.pending.DebugToggle = true
	case tcell.KeyEnter:
		in.pending.Start = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.pending.Quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			in.pending.Fire = true
		case 's', 'S':
			in.pending.Brake = true
		case 'z', 'Z':
			in.held[actFreeze] = now
		case 'x', 'X':
			in.held[actSlow] = now
		}
	}
}

// Commands returns the commands for this frame and clears the one-shot
// flags.
func (in *TerminalInput) Commands() engine.Commands {
	in.mu.Lock()
	defer in.mu.Unlock()

	now := in.now()
	isHeld := func(a action) bool {
		t := in.held[a]
		return !t.IsZero() && now.Sub(t) <= in.hold
	}

	cmds := in.pending
	in.pending = engine.Commands{}

	cmds.ThrustForward = isHeld(actThrustForward)
	cmds.ThrustBackward = isHeld(actThrustBackward)
	cmds.TurnLeft = isHeld(actTurnLeft)
	cmds.TurnRight = isHeld(actTurnRight)

	switch {
	case isHeld(actFreeze):
		cmds = cmds.WithDilation(0)
	case isHeld(actSlow):
		cmds = cmds.WithDilation(in.slow)
	case isHeld(actFast):
		cmds = cmds.WithDilation(in.fast)
	}
	return cmds
}
