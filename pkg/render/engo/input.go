// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// Button names
const (
	btnThrust  = "thrust"
	btnReverse = "reverse"
	btnLeft    = "turnLeft"
	btnRight   = "turnRight"
	btnFire    = "fire"
	btnBrake   = "brake"
	btnDebug   = "debug"
	btnStart   = "start"
	btnQuit    = "quit"
	btnFreeze  = "freeze"
	btnSlow    = "slow"
	btnFast    = "fast"
)

// Buttons reports button state by name
type Buttons interface {
	Down(name string) bool
	JustPressed(name string) bool
	// MouseFire reports a left mouse button press.
	MouseFire() bool
}

// engoButtons reads the global engo input manager
type engoButtons struct{}

func (engoButtons) Down(name string) bool        { return engo.Input.Button(name).Down() }
func (engoButtons) JustPressed(name string) bool { return engo.Input.Button(name).JustPressed() }
func (engoButtons) MouseFire() bool {
	return engo.Input.Mouse.Button == engo.MouseButtonLeft && engo.Input.Mouse.Action == engo.Press
}

// InputSystem turns key state into engine commands once per frame
type InputSystem struct {
	buttons Buttons
	slow    float64
	fast    float64
	debug   bool
}

// NewInputSystem creates an input system reading from buttons, or from
// engo's input manager when buttons is nil.
func NewInputSystem(buttons Buttons, slow, fast float64) *InputSystem {
	if buttons == nil {
		buttons = engoButtons{}
	}
	return &InputSystem{buttons: buttons, slow: slow, fast: fast}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update satisfies the ecs.System interface. Commands are pulled by the
// scene instead.
func (is *InputSystem) Update(dt float32) {}

// SetDebug tells the system whether debug mode is on; the mouse only
// fires in debug mode.
func (is *InputSystem) SetDebug(debug bool) {
	is.debug = debug
}

// Commands reads the current button state
func (is *InputSystem) Commands() engine.Commands {
	b := is.buttons
	cmds := engine.Commands{
		ThrustForward:  b.Down(btnThrust),
		ThrustBackward: b.Down(btnReverse),
		TurnLeft:       b.Down(btnLeft),
		TurnRight:      b.Down(btnRight),
		Fire:           b.JustPressed(btnFire) || (is.debug && b.MouseFire()),
		Brake:          b.JustPressed(btnBrake),
		DebugToggle:    b.JustPressed(btnDebug),
		Start:          b.JustPressed(btnStart),
		Quit:           b.JustPressed(btnQuit),
	}

	switch {
	case b.Down(btnFreeze):
		cmds = cmds.WithDilation(0)
	case b.Down(btnSlow):
		cmds = cmds.WithDilation(is.slow)
	case b.Down(btnFast):
		cmds = cmds.WithDilation(is.fast)
	}
	return cmds
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(btnThrust, engo.KeyArrowUp)
	engo.Input.RegisterButton(btnReverse, engo.KeyArrowDown)
	engo.Input.RegisterButton(btnLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(btnRight, engo.KeyArrowRight)

	engo.Input.RegisterButton(btnFire, engo.KeySpace)
	engo.Input.RegisterButton(btnBrake, engo.KeyS)
	engo.Input.RegisterButton(btnDebug, engo.KeyF3)

	engo.Input.RegisterButton(btnStart, engo.KeyEnter)
	engo.Input.RegisterButton(btnQuit, engo.KeyEscape)

	engo.Input.RegisterButton(btnFreeze, engo.KeyLeftControl)
	engo.Input.RegisterButton(btnSlow, engo.KeyLeftShift)
	engo.Input.RegisterButton(btnFast, engo.KeyTab)
}
