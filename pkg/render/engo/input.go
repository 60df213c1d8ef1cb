// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-gravity/pkg/engine"
)

const (
	buttonThrust    = "thrust"
	buttonTurnLeft  = "turnLeft"
	buttonTurnRight = "turnRight"
	buttonQuit      = "quit"
	buttonZoomIn    = "zoomIn"
	buttonZoomOut   = "zoomOut"
	buttonResetZoom = "resetZoom"
)

// InputSystem samples the keyboard once per frame. It implements
// engine.InputSource for the physics system.
type InputSystem struct {
	state engine.Input
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update reads the bound buttons
func (is *InputSystem) Update(dt float32) {
	is.state = engine.Input{
		Thrust:      engo.Input.Button(buttonThrust).Down(),
		RotateLeft:  engo.Input.Button(buttonTurnLeft).Down(),
		RotateRight: engo.Input.Button(buttonTurnRight).Down(),
	}
	if engo.Input.Button(buttonQuit).JustPressed() {
		engo.Exit()
	}
}

// Poll implements engine.InputSource
func (is *InputSystem) Poll() engine.Input {
	return is.state
}

// SetupInputBindings registers the key bindings for the simulation
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonTurnLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonTurnRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape)
	engo.Input.RegisterButton(buttonZoomIn, engo.KeyE)
	engo.Input.RegisterButton(buttonZoomOut, engo.KeyQ)
	engo.Input.RegisterButton(buttonResetZoom, engo.KeyR)
}
