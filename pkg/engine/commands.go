// pkg/engine/commands.go
package engine

// Commands is the per-frame input from the driver. Held keys map to the
// thrust and turn flags; one-shot presses map to the rest.
type Commands struct {
	ThrustForward  bool
	ThrustBackward bool
	TurnLeft       bool
	TurnRight      bool
	Fire           bool
	Brake          bool
	DebugToggle    bool
	Start          bool
	Quit           bool

	// OverrideDilation replaces the phase-derived dilation with Dilation
	// for this frame.
	OverrideDilation bool
	Dilation         float64
}

// WithDilation returns a copy of c that forces the given dilation.
func (c Commands) WithDilation(d float64) Commands {
	c.OverrideDilation = true
	c.Dilation = d
	return c
}
