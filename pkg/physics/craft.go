package physics

import "math"

// Craft is the mutable state of the player-controlled vehicle. Both the
// thrust and gravity models write to Velocity; Position and Rotation are
// advanced by the caller.
type Craft struct {
	Position Vector2D
	Velocity Vector2D
	Rotation float64 // radians, unbounded
}

// Rotate turns the craft by the given number of degrees. Positive values
// turn clockwise on screen.
func (c *Craft) Rotate(degrees float64) {
	c.Rotation += degrees * math.Pi / 180
}

// Advance integrates position from velocity for a single tick.
func (c *Craft) Advance() {
	c.Position = c.Position.Add(c.Velocity)
}
