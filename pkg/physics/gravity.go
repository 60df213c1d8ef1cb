package physics

import (
	"errors"
	"fmt"
	"math"
)

const (
	// FieldRangeFactor relates a body's radius to the reach of its pull.
	FieldRangeFactor = 4.0
	// GravityForce is the pull of every body at full strength.
	GravityForce = 0.05
)

// ErrInvalidRadius is returned when a body is built with a radius that
// would leave it without a usable gravity field.
var ErrInvalidRadius = errors.New("body radius must be positive and finite")

// Body is a fixed mass source. Radius only matters for drawing; the pull
// depends on FieldRange and Force.
type Body struct {
	Position   Vector2D
	Radius     float64
	FieldRange float64
	Force      float64
}

// NewBody creates a body at position with a field reaching
// FieldRangeFactor times its radius.
func NewBody(position Vector2D, radius float64) (Body, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Body{}, fmt.Errorf("new body at (%g, %g) with radius %g: %w",
			position.X, position.Y, radius, ErrInvalidRadius)
	}
	return Body{
		Position:   position,
		Radius:     radius,
		FieldRange: radius * FieldRangeFactor,
		Force:      GravityForce,
	}, nil
}

// FalloffScale is the cubic falloff applied inside a field. Outside the
// field, on its edge and at the exact center of the body it is zero.
func FalloffScale(ratio float64) float64 {
	if ratio > 0 && ratio < 1 {
		return 1 - ratio*ratio*ratio
	}
	return 0
}

// Ratio returns how far into the body's field pos sits, 0 at the center and
// 1 on the edge.
func (b Body) Ratio(pos Vector2D) float64 {
	return pos.Distance(b.Position) / b.FieldRange
}

// Pull returns the velocity change the body applies to a craft at pos for a
// tick. Each axis is pulled by a full ±1 towards the body, so the result is
// not radial.
func (b Body) Pull(pos Vector2D) Vector2D {
	return b.pull(pos, FalloffScale(b.Ratio(pos)))
}

func (b Body) pull(pos Vector2D, scale float64) Vector2D {
	flipX, flipY := -1.0, -1.0
	if pos.X < b.Position.X {
		flipX = 1
	}
	if pos.Y < b.Position.Y {
		flipY = 1
	}
	return Vector2D{
		X: flipX * scale * b.Force,
		Y: flipY * scale * b.Force,
	}
}

// Observer receives the intermediate values of every body evaluated during
// a gravity pass.
type Observer interface {
	ObserveGravity(index int, body Body, ratio, scale float64)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(index int, body Body, ratio, scale float64)

// ObserveGravity calls f.
func (f ObserverFunc) ObserveGravity(index int, body Body, ratio, scale float64) {
	f(index, body, ratio, scale)
}

// GravityField is the set of bodies acting on a craft. Observer is optional.
type GravityField struct {
	Bodies   []Body
	Observer Observer
}

// Apply accumulates every body's pull on top of the craft's current
// velocity, which already holds this tick's thrust, and stores the sum as
// the new velocity.
func (g GravityField) Apply(c *Craft) {
	acc := c.Velocity
	for i, b := range g.Bodies {
		ratio := b.Ratio(c.Position)
		scale := FalloffScale(ratio)
		if g.Observer != nil {
			g.Observer.ObserveGravity(i, b, ratio, scale)
		}
		acc = acc.Add(b.pull(c.Position, scale))
	}
	c.Velocity = acc
}

// ApplyGravity applies the pull of bodies to the craft without observation.
func ApplyGravity(c *Craft, bodies []Body) {
	GravityField{Bodies: bodies}.Apply(c)
}
