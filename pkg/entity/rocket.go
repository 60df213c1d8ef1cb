package entity

import (
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// Rocket is the player's craft together with its sprite size.
type Rocket struct {
	ID     ID
	Craft  physics.Craft
	Width  float64
	Height float64
}

// NewRocket creates a rocket at rest. rotationDegrees sets its initial
// facing.
func NewRocket(id ID, position physics.Vector2D, rotationDegrees, width, height float64) *Rocket {
	r := &Rocket{
		ID:     id,
		Craft:  physics.Craft{Position: position},
		Width:  width,
		Height: height,
	}
	r.Craft.Rotate(rotationDegrees)
	return r
}

// GetID returns the rocket's identifier
func (r *Rocket) GetID() ID {
	return r.ID
}

// GetPosition returns the rocket's position
func (r *Rocket) GetPosition() physics.Vector2D {
	return r.Craft.Position
}

// Heading returns the facing angle in degrees, normalized to [-180, 180].
func (r *Rocket) Heading() float64 {
	return physics.NormalizeDegrees(r.Craft.Rotation)
}

// Render draws the rocket
func (r *Rocket) Render(rd Renderer) {
	rd.RenderRocket(r)
}
