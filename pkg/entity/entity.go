// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for everything placed in a scene
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	Render(r Renderer)
}

// Renderer draws entities. Frontends implement it; the simulation calls
// Clear, then the Render methods, LookAt and finally Present once per frame.
type Renderer interface {
	RenderPlanet(planet *Planet)
	RenderRocket(rocket *Rocket)
	LookAt(pos physics.Vector2D)
	Clear()
	Present()
}
