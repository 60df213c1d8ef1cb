// pkg/entity/planet.go
package entity

import (
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// Planet is a fixed body with a name. It never moves or changes during a
// session.
type Planet struct {
	ID   ID
	Name string
	Body physics.Body
}

// NewPlanet creates a planet, rejecting radii that cannot carry a field.
func NewPlanet(id ID, name string, position physics.Vector2D, radius float64) (*Planet, error) {
	body, err := physics.NewBody(position, radius)
	if err != nil {
		return nil, err
	}
	return &Planet{ID: id, Name: name, Body: body}, nil
}

// GetID returns the planet's identifier
func (p *Planet) GetID() ID {
	return p.ID
}

// GetPosition returns the planet's center
func (p *Planet) GetPosition() physics.Vector2D {
	return p.Body.Position
}

// Contains reports whether pos lies strictly inside the planet's field.
func (p *Planet) Contains(pos physics.Vector2D) bool {
	return p.Body.Ratio(pos) < 1
}

// Render draws the planet
func (p *Planet) Render(r Renderer) {
	r.RenderPlanet(p)
}
