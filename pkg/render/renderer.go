// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// NullRenderer draws nothing and reports every call at debug level. It
// runs the simulation headless.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer logging through logger.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {}

// LookAt implements entity.Renderer.
func (d *NullRenderer) LookAt(pos physics.Vector2D) {}

// RenderPlanet implements entity.Renderer.
func (d *NullRenderer) RenderPlanet(planet *entity.Planet) {
	ctx := context.Background()
	if planet == nil {
		d.logger.Debug(ctx, "RenderPlanet called with nil planet")
		return
	}
	d.logger.Debug(ctx, "RenderPlanet called",
		"planet_id", planet.ID,
		"planet_name", planet.Name,
	)
}

// RenderRocket implements entity.Renderer.
func (d *NullRenderer) RenderRocket(rocket *entity.Rocket) {
	ctx := context.Background()
	if rocket == nil {
		d.logger.Debug(ctx, "RenderRocket called with nil rocket")
		return
	}
	d.logger.Debug(ctx, "RenderRocket called",
		"x", rocket.Craft.Position.X,
		"y", rocket.Craft.Position.Y,
		"dx", rocket.Craft.Velocity.X,
		"dy", rocket.Craft.Velocity.Y,
		"heading", rocket.Heading(),
	)
}
