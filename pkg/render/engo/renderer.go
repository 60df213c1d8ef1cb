// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// SpriteSink receives sprites for drawing. common.RenderSystem is the
// production sink.
type SpriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

type planetSprites struct {
	field *sprite
	core  *sprite
	seen  bool
}

// EngoRenderer implements entity.Renderer using the Engo game engine. Each
// entity keeps one set of sprites for its lifetime; draw calls only move
// them.
type EngoRenderer struct {
	sink    SpriteSink
	camera  *CameraSystem
	palette Palette

	planets    map[entity.ID]*planetSprites
	rocket     *sprite
	rocketSeen bool
	thrusting  bool
}

// NewEngoRenderer creates a renderer feeding sink. camera may be nil.
func NewEngoRenderer(sink SpriteSink, camera *CameraSystem, palette Palette) *EngoRenderer {
	return &EngoRenderer{
		sink:    sink,
		camera:  camera,
		palette: palette,
		planets: make(map[entity.ID]*planetSprites),
	}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, p := range r.planets {
		p.seen = false
	}
	r.rocketSeen = false
}

// RenderPlanet implements entity.Renderer. Field discs are created before
// cores so the core is drawn on top.
func (r *EngoRenderer) RenderPlanet(planet *entity.Planet) {
	ps, ok := r.planets[planet.ID]
	if !ok {
		ps = &planetSprites{
			field: r.newSprite(circleDrawable(), r.palette.Field),
			core:  r.newSprite(circleDrawable(), r.palette.Core),
		}
		r.planets[planet.ID] = ps
	}
	ps.seen = true

	body := planet.Body
	placeDisc(&ps.field.SpaceComponent, body.Position, body.FieldRange)
	placeDisc(&ps.core.SpaceComponent, body.Position, body.Radius)
}

// RenderRocket implements entity.Renderer
func (r *EngoRenderer) RenderRocket(rocket *entity.Rocket) {
	if r.rocket == nil {
		r.rocket = r.newSprite(rocketDrawable(), r.palette.Rocket)
	}
	r.rocketSeen = true

	space := &r.rocket.SpaceComponent
	space.Width = float32(rocket.Width)
	space.Height = float32(rocket.Height)
	pos := rocket.GetPosition()
	space.Position = engo.Point{
		X: float32(pos.X - rocket.Width/2),
		Y: float32(pos.Y - rocket.Height/2),
	}
	// The triangle points up at rotation 0; heading 0 points along +x.
	space.Rotation = float32(rocket.Heading() + 90)

	if r.thrusting {
		r.rocket.RenderComponent.Color = r.palette.Thrusting
	} else {
		r.rocket.RenderComponent.Color = r.palette.Rocket
	}
}

// LookAt implements entity.Renderer
func (r *EngoRenderer) LookAt(pos physics.Vector2D) {
	if r.camera != nil {
		r.camera.SetTarget(pos)
	}
}

// Present implements entity.Renderer. Engo draws on its own schedule, so
// presenting only drops sprites for entities that were not drawn this frame.
func (r *EngoRenderer) Present() {
	for id, p := range r.planets {
		if !p.seen {
			r.sink.Remove(p.field.BasicEntity)
			r.sink.Remove(p.core.BasicEntity)
			delete(r.planets, id)
		}
	}
	if r.rocket != nil && !r.rocketSeen {
		r.sink.Remove(r.rocket.BasicEntity)
		r.rocket = nil
	}
}

// SetThrusting switches the rocket color while the engine fires.
func (r *EngoRenderer) SetThrusting(on bool) {
	r.thrusting = on
}

// SpriteCount returns the number of live sprites.
func (r *EngoRenderer) SpriteCount() int {
	n := 2 * len(r.planets)
	if r.rocket != nil {
		n++
	}
	return n
}

func (r *EngoRenderer) newSprite(d common.Drawable, c color.Color) *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{Drawable: d, Color: c}
	r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

func placeDisc(space *common.SpaceComponent, center physics.Vector2D, radius float64) {
	space.Width = float32(2 * radius)
	space.Height = float32(2 * radius)
	space.Position = engo.Point{
		X: float32(center.X - radius),
		Y: float32(center.Y - radius),
	}
}
