package engo

import (
	"testing"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

type fakeSink struct {
	spaces  map[uint64]*common.SpaceComponent
	renders map[uint64]*common.RenderComponent
	order   []uint64
	removed []uint64
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		spaces:  make(map[uint64]*common.SpaceComponent),
		renders: make(map[uint64]*common.RenderComponent),
	}
}

func (f *fakeSink) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	f.spaces[basic.ID()] = space
	f.renders[basic.ID()] = render
	f.order = append(f.order, basic.ID())
}

func (f *fakeSink) Remove(basic ecs.BasicEntity) {
	f.removed = append(f.removed, basic.ID())
	delete(f.spaces, basic.ID())
	delete(f.renders, basic.ID())
}

func testPlanet(t *testing.T, id entity.ID, x, y, radius float64) *entity.Planet {
	t.Helper()
	p, err := entity.NewPlanet(id, "p", physics.Vector2D{X: x, Y: y}, radius)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	return p
}

func TestEngoRenderer_PlanetSprites(t *testing.T) {
	sink := newFakeSink()
	r := NewEngoRenderer(sink, nil, DefaultPalette())
	planet := testPlanet(t, 2, 300, 300, 100)

	r.Clear()
	r.RenderPlanet(planet)
	r.Present()

	if len(sink.order) != 2 {
		t.Fatalf("expected field and core sprites, got %d", len(sink.order))
	}
	field := sink.spaces[sink.order[0]]
	core := sink.spaces[sink.order[1]]

	if field.Width != 800 || field.Position.X != -100 || field.Position.Y != -100 {
		t.Errorf("field sprite = %+v", *field)
	}
	if core.Width != 200 || core.Position.X != 200 || core.Position.Y != 200 {
		t.Errorf("core sprite = %+v", *core)
	}

	// Drawing again reuses the same sprites.
	r.Clear()
	r.RenderPlanet(planet)
	r.Present()
	if len(sink.order) != 2 || r.SpriteCount() != 2 {
		t.Errorf("sprites were recreated: added %d, live %d", len(sink.order), r.SpriteCount())
	}
}

func TestEngoRenderer_RocketSprite(t *testing.T) {
	sink := newFakeSink()
	r := NewEngoRenderer(sink, nil, DefaultPalette())
	rocket := entity.NewRocket(1, physics.Vector2D{X: 16, Y: 16}, 0, 32, 32)

	r.RenderRocket(rocket)
	space := sink.spaces[sink.order[0]]
	if space.Position.X != 0 || space.Position.Y != 0 {
		t.Errorf("rocket should be centered on its position, got %+v", space.Position)
	}
	if space.Rotation != 90 {
		t.Errorf("rotation = %v, want 90", space.Rotation)
	}

	r.SetThrusting(true)
	r.RenderRocket(rocket)
	if got := sink.renders[sink.order[0]].Color; got != DefaultPalette().Thrusting {
		t.Errorf("thrusting color = %v", got)
	}
}

func TestEngoRenderer_PresentDropsStaleSprites(t *testing.T) {
	sink := newFakeSink()
	r := NewEngoRenderer(sink, nil, DefaultPalette())
	a := testPlanet(t, 2, 0, 0, 10)
	b := testPlanet(t, 3, 100, 0, 10)

	r.Clear()
	r.RenderPlanet(a)
	r.RenderPlanet(b)
	r.Present()

	r.Clear()
	r.RenderPlanet(a)
	r.Present()

	if len(sink.removed) != 2 {
		t.Errorf("expected both sprites of the missing planet removed, got %d", len(sink.removed))
	}
	if r.SpriteCount() != 2 {
		t.Errorf("SpriteCount = %d, want 2", r.SpriteCount())
	}
}

func TestEngoRenderer_LookAtMovesCamera(t *testing.T) {
	camera := NewCameraSystem()
	r := NewEngoRenderer(newFakeSink(), camera, DefaultPalette())

	target := physics.Vector2D{X: 42, Y: -7}
	r.LookAt(target)
	if camera.GetCurrentPosition() != target {
		t.Errorf("camera at %v, want %v", camera.GetCurrentPosition(), target)
	}
}
