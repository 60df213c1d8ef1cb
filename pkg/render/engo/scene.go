// pkg/render/engo/scene.go
package engo

import (
	"context"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/logging"
)

// worldExtent bounds how far the camera may travel from the origin.
const worldExtent = 1e6

// GameScene runs a simulation inside an engo window
type GameScene struct {
	world   *ecs.World
	sim     *engine.Simulation
	logger  *logging.Logger
	palette Palette
	ctx     context.Context

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	physics  *PhysicsSystem
	subs     []*event.Subscription
}

// NewGameScene creates a scene for sim
func NewGameScene(ctx context.Context, sim *engine.Simulation, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &GameScene{
		world:   &ecs.World{},
		sim:     sim,
		logger:  logger,
		palette: DefaultPalette(),
		ctx:     ctx,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GravityScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)
	if w == nil {
		w = scene.world
	}
	scene.world = w

	common.SetBackground(scene.palette.Background)
	common.CameraBounds = engo.AABB{
		Min: engo.Point{X: -worldExtent, Y: -worldExtent},
		Max: engo.Point{X: worldExtent, Y: worldExtent},
	}
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	scene.camera = NewCameraSystem()
	scene.input = NewInputSystem()
	scene.renderer = NewEngoRenderer(renderSystem, scene.camera, scene.palette)
	scene.physics = NewPhysicsSystem(scene.sim, scene.input, scene.renderer)

	w.AddSystem(renderSystem)
	w.AddSystem(scene.input)
	w.AddSystem(scene.physics)
	w.AddSystem(scene.camera)

	scene.subscribeToEvents()
	scene.sim.Start(scene.ctx)
	scene.sim.Render(scene.renderer)
}

func (scene *GameScene) subscribeToEvents() {
	bus := scene.sim.EventBus
	scene.subs = append(scene.subs,
		bus.Subscribe(event.ThrustStarted, func(event.Event) { scene.renderer.SetThrusting(true) }),
		bus.Subscribe(event.ThrustStopped, func(event.Event) { scene.renderer.SetThrusting(false) }),
		bus.Subscribe(event.FieldEntered, scene.logFieldEvent),
		bus.Subscribe(event.FieldExited, scene.logFieldEvent),
	)
}

func (scene *GameScene) logFieldEvent(e event.Event) {
	fe, ok := e.(*event.FieldEvent)
	if !ok {
		return
	}
	scene.logger.Debug(scene.ctx, string(fe.GetType()),
		"planet", fe.PlanetName,
		"tick", fe.Tick,
	)
}

// Exit is called when the window closes
func (scene *GameScene) Exit() {
	for _, s := range scene.subs {
		s.Cancel()
	}
	scene.subs = nil
	scene.sim.Stop(scene.ctx)
}

// PhysicsSystem steps the simulation at its own tick rate, independent of
// the frame rate. A frame runs at most one tick. Leftover frame time carries
// over, capped at one pending tick, so a stall drops the rest.
type PhysicsSystem struct {
	sim      *engine.Simulation
	input    engine.InputSource
	renderer entity.Renderer
	interval float32 // seconds
	elapsed  float32
}

// NewPhysicsSystem creates a system driving sim
func NewPhysicsSystem(sim *engine.Simulation, input engine.InputSource, renderer entity.Renderer) *PhysicsSystem {
	return &PhysicsSystem{
		sim:      sim,
		input:    input,
		renderer: renderer,
		interval: float32(sim.TickInterval) / float32(time.Second),
	}
}

// Remove satisfies the ecs.System interface
func (ps *PhysicsSystem) Remove(basic ecs.BasicEntity) {}

// Update runs a tick once enough frame time has accumulated
func (ps *PhysicsSystem) Update(dt float32) {
	ps.elapsed += dt
	if ps.elapsed < ps.interval {
		return
	}
	ps.elapsed -= ps.interval
	if ps.elapsed > ps.interval {
		ps.elapsed = ps.interval
	}
	ps.sim.Step(ps.input.Poll())
	ps.sim.Render(ps.renderer)
}
