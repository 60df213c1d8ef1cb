// pkg/engine/simulation.go
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// Input is the control state sampled once per tick.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// InputSource supplies the control state for the next tick.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

// Poll calls f.
func (f InputFunc) Poll() Input {
	return f()
}

// Simulation owns the rocket and planets of one session and advances them a
// tick at a time. It is not safe for concurrent use; a single loop drives it.
type Simulation struct {
	Rocket       *entity.Rocket
	Planets      []*entity.Planet
	EventBus     *event.Bus
	TurnRate     float64 // degrees per tick
	TickInterval time.Duration
	CurrentTick  uint64

	logger    *logging.Logger
	field     physics.GravityField
	tracer    physics.Observer
	inside    []bool
	crossings []crossing
	thrusting bool
}

type crossing struct {
	index   int
	entered bool
}

// NewSimulation builds the scene described by cfg.
func NewSimulation(cfg *config.SimulationConfig, bus *event.Bus, logger *logging.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	s := &Simulation{
		Rocket: entity.NewRocket(entity.ID(1),
			physics.Vector2D{X: cfg.Craft.X, Y: cfg.Craft.Y},
			cfg.Craft.Rotation, cfg.Craft.Width, cfg.Craft.Height),
		EventBus:     bus,
		TurnRate:     cfg.Loop.TurnRate,
		TickInterval: cfg.TickInterval(),
		logger:       logger,
		tracer:       logging.GravityTracer{Logger: logger},
	}

	bodies := make([]physics.Body, 0, len(cfg.Planets))
	for i, pc := range cfg.Planets {
		planet, err := entity.NewPlanet(entity.ID(i+2), pc.Name, physics.Vector2D{X: pc.X, Y: pc.Y}, pc.Radius)
		if err != nil {
			return nil, logging.WrapError(err, "planet %q", pc.Name)
		}
		s.Planets = append(s.Planets, planet)
		bodies = append(bodies, planet.Body)
	}

	s.inside = make([]bool, len(s.Planets))
	for i, p := range s.Planets {
		s.inside[i] = p.Contains(s.Rocket.Craft.Position)
	}
	s.field = physics.GravityField{Bodies: bodies, Observer: s}

	return s, nil
}

// ObserveGravity tracks which fields the rocket is inside and forwards the
// sample to the debug tracer.
func (s *Simulation) ObserveGravity(index int, body physics.Body, ratio, scale float64) {
	s.tracer.ObserveGravity(index, body, ratio, scale)

	in := ratio < 1
	if in != s.inside[index] {
		s.inside[index] = in
		s.crossings = append(s.crossings, crossing{index: index, entered: in})
	}
}

// Step advances the simulation by one tick: rotation, thrust, gravity and
// finally position integration, in that order.
func (s *Simulation) Step(in Input) {
	craft := &s.Rocket.Craft

	if in.RotateLeft {
		craft.Rotate(-s.TurnRate)
	}
	if in.RotateRight {
		craft.Rotate(s.TurnRate)
	}
	if in.Thrust {
		physics.ApplyThrust(craft, physics.PlayerThrust)
	}
	s.field.Apply(craft)
	craft.Advance()

	s.CurrentTick++
	s.publishThrust(in.Thrust)
	s.publishCrossings()
}

func (s *Simulation) publishThrust(thrust bool) {
	if thrust == s.thrusting {
		return
	}
	s.thrusting = thrust
	t := event.ThrustStopped
	if thrust {
		t = event.ThrustStarted
	}
	s.EventBus.Publish(event.NewThrustEvent(t, s, s.CurrentTick))
}

func (s *Simulation) publishCrossings() {
	for _, c := range s.crossings {
		p := s.Planets[c.index]
		t := event.FieldExited
		if c.entered {
			t = event.FieldEntered
		}
		s.EventBus.Publish(event.NewFieldEvent(t, s, uint64(p.ID), p.Name, s.CurrentTick))
	}
	s.crossings = s.crossings[:0]
}

// InsideFields returns the names of the planets whose field held the rocket
// during the last gravity pass.
func (s *Simulation) InsideFields() []string {
	var names []string
	for i, in := range s.inside {
		if in {
			names = append(names, s.Planets[i].Name)
		}
	}
	return names
}

// Render draws one frame: planets first, then the rocket, with the view
// centered on the rocket.
func (s *Simulation) Render(r entity.Renderer) {
	r.Clear()
	for _, p := range s.Planets {
		p.Render(r)
	}
	s.Rocket.Render(r)
	r.LookAt(s.Rocket.GetPosition())
	r.Present()
}

// Run steps and renders the simulation on every tick until ctx is done.
// Ticks that arrive late are not made up.
func (s *Simulation) Run(ctx context.Context, src InputSource, r entity.Renderer) error {
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick interval %v must be positive", s.TickInterval)
	}

	ticker := time.NewTicker(s.TickInterval)
	defer ticker.Stop()

	s.Start(ctx)
	defer s.Stop(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Step(src.Poll())
			if r != nil {
				s.Render(r)
			}
		}
	}
}

// Start announces the session and binds the debug tracer to ctx. Run calls
// it; frontends that drive Step themselves call it once before the first
// tick.
func (s *Simulation) Start(ctx context.Context) {
	s.tracer = logging.GravityTracer{Logger: s.logger, Ctx: ctx}
	s.logger.Info(ctx, "simulation started",
		"planets", len(s.Planets),
		"tick_interval", s.TickInterval.String(),
	)
	s.EventBus.Publish(&event.BaseEvent{EventType: event.SimulationStarted, Source: s})
}

// Stop announces the end of the session.
func (s *Simulation) Stop(ctx context.Context) {
	s.EventBus.Publish(&event.BaseEvent{EventType: event.SimulationStopped, Source: s})
	s.logger.Info(ctx, "simulation stopped", "ticks", s.CurrentTick)
}
