// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	SimulationStarted Type = "simulation_started"
	SimulationStopped Type = "simulation_stopped"
	ThrustStarted     Type = "thrust_started"
	ThrustStopped     Type = "thrust_stopped"
	FieldEntered      Type = "field_entered"
	FieldExited       Type = "field_exited"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			// copy so an in-flight Publish keeps its snapshot intact
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			b.handlers[eventType] = append(next, regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers, in subscription order
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// FieldEvent reports the craft crossing the edge of a planet's field.
type FieldEvent struct {
	BaseEvent
	PlanetID   uint64
	PlanetName string
	Tick       uint64
}

// NewFieldEvent creates a FieldEntered or FieldExited event
func NewFieldEvent(eventType Type, source interface{}, planetID uint64, name string, tick uint64) *FieldEvent {
	return &FieldEvent{
		BaseEvent:  BaseEvent{EventType: eventType, Source: source},
		PlanetID:   planetID,
		PlanetName: name,
		Tick:       tick,
	}
}

// ThrustEvent reports the thrust input switching on or off.
type ThrustEvent struct {
	BaseEvent
	Tick uint64
}

// NewThrustEvent creates a ThrustStarted or ThrustStopped event
func NewThrustEvent(eventType Type, source interface{}, tick uint64) *ThrustEvent {
	return &ThrustEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Tick:      tick,
	}
}
