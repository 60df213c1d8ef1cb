// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()
	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{"ThrustStarted event", ThrustStarted, "test_source"},
		{"FieldEntered event", FieldEntered, 123},
		{"Empty source", SimulationStarted, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &BaseEvent{EventType: tt.eventType, Source: tt.source}
			if e.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", e.GetType(), tt.eventType)
			}
			if e.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", e.GetSource(), tt.source)
			}
		})
	}
}

func TestBusSubscribe_SingleHandler_ReturnsValidSubscription(t *testing.T) {
	bus := NewEventBus()
	sub := bus.Subscribe(ThrustStarted, func(e Event) {})

	if sub == nil {
		t.Fatal("Subscribe() returned nil subscription")
	}
	if sub.ID == 0 {
		t.Error("expected non-zero subscription ID")
	}
	if sub.Type != ThrustStarted {
		t.Errorf("expected subscription type %v, got %v", ThrustStarted, sub.Type)
	}
	if sub.Cancel == nil {
		t.Error("expected Cancel to be set")
	}
}

func TestBusPublish_DeliversInOrderToMatchingType(t *testing.T) {
	bus := NewEventBus()
	var got []string

	bus.Subscribe(FieldEntered, func(e Event) { got = append(got, "first") })
	bus.Subscribe(FieldEntered, func(e Event) { got = append(got, "second") })
	bus.Subscribe(FieldExited, func(e Event) { got = append(got, "other") })

	bus.Publish(NewFieldEvent(FieldEntered, nil, 1, "Inner", 10))

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("handlers called %v, expected [first second]", got)
	}
}

func TestBusPublish_NoSubscribers(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(&BaseEvent{EventType: SimulationStopped})
}

func TestSubscriptionCancel_ValidSubscription_RemovesHandler(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	sub := bus.Subscribe(ThrustStopped, func(e Event) { calls++ })
	keep := 0
	bus.Subscribe(ThrustStopped, func(e Event) { keep++ })

	bus.Publish(NewThrustEvent(ThrustStopped, nil, 1))
	sub.Cancel()
	bus.Publish(NewThrustEvent(ThrustStopped, nil, 2))

	if calls != 1 {
		t.Errorf("cancelled handler called %d times, expected 1", calls)
	}
	if keep != 2 {
		t.Errorf("remaining handler called %d times, expected 2", keep)
	}

	sub.Cancel()
}

func TestSubscriptionCancel_DuringPublish(t *testing.T) {
	bus := NewEventBus()
	var sub *Subscription
	order := []int{}
	sub = bus.Subscribe(FieldExited, func(e Event) {
		order = append(order, 1)
		sub.Cancel()
	})
	bus.Subscribe(FieldExited, func(e Event) { order = append(order, 2) })

	bus.Publish(&BaseEvent{EventType: FieldExited})
	bus.Publish(&BaseEvent{EventType: FieldExited})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 2 {
		t.Errorf("handler order %v, expected [1 2 2]", order)
	}
}

func TestTypedEvents(t *testing.T) {
	fe := NewFieldEvent(FieldExited, "sim", 7, "Outer", 99)
	if fe.GetType() != FieldExited || fe.PlanetID != 7 || fe.PlanetName != "Outer" || fe.Tick != 99 {
		t.Errorf("unexpected field event %+v", fe)
	}
	te := NewThrustEvent(ThrustStarted, "sim", 5)
	if te.GetType() != ThrustStarted || te.GetSource() != "sim" || te.Tick != 5 {
		t.Errorf("unexpected thrust event %+v", te)
	}
}

func TestBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup
	var mu sync.Mutex
	received := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := bus.Subscribe(ThrustStarted, func(e Event) {
				mu.Lock()
				received++
				mu.Unlock()
			})
			bus.Publish(NewThrustEvent(ThrustStarted, nil, 0))
			sub.Cancel()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if received < 10 {
		t.Errorf("expected every publisher to reach at least its own handler, got %d deliveries", received)
	}
}
