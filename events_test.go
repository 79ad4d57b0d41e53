package hitbox

import (
	"testing"

	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/layer"
)

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) countType(eventType EventType) int {
	n := 0
	for _, e := range ec.events {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

// =============================================================================
// Subscribe and Listeners Tests
// =============================================================================

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, capture.capture)

	if len(events.listeners[COLLISION_ENTER]) != 1 {
		t.Errorf("Expected 1 listener for COLLISION_ENTER, got %d", len(events.listeners[COLLISION_ENTER]))
	}

	var zero Events
	zero.Subscribe(COLLISION_EXIT, capture.capture)
	if len(zero.listeners[COLLISION_EXIT]) != 1 {
		t.Errorf("Subscribe on a zero Events should register the listener")
	}
}

func TestEvents_MultipleListeners(t *testing.T) {
	arena := actor.NewArena()
	events := NewEvents()
	capture1 := &eventCapture{}
	capture2 := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, capture1.capture)
	events.Subscribe(COLLISION_ENTER, capture2.capture)

	a := createTestCollider(t, arena, layer.Player, 0, 0, 1, 1, false)
	b := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)
	events.emit(CollisionEnterEvent{ColliderA: a, ColliderB: b})
	events.flush()

	if capture1.count() != 1 || capture2.count() != 1 {
		t.Errorf("Expected 1 event per listener, got %d and %d", capture1.count(), capture2.count())
	}
}

func TestEvents_DifferentEventTypes(t *testing.T) {
	arena := actor.NewArena()
	events := NewEvents()
	captureEnter := &eventCapture{}
	captureExit := &eventCapture{}

	events.Subscribe(COLLISION_ENTER, captureEnter.capture)
	events.Subscribe(COLLISION_EXIT, captureExit.capture)

	a := createTestCollider(t, arena, layer.Player, 0, 0, 1, 1, false)
	b := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)
	events.emit(CollisionStayEvent{ColliderA: a, ColliderB: b})
	events.emit(CollisionExitEvent{ColliderA: a, ColliderB: b})
	events.flush()

	if captureEnter.count() != 0 {
		t.Errorf("Enter capture expected 0 events, got %d", captureEnter.count())
	}
	if captureExit.count() != 1 {
		t.Errorf("Exit capture expected 1 event, got %d", captureExit.count())
	}
}

func TestEvents_FlushClearsBuffer(t *testing.T) {
	arena := actor.NewArena()
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(COLLISION_STAY, capture.capture)

	a := createTestCollider(t, arena, layer.Player, 0, 0, 1, 1, false)
	b := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)
	events.emit(CollisionStayEvent{ColliderA: a, ColliderB: b})
	if events.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", events.Pending())
	}

	events.flush()
	events.flush()

	if capture.count() != 1 {
		t.Errorf("second flush should not resend events, got %d", capture.count())
	}
	if events.Pending() != 0 {
		t.Errorf("Pending after flush = %d", events.Pending())
	}
}

func TestEventType_String(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      string
	}{
		{COLLISION_ENTER, "enter"},
		{COLLISION_STAY, "stay"},
		{COLLISION_EXIT, "exit"},
		{EventType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.eventType.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.eventType, got, tt.want)
		}
	}
}
