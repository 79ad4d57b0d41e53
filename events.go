package hitbox

import (
	"github.com/akmonengine/hitbox/actor"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "enter"
	case COLLISION_STAY:
		return "stay"
	case COLLISION_EXIT:
		return "exit"
	default:
		return "unknown"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// CollisionEnterEvent is published once per new pair. ColliderA is the
// scanning side, Manifold is computed from its point of view before any
// correction.
type CollisionEnterEvent struct {
	ColliderA *actor.BoxCollider
	ColliderB *actor.BoxCollider
	Manifold  actor.Manifold
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	ColliderA *actor.BoxCollider
	ColliderB *actor.BoxCollider
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	ColliderA *actor.BoxCollider
	ColliderB *actor.BoxCollider
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events buffers pair transitions during a tick and hands them to the
// subscribers at flush.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 256),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// Pending returns the number of buffered events.
func (e *Events) Pending() int {
	return len(e.buffer)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	clear(e.buffer)
	e.buffer = e.buffer[:0]
}
