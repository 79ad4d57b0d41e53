package actor

import (
	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
)

type record struct {
	gen       generation
	used      bool
	lifecycle Lifecycle

	transform Transform
	static    bool
	listener  Listener
	collider  *BoxCollider
}

// Arena owns entities and hands out generational handles to them.
// Colliders and the collision system only ever keep handles.
type Arena struct {
	records []record
	free    []entityID
}

func NewArena() *Arena {
	return &Arena{}
}

// Create allocates an Active entity. Static entities never move once created.
func (a *Arena) Create(transform Transform, static bool) Entity {
	var id entityID
	if len(a.free) > 0 {
		id = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
	} else {
		a.records = append(a.records, record{gen: 1})
		id = entityID(len(a.records))
	}

	rec := &a.records[id-1]
	rec.used = true
	rec.lifecycle = Active
	rec.transform = transform
	rec.static = static
	rec.listener = nil
	rec.collider = nil

	return makeEntity(id, rec.gen)
}

func (a *Arena) record(e Entity) *record {
	id := e.id()
	if a == nil || id == 0 || int(id) > len(a.records) {
		return nil
	}
	rec := &a.records[id-1]
	if !rec.used || rec.gen != e.generation() {
		return nil
	}
	return rec
}

// IsAlive reports whether the handle refers to an Active or PendingRemoval entity.
func (a *Arena) IsAlive(e Entity) bool {
	return a.record(e) != nil
}

// Lifecycle returns Removed for stale or unknown handles.
func (a *Arena) Lifecycle(e Entity) Lifecycle {
	rec := a.record(e)
	if rec == nil {
		return Removed
	}
	return rec.lifecycle
}

func (a *Arena) IsStatic(e Entity) bool {
	rec := a.record(e)
	return rec != nil && rec.static
}

func (a *Arena) Position(e Entity) (mgl64.Vec2, bool) {
	rec := a.record(e)
	if rec == nil {
		return mgl64.Vec2{}, false
	}
	return rec.transform.Position, true
}

// SetPosition moves a dynamic entity and refreshes its collider bounds.
// Static entities ignore the call.
func (a *Arena) SetPosition(e Entity, position mgl64.Vec2) error {
	rec := a.record(e)
	if rec == nil {
		return ErrEntityNotAlive
	}
	if rec.static {
		return nil
	}
	rec.transform.Position = position
	if rec.collider != nil {
		rec.collider.ComputeAABB(rec.transform)
	}
	return nil
}

func (a *Arena) Translate(e Entity, delta mgl64.Vec2) error {
	position, ok := a.Position(e)
	if !ok {
		return ErrEntityNotAlive
	}
	return a.SetPosition(e, position.Add(delta))
}

func (a *Arena) SetListener(e Entity, listener Listener) error {
	rec := a.record(e)
	if rec == nil {
		return ErrEntityNotAlive
	}
	rec.listener = listener
	return nil
}

func (a *Arena) Listener(e Entity) Listener {
	rec := a.record(e)
	if rec == nil {
		return nil
	}
	return rec.listener
}

// AttachCollider gives the entity its collision capability. An entity owns at
// most one collider; attaching again replaces it.
func (a *Arena) AttachCollider(e Entity, l layer.CollisionLayer, size, offset mgl64.Vec2) (*BoxCollider, error) {
	rec := a.record(e)
	if rec == nil {
		return nil, ErrEntityNotAlive
	}
	c := &BoxCollider{
		owner:  e,
		arena:  a,
		layer:  l,
		Size:   size,
		Offset: offset,
	}
	c.ComputeAABB(rec.transform)
	rec.collider = c
	return c, nil
}

// Collider returns the entity collider, or nil.
func (a *Arena) Collider(e Entity) *BoxCollider {
	rec := a.record(e)
	if rec == nil {
		return nil
	}
	return rec.collider
}

// QueueRemoval marks an Active entity for removal at the end of the tick.
func (a *Arena) QueueRemoval(e Entity) bool {
	rec := a.record(e)
	if rec == nil || rec.lifecycle != Active {
		return false
	}
	rec.lifecycle = PendingRemoval
	return true
}

// Sweep turns every PendingRemoval entity into Removed, invalidating its
// handle and recycling its slot. It returns the swept handles.
func (a *Arena) Sweep() []Entity {
	var removed []Entity
	for i := range a.records {
		rec := &a.records[i]
		if !rec.used || rec.lifecycle != PendingRemoval {
			continue
		}
		id := entityID(i + 1)
		removed = append(removed, makeEntity(id, rec.gen))

		if rec.collider != nil {
			rec.collider.arena = nil
		}
		*rec = record{gen: rec.gen + 1}
		a.free = append(a.free, id)
	}
	return removed
}

// Entities returns every live handle in slot order.
func (a *Arena) Entities() []Entity {
	entities := make([]Entity, 0, len(a.records))
	for i := range a.records {
		rec := &a.records[i]
		if rec.used {
			entities = append(entities, makeEntity(entityID(i+1), rec.gen))
		}
	}
	return entities
}

func (a *Arena) Len() int {
	n := 0
	for i := range a.records {
		if a.records[i].used {
			n++
		}
	}
	return n
}
