package scene

import (
	"fmt"
	"log"

	"github.com/akmonengine/hitbox"
	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/debug"
	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
)

type body struct {
	entity   actor.Entity
	name     string
	velocity mgl64.Vec2
	// remaining lifetime in seconds; ignored when mortal is false
	lifetime float64
	mortal   bool
}

// World runs a scene: it owns the arena and the collision system and
// advances both with Step.
type World struct {
	Name   string
	Arena  *actor.Arena
	System *hitbox.System

	bodies []body
	byName map[string]actor.Entity
	ticks  int
}

// NewWorld builds the scene entities into a fresh arena. drawer and logger
// may be nil.
func NewWorld(spec *Spec, drawer debug.Drawer, logger *log.Logger) (*World, error) {
	base := hitbox.DefaultConfig()
	if drawer != nil {
		base.Drawer = drawer
	}
	if logger != nil {
		base.Logger = logger
	}
	cfg, err := spec.Config(base)
	if err != nil {
		return nil, err
	}

	arena := actor.NewArena()
	system, err := hitbox.NewSystem(arena, cfg)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", spec.Name, err)
	}

	w := &World{
		Name:   spec.Name,
		Arena:  arena,
		System: system,
		byName: make(map[string]actor.Entity),
	}
	for _, e := range spec.Entities {
		if _, err := w.Spawn(e); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Spawn creates an entity from its description and registers its collider.
func (w *World) Spawn(spec EntitySpec) (actor.Entity, error) {
	if !spec.Layer.Valid() {
		return 0, fmt.Errorf("scene: spawn %s: %w: %d", spec.Name, layer.ErrUnknownLayer, spec.Layer)
	}

	e := w.Arena.Create(actor.NewTransform(spec.Transform.X, spec.Transform.Y), spec.Static)
	size := mgl64.Vec2{spec.Collider.Width, spec.Collider.Height}
	offset := mgl64.Vec2{spec.Collider.OffsetX, spec.Collider.OffsetY}
	if _, err := w.Arena.AttachCollider(e, spec.Layer, size, offset); err != nil {
		return 0, fmt.Errorf("scene: spawn %s: %w", spec.Name, err)
	}

	if spec.DespawnOnHit {
		listener := actor.ListenerFuncs{
			Enter: func(self, other *actor.BoxCollider) {
				w.Arena.QueueRemoval(self.Owner())
			},
		}
		if err := w.Arena.SetListener(e, listener); err != nil {
			return 0, fmt.Errorf("scene: spawn %s: %w", spec.Name, err)
		}
	}

	if err := w.System.Add(e); err != nil {
		return 0, fmt.Errorf("scene: spawn %s: %w", spec.Name, err)
	}

	b := body{entity: e, name: spec.Name}
	if !spec.Static {
		b.velocity = mgl64.Vec2{spec.Velocity.X, spec.Velocity.Y}
	}
	if spec.Lifetime > 0 {
		b.lifetime = spec.Lifetime
		b.mortal = true
	}
	w.bodies = append(w.bodies, b)
	if spec.Name != "" {
		w.byName[spec.Name] = e
	}
	return e, nil
}

// Step advances the scene by dt seconds: moves bodies, expires lifetimes,
// runs one collision tick and sweeps the removed entities.
func (w *World) Step(dt float64) {
	moved := make([]actor.Entity, 0, len(w.bodies))
	for i := range w.bodies {
		b := &w.bodies[i]
		if w.Arena.Lifecycle(b.entity) != actor.Active {
			continue
		}
		if b.velocity != (mgl64.Vec2{}) {
			if err := w.Arena.Translate(b.entity, b.velocity.Mul(dt)); err == nil {
				moved = append(moved, b.entity)
			}
		}
		if b.mortal {
			b.lifetime -= dt
			if b.lifetime <= 0 {
				w.Arena.QueueRemoval(b.entity)
			}
		}
	}

	w.System.ProcessRemovals()
	w.System.UpdatePositions(moved...)
	w.System.Update()

	if removed := w.Arena.Sweep(); len(removed) > 0 {
		w.forget(removed)
	}
	w.ticks++
}

func (w *World) forget(removed []actor.Entity) {
	gone := make(map[actor.Entity]bool, len(removed))
	for _, e := range removed {
		gone[e] = true
	}

	n := 0
	for _, b := range w.bodies {
		if gone[b.entity] {
			if w.byName[b.name] == b.entity {
				delete(w.byName, b.name)
			}
			continue
		}
		w.bodies[n] = b
		n++
	}
	w.bodies = w.bodies[:n]
}

// Find returns the live entity spawned under name.
func (w *World) Find(name string) (actor.Entity, bool) {
	e, ok := w.byName[name]
	return e, ok
}

func (w *World) SetVelocity(e actor.Entity, velocity mgl64.Vec2) bool {
	for i := range w.bodies {
		if w.bodies[i].entity == e {
			if w.Arena.IsStatic(e) {
				return false
			}
			w.bodies[i].velocity = velocity
			return true
		}
	}
	return false
}

// Entities returns the live scene entities in spawn order.
func (w *World) Entities() []actor.Entity {
	entities := make([]actor.Entity, len(w.bodies))
	for i, b := range w.bodies {
		entities[i] = b.entity
	}
	return entities
}

// NameOf returns the name the entity was spawned with.
func (w *World) NameOf(e actor.Entity) string {
	for _, b := range w.bodies {
		if b.entity == e {
			return b.name
		}
	}
	return ""
}

// DrawColliders outlines every live collider.
func (w *World) DrawColliders(d debug.Drawer) {
	for _, b := range w.bodies {
		if c := w.Arena.Collider(b.entity); c != nil {
			d.DrawRect(c.AABB(), debug.ColliderColor)
		}
	}
}

func (w *World) Ticks() int {
	return w.ticks
}
