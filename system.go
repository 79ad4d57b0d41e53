package hitbox

import (
	"fmt"
	"log"
	"slices"

	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/debug"
	"github.com/akmonengine/hitbox/layer"
)

// System is the collidable registry. It buckets colliders per layer, owns
// the spatial index and the contact set, and drives the enter/stay/exit
// lifecycle once per Update.
//
// A System is not safe for concurrent use. Listener hooks run synchronously
// inside Update and must not call back into the System.
type System struct {
	arena   *actor.Arena
	matrix  *layer.Matrix
	buckets [layer.Count][]*actor.BoxCollider
	// registered collider of every owner
	owners map[actor.Entity]*actor.BoxCollider

	tree     *Quadtree
	contacts *Contacts
	events   Events

	drawer debug.Drawer
	logger *log.Logger
}

func NewSystem(arena *actor.Arena, cfg Config) (*System, error) {
	if arena == nil {
		return nil, fmt.Errorf("%w: nil arena", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &System{
		arena:    arena,
		matrix:   cfg.Matrix,
		owners:   make(map[actor.Entity]*actor.BoxCollider),
		tree:     NewQuadtree(cfg.Bounds, cfg.NodeCapacity, cfg.MaxDepth),
		contacts: NewContacts(),
		events:   NewEvents(),
		drawer:   cfg.Drawer,
		logger:   cfg.Logger,
	}
	if s.drawer == nil {
		s.drawer = debug.Nop{}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	for _, pair := range s.matrix.Asymmetries() {
		s.logger.Printf("hitbox: %s reacts to %s but not the reverse", pair.From, pair.To)
	}

	return s, nil
}

// Add registers the collider of every given entity in its layer bucket.
// Entities without a collider, or no longer alive, are skipped. A collider
// attached since the last Add replaces the one registered for its owner.
func (s *System) Add(entities ...actor.Entity) error {
	for _, e := range entities {
		c := s.arena.Collider(e)
		if c == nil {
			continue
		}
		if !c.Layer().Valid() {
			return fmt.Errorf("hitbox: add %s: %w: %d", e, layer.ErrUnknownLayer, c.Layer())
		}
		if old, ok := s.owners[e]; ok {
			if old == c {
				continue
			}
			s.unregister(old)
		}
		s.buckets[c.Layer()] = append(s.buckets[c.Layer()], c)
		s.owners[e] = c
	}
	return nil
}

func (s *System) unregister(c *actor.BoxCollider) {
	bucket := s.buckets[c.Layer()]
	for i, other := range bucket {
		if other == c {
			s.buckets[c.Layer()] = slices.Delete(bucket, i, i+1)
			break
		}
	}
	s.tree.Remove(c)
	if s.owners[c.Owner()] == c {
		delete(s.owners, c.Owner())
	}
}

// live reports whether c still belongs to an Active owner that has not been
// given another collider.
func (s *System) live(c *actor.BoxCollider) bool {
	return c.Lifecycle() == actor.Active && s.arena.Collider(c.Owner()) == c
}

// ProcessRemovals drops every collider whose owner is no longer Active or
// was given another collider, both from its bucket and from the spatial index. Existing contacts are
// left to ProcessCollidingObjects so that their exit hooks still fire.
func (s *System) ProcessRemovals() {
	for l := range s.buckets {
		bucket := s.buckets[l]
		n := 0
		for _, c := range bucket {
			if s.live(c) {
				bucket[n] = c
				n++
				continue
			}
			s.tree.Remove(c)
			if s.owners[c.Owner()] == c {
				delete(s.owners, c.Owner())
			}
		}
		clear(bucket[n:])
		s.buckets[l] = bucket[:n]
	}
}

// UpdatePositions refreshes the index entry of every moved entity. Static,
// inactive and collider-less entities are ignored.
func (s *System) UpdatePositions(entities ...actor.Entity) {
	for _, e := range entities {
		if s.arena.Lifecycle(e) != actor.Active || s.arena.IsStatic(e) {
			continue
		}
		c := s.arena.Collider(e)
		if c == nil || s.owners[e] != c {
			continue
		}
		s.tree.UpdatePosition(c)
	}
}

// Resolve scans every reactive layer for new overlaps. For each colliding
// candidate it begins the contact (firing enter on both sides when new),
// debug-draws both rects and pushes the scanning collider out.
func (s *System) Resolve() {
	for _, l := range layer.All() {
		if s.matrix.Mask(l).IsZero() {
			continue
		}
		for _, c := range s.buckets[l] {
			if c.IsStatic() || !s.live(c) {
				continue
			}
			s.resolve(c)
		}
	}
}

func (s *System) resolve(c *actor.BoxCollider) {
	for _, candidate := range s.tree.Search(c.AABB()) {
		// an enter hook may have queued the scanner for removal
		if !s.live(c) {
			return
		}

		m, ok := NarrowPhase(s.matrix, c, candidate)
		if !ok {
			continue
		}

		if s.contacts.Begin(c, candidate) {
			s.enter(c, candidate, m)
		}

		s.drawer.DrawRect(candidate.AABB(), debug.ContactColor)
		s.drawer.DrawRect(c.AABB(), debug.ContactColor)

		// Only the scanner moves, whether the candidate is static or not.
		// A candidate queued for removal by a hook no longer pushes it.
		if candidate.Lifecycle() != actor.Active {
			continue
		}
		c.ResolveOverlap(m)
		s.tree.UpdatePosition(c)
	}
}

// ProcessCollidingObjects re-tests every tracked pair with the current
// bounds. Pairs with a departing owner, a replaced collider or no remaining
// overlap exit and are dropped; the others stay.
func (s *System) ProcessCollidingObjects() {
	s.contacts.Retain(func(pair Contact) bool {
		first, second := pair.First, pair.Second
		if !s.live(first) || !s.live(second) {
			s.exit(first, second)
			return false
		}
		if !first.Intersects(second).Colliding {
			s.exit(first, second)
			return false
		}
		s.stay(first, second)
		return true
	})
}

// Update runs one collision tick. Once it returns, no tracked pair refers
// to an owner queued for removal, so the arena can be swept right away.
func (s *System) Update() {
	s.tree.DrawDebug(s.drawer)
	s.ProcessCollidingObjects()
	BroadPhase(s.tree, s.buckets[:]...)
	s.Resolve()
	s.releaseDeparted()
	s.events.flush()
}

// releaseDeparted exits the pairs whose owner a hook queued for removal
// during this tick, while both sides are still readable.
func (s *System) releaseDeparted() {
	s.contacts.Retain(func(pair Contact) bool {
		if s.live(pair.First) && s.live(pair.Second) {
			return true
		}
		s.exit(pair.First, pair.Second)
		return false
	})
}

func (s *System) enter(a, b *actor.BoxCollider, m actor.Manifold) {
	if listener := a.Listener(); listener != nil {
		listener.OnCollisionEnter(a, b)
	}
	if listener := b.Listener(); listener != nil {
		listener.OnCollisionEnter(b, a)
	}
	s.events.emit(CollisionEnterEvent{ColliderA: a, ColliderB: b, Manifold: m})
}

func (s *System) stay(a, b *actor.BoxCollider) {
	if listener := a.Listener(); listener != nil {
		listener.OnCollisionStay(a, b)
	}
	if listener := b.Listener(); listener != nil {
		listener.OnCollisionStay(b, a)
	}
	s.events.emit(CollisionStayEvent{ColliderA: a, ColliderB: b})
}

func (s *System) exit(a, b *actor.BoxCollider) {
	if listener := a.Listener(); listener != nil {
		listener.OnCollisionExit(a, b)
	}
	if listener := b.Listener(); listener != nil {
		listener.OnCollisionExit(b, a)
	}
	s.events.emit(CollisionExitEvent{ColliderA: a, ColliderB: b})
}

func (s *System) Contacts() *Contacts {
	return s.contacts
}

func (s *System) Tree() *Quadtree {
	return s.tree
}

func (s *System) Events() *Events {
	return &s.events
}

func (s *System) Matrix() *layer.Matrix {
	return s.matrix
}

// Colliders returns the colliders registered on l, in registration order.
func (s *System) Colliders(l layer.CollisionLayer) []*actor.BoxCollider {
	if !l.Valid() {
		return nil
	}
	return s.buckets[l]
}

// Len returns the number of registered colliders.
func (s *System) Len() int {
	n := 0
	for l := range s.buckets {
		n += len(s.buckets[l])
	}
	return n
}
