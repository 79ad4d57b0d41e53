package actor

import (
	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
)

// Manifold is the narrow-phase result between two colliders.
type Manifold struct {
	Colliding bool
	// Depth is the overlap along each axis
	Depth mgl64.Vec2
	// Normal is the axis of least penetration, pointing from the other
	// collider toward the tested one
	Normal      mgl64.Vec2
	Penetration float64
}

// MTV returns the translation that separates the tested collider.
func (m Manifold) MTV() mgl64.Vec2 {
	return m.Normal.Mul(m.Penetration)
}

// BoxCollider is the collision capability of an entity.
type BoxCollider struct {
	owner Entity
	arena *Arena
	layer layer.CollisionLayer

	// Size of the box and its offset from the owner position
	Size   mgl64.Vec2
	Offset mgl64.Vec2

	aabb AABB
}

func (c *BoxCollider) Owner() Entity {
	return c.owner
}

func (c *BoxCollider) Layer() layer.CollisionLayer {
	return c.layer
}

// AABB returns the bounds computed at the owner's last move.
func (c *BoxCollider) AABB() AABB {
	return c.aabb
}

func (c *BoxCollider) ComputeAABB(transform Transform) {
	c.aabb = NewAABB(transform.Position.Add(c.Offset), c.Size)
}

func (c *BoxCollider) IsStatic() bool {
	return c.arena.IsStatic(c.owner)
}

func (c *BoxCollider) Lifecycle() Lifecycle {
	return c.arena.Lifecycle(c.owner)
}

// Listener returns the owner's hooks, or nil.
func (c *BoxCollider) Listener() Listener {
	return c.arena.Listener(c.owner)
}

// Intersects runs the narrow phase against other. Boxes that only touch are
// not colliding.
func (c *BoxCollider) Intersects(other *BoxCollider) Manifold {
	depth := c.aabb.Intersection(other.aabb)
	if depth.X() <= 0 || depth.Y() <= 0 {
		return Manifold{}
	}

	center := c.aabb.Center()
	otherCenter := other.aabb.Center()

	m := Manifold{Colliding: true, Depth: depth}
	if depth.X() <= depth.Y() {
		m.Penetration = depth.X()
		if center.X() <= otherCenter.X() {
			m.Normal = mgl64.Vec2{-1, 0}
		} else {
			m.Normal = mgl64.Vec2{1, 0}
		}
	} else {
		m.Penetration = depth.Y()
		if center.Y() <= otherCenter.Y() {
			m.Normal = mgl64.Vec2{0, -1}
		} else {
			m.Normal = mgl64.Vec2{0, 1}
		}
	}
	return m
}

// ResolveOverlap pushes the owner out along the manifold. Static or
// departing owners and non-colliding manifolds are left alone.
func (c *BoxCollider) ResolveOverlap(m Manifold) {
	if !m.Colliding || c.IsStatic() || c.Lifecycle() != Active {
		return
	}
	_ = c.arena.Translate(c.owner, m.MTV())
}
