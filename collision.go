package hitbox

import (
	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/layer"
)

// BroadPhase rebuilds the spatial index from every collider of the buckets.
func BroadPhase(tree *Quadtree, buckets ...[]*actor.BoxCollider) {
	tree.Clear()
	for _, bucket := range buckets {
		for _, c := range bucket {
			tree.Insert(c)
		}
	}
}

// NarrowPhase tests a broad-phase candidate against the scanning collider.
// It filters out the scanner itself, candidates not Active and layers the
// scanner does not react to, then runs the AABB test from the scanner's
// point of view.
func NarrowPhase(matrix *layer.Matrix, c, candidate *actor.BoxCollider) (actor.Manifold, bool) {
	if candidate.Owner() == c.Owner() {
		return actor.Manifold{}, false
	}
	if candidate.Lifecycle() != actor.Active {
		return actor.Manifold{}, false
	}
	if !matrix.Reacts(c.Layer(), candidate.Layer()) {
		return actor.Manifold{}, false
	}

	m := c.Intersects(candidate)
	return m, m.Colliding
}
