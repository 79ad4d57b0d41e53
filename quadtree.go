package hitbox

import (
	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/debug"
)

// ============================================================================
// Types
// ============================================================================

// node is one region of the tree. Items live in the deepest node whose
// bounds fully contain them; straddlers stay in the parent.
type node struct {
	bounds   actor.AABB
	depth    int
	items    []*actor.BoxCollider
	children *[4]node
}

// Quadtree is a region tree over collider bounds, rebuilt every tick by the
// System. Colliders outside the root bounds are kept in the root so that
// Search still reports them.
type Quadtree struct {
	root     node
	capacity int
	maxDepth int

	// owning node of every inserted collider
	nodes map[*actor.BoxCollider]*node
}

// ============================================================================
// Constructor
// ============================================================================

// NewQuadtree creates an empty tree covering bounds. A node splits once it
// holds more than capacity items, until maxDepth is reached.
func NewQuadtree(bounds actor.AABB, capacity, maxDepth int) *Quadtree {
	return &Quadtree{
		root:     node{bounds: bounds},
		capacity: max(1, capacity),
		maxDepth: max(0, maxDepth),
		nodes:    make(map[*actor.BoxCollider]*node),
	}
}

func (q *Quadtree) Bounds() actor.AABB {
	return q.root.bounds
}

// Count returns the number of indexed colliders.
func (q *Quadtree) Count() int {
	return len(q.nodes)
}

// Clear removes every entry and collapses the tree to its root.
func (q *Quadtree) Clear() {
	q.root = node{bounds: q.root.bounds}
	clear(q.nodes)
}

// Insert indexes the collider at its current bounds. Inserting a collider
// twice moves it instead of duplicating it.
func (q *Quadtree) Insert(c *actor.BoxCollider) {
	if _, ok := q.nodes[c]; ok {
		q.Remove(c)
	}
	q.insert(&q.root, c)
}

func (q *Quadtree) insert(n *node, c *actor.BoxCollider) {
	if n.children != nil {
		if child := n.childFor(c.AABB()); child != nil {
			q.insert(child, c)
			return
		}
	}

	n.items = append(n.items, c)
	q.nodes[c] = n

	if n.children == nil && len(n.items) > q.capacity && n.depth < q.maxDepth {
		q.split(n)
	}
}

func (q *Quadtree) split(n *node) {
	quads := n.bounds.Quadrants()
	n.children = &[4]node{}
	for i := range quads {
		n.children[i] = node{bounds: quads[i], depth: n.depth + 1}
	}

	kept := n.items[:0]
	for _, c := range n.items {
		if child := n.childFor(c.AABB()); child != nil {
			q.insert(child, c)
		} else {
			kept = append(kept, c)
		}
	}
	clear(n.items[len(kept):])
	n.items = kept
}

// childFor returns the child quadrant fully containing bounds, or nil.
func (n *node) childFor(bounds actor.AABB) *node {
	for i := range n.children {
		if n.children[i].bounds.Contains(bounds) {
			return &n.children[i]
		}
	}
	return nil
}

// Remove drops the collider from the tree. It reports whether it was indexed.
func (q *Quadtree) Remove(c *actor.BoxCollider) bool {
	n, ok := q.nodes[c]
	if !ok {
		return false
	}
	for i, item := range n.items {
		if item == c {
			n.items = append(n.items[:i], n.items[i+1:]...)
			break
		}
	}
	delete(q.nodes, c)
	return true
}

// UpdatePosition re-files a collider after its bounds changed. Unknown
// colliders are inserted.
func (q *Quadtree) UpdatePosition(c *actor.BoxCollider) {
	q.Remove(c)
	q.insert(&q.root, c)
}

// Search returns every indexed collider whose bounds overlap or touch
// region, each at most once, in tree order.
func (q *Quadtree) Search(region actor.AABB) []*actor.BoxCollider {
	var found []*actor.BoxCollider
	q.root.search(region, &found)
	return found
}

func (n *node) search(region actor.AABB, found *[]*actor.BoxCollider) {
	for _, c := range n.items {
		if c.AABB().Overlaps(region) {
			*found = append(*found, c)
		}
	}
	if n.children == nil {
		return
	}
	for i := range n.children {
		child := &n.children[i]
		if child.bounds.Overlaps(region) {
			child.search(region, found)
		}
	}
}

// DrawDebug outlines every node of the tree.
func (q *Quadtree) DrawDebug(d debug.Drawer) {
	if d == nil {
		return
	}
	q.root.draw(d)
}

func (n *node) draw(d debug.Drawer) {
	d.DrawRect(n.bounds, debug.NodeColor)
	if n.children == nil {
		return
	}
	for i := range n.children {
		n.children[i].draw(d)
	}
}

// Depth returns the depth of the deepest node.
func (q *Quadtree) Depth() int {
	return q.root.maxDepth()
}

func (n *node) maxDepth() int {
	depth := n.depth
	if n.children != nil {
		for i := range n.children {
			depth = max(depth, n.children[i].maxDepth())
		}
	}
	return depth
}
