package hitbox

import (
	"github.com/akmonengine/hitbox/actor"
)

type pairKey struct {
	ownerA actor.Entity
	ownerB actor.Entity
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(a, b *actor.BoxCollider) pairKey {
	ownerA, ownerB := a.Owner(), b.Owner()
	if ownerB < ownerA {
		ownerA, ownerB = ownerB, ownerA
	}
	return pairKey{ownerA: ownerA, ownerB: ownerB}
}

// Contact is a tracked pair, in the order it was first detected: First is
// the collider whose scan found Second.
type Contact struct {
	First  *actor.BoxCollider
	Second *actor.BoxCollider
}

// Contacts is the set of unordered collider pairs currently touching.
// Iteration follows insertion order.
type Contacts struct {
	pairs []Contact
	index map[pairKey]int
}

func NewContacts() *Contacts {
	return &Contacts{
		index: make(map[pairKey]int),
	}
}

// Begin records the pair. It returns false when {a, b} was already tracked,
// in either order.
func (c *Contacts) Begin(a, b *actor.BoxCollider) bool {
	key := makePairKey(a, b)
	if _, ok := c.index[key]; ok {
		return false
	}
	c.index[key] = len(c.pairs)
	c.pairs = append(c.pairs, Contact{First: a, Second: b})
	return true
}

func (c *Contacts) Has(a, b *actor.BoxCollider) bool {
	_, ok := c.index[makePairKey(a, b)]
	return ok
}

func (c *Contacts) Len() int {
	return len(c.pairs)
}

// Pairs returns a copy of the tracked pairs.
func (c *Contacts) Pairs() []Contact {
	pairs := make([]Contact, len(c.pairs))
	copy(pairs, c.pairs)
	return pairs
}

// Retain keeps the pairs for which keep returns true, preserving order.
func (c *Contacts) Retain(keep func(Contact) bool) {
	n := 0
	for _, pair := range c.pairs {
		if keep(pair) {
			c.pairs[n] = pair
			n++
		}
	}
	clear(c.pairs[n:])
	c.pairs = c.pairs[:n]

	clear(c.index)
	for i, pair := range c.pairs {
		c.index[makePairKey(pair.First, pair.Second)] = i
	}
}

func (c *Contacts) Clear() {
	clear(c.pairs)
	c.pairs = c.pairs[:0]
	clear(c.index)
}
