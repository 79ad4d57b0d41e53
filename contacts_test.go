package hitbox

import (
	"testing"

	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/layer"
)

// =============================================================================
// makePairKey Tests
// =============================================================================

func TestMakePairKey_Normalization(t *testing.T) {
	arena := actor.NewArena()
	a := createTestCollider(t, arena, layer.Player, 0, 0, 1, 1, false)
	b := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)

	if makePairKey(a, b) != makePairKey(b, a) {
		t.Error("makePairKey should normalize pairs to consistent ordering")
	}
}

func TestMakePairKey_DifferentPairs(t *testing.T) {
	arena := actor.NewArena()
	a := createTestCollider(t, arena, layer.Player, 0, 0, 1, 1, false)
	b := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)
	c := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)

	if makePairKey(a, b) == makePairKey(a, c) {
		t.Error("makePairKey should produce different keys for different pairs")
	}
}

// =============================================================================
// Contacts Tests
// =============================================================================

func TestContacts_Begin(t *testing.T) {
	arena := actor.NewArena()
	contacts := NewContacts()
	a := createTestCollider(t, arena, layer.Player, 0, 0, 1, 1, false)
	b := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)

	if !contacts.Begin(a, b) {
		t.Fatal("first Begin should insert the pair")
	}
	if contacts.Begin(a, b) {
		t.Error("Begin on a tracked pair should report false")
	}
	if contacts.Begin(b, a) {
		t.Error("Begin in reverse order should find the same pair")
	}
	if contacts.Len() != 1 {
		t.Errorf("Len = %d, want 1", contacts.Len())
	}
	if !contacts.Has(b, a) {
		t.Error("Has should ignore argument order")
	}

	pair := contacts.Pairs()[0]
	if pair.First != a || pair.Second != b {
		t.Error("pair should keep the order of its first detection")
	}
}

func TestContacts_Retain(t *testing.T) {
	arena := actor.NewArena()
	contacts := NewContacts()
	player := createTestCollider(t, arena, layer.Player, 0, 0, 1, 1, false)
	var tiles []*actor.BoxCollider
	for i := 0; i < 4; i++ {
		tile := createTestCollider(t, arena, layer.Tile, 0, 0, 1, 1, true)
		tiles = append(tiles, tile)
		contacts.Begin(player, tile)
	}

	contacts.Retain(func(pair Contact) bool {
		return pair.Second != tiles[1]
	})

	if contacts.Len() != 3 {
		t.Fatalf("Len = %d, want 3", contacts.Len())
	}
	if contacts.Has(player, tiles[1]) {
		t.Error("dropped pair is still tracked")
	}
	pairs := contacts.Pairs()
	for i, want := range []*actor.BoxCollider{tiles[0], tiles[2], tiles[3]} {
		if pairs[i].Second != want {
			t.Errorf("pair %d out of insertion order", i)
		}
	}
	// the index must follow the compaction
	if contacts.Begin(player, tiles[3]) {
		t.Error("retained pair should still be found")
	}

	contacts.Clear()
	if contacts.Len() != 0 || contacts.Has(player, tiles[0]) {
		t.Error("Clear should forget every pair")
	}
}
