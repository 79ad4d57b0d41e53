package actor

import (
	"testing"

	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
)

func createCollider(t *testing.T, a *Arena, l layer.CollisionLayer, x, y, w, h float64, static bool) *BoxCollider {
	t.Helper()
	e := a.Create(NewTransform(x, y), static)
	c, err := a.AttachCollider(e, l, mgl64.Vec2{w, h}, mgl64.Vec2{})
	if err != nil {
		t.Fatalf("AttachCollider: %v", err)
	}
	return c
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name        string
		a, b        [4]float64
		colliding   bool
		normal      mgl64.Vec2
		penetration float64
	}{
		{"overlap on the right", [4]float64{0, 0, 10, 10}, [4]float64{8, 0, 10, 10}, true, mgl64.Vec2{-1, 0}, 2},
		{"overlap on the left", [4]float64{8, 0, 10, 10}, [4]float64{0, 0, 10, 10}, true, mgl64.Vec2{1, 0}, 2},
		{"landing on top", [4]float64{0, 0, 10, 10}, [4]float64{0, 9, 10, 10}, true, mgl64.Vec2{0, -1}, 1},
		{"hitting a ceiling", [4]float64{0, 9, 10, 10}, [4]float64{0, 0, 10, 10}, true, mgl64.Vec2{0, 1}, 1},
		{"touching edges", [4]float64{0, 0, 10, 10}, [4]float64{10, 0, 10, 10}, false, mgl64.Vec2{}, 0},
		{"separated", [4]float64{0, 0, 10, 10}, [4]float64{30, 30, 10, 10}, false, mgl64.Vec2{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := NewArena()
			a := createCollider(t, arena, layer.Player, tt.a[0], tt.a[1], tt.a[2], tt.a[3], false)
			b := createCollider(t, arena, layer.Tile, tt.b[0], tt.b[1], tt.b[2], tt.b[3], true)

			m := a.Intersects(b)
			if m.Colliding != tt.colliding {
				t.Fatalf("Colliding = %v, want %v", m.Colliding, tt.colliding)
			}
			if !tt.colliding {
				return
			}
			if m.Normal != tt.normal {
				t.Errorf("Normal = %v, want %v", m.Normal, tt.normal)
			}
			if m.Penetration != tt.penetration {
				t.Errorf("Penetration = %v, want %v", m.Penetration, tt.penetration)
			}
		})
	}
}

func TestResolveOverlap_MovesOnlyDynamicOwner(t *testing.T) {
	arena := NewArena()
	player := createCollider(t, arena, layer.Player, 0, 0, 10, 10, false)
	tile := createCollider(t, arena, layer.Tile, 8, 0, 10, 10, true)

	m := player.Intersects(tile)
	player.ResolveOverlap(m)

	if got := player.AABB(); got != NewAABB(mgl64.Vec2{-2, 0}, mgl64.Vec2{10, 10}) {
		t.Errorf("player bounds after correction = %v", got)
	}
	if player.Intersects(tile).Colliding {
		t.Errorf("player should no longer overlap the tile")
	}

	// correcting the static side is a no-op
	tile.ResolveOverlap(tile.Intersects(player))
	tile.ResolveOverlap(Manifold{Colliding: true, Normal: mgl64.Vec2{1, 0}, Penetration: 5})
	if got := tile.AABB(); got != NewAABB(mgl64.Vec2{8, 0}, mgl64.Vec2{10, 10}) {
		t.Errorf("static tile moved to %v", got)
	}
}

func TestResolveOverlap_IgnoresNonColliding(t *testing.T) {
	arena := NewArena()
	c := createCollider(t, arena, layer.Player, 3, 4, 1, 1, false)
	c.ResolveOverlap(Manifold{Normal: mgl64.Vec2{1, 0}, Penetration: 10})

	if pos, _ := arena.Position(c.Owner()); pos != (mgl64.Vec2{3, 4}) {
		t.Errorf("position changed to %v", pos)
	}
}

func TestResolveOverlap_IgnoresPendingRemoval(t *testing.T) {
	arena := NewArena()
	c := createCollider(t, arena, layer.Projectile, 0, 0, 4, 4, false)
	npc := createCollider(t, arena, layer.NPC, 2, 0, 10, 10, false)
	arena.QueueRemoval(c.Owner())

	c.ResolveOverlap(c.Intersects(npc))

	if pos, _ := arena.Position(c.Owner()); pos != (mgl64.Vec2{0, 0}) {
		t.Errorf("departing collider moved to %v", pos)
	}
}

func TestListenerFuncs(t *testing.T) {
	var enter, stay, exit int
	l := ListenerFuncs{
		Enter: func(self, other *BoxCollider) { enter++ },
		Exit:  func(self, other *BoxCollider) { exit++ },
	}
	l.OnCollisionEnter(nil, nil)
	l.OnCollisionStay(nil, nil)
	l.OnCollisionExit(nil, nil)

	if enter != 1 || stay != 0 || exit != 1 {
		t.Errorf("enter=%d stay=%d exit=%d", enter, stay, exit)
	}
}
