package scene

import (
	"testing"

	"github.com/akmonengine/hitbox"
	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/debug"
	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
)

func createTestWorld(t *testing.T, entities ...EntitySpec) *World {
	t.Helper()
	spec := &Spec{
		Name:     "test",
		World:    BoundsSpec{X: -100, Y: -100, Width: 400, Height: 400},
		Entities: entities,
	}
	w, err := NewWorld(spec, nil, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestNewWorld_Default(t *testing.T) {
	recorder := &debug.Recorder{}
	w, err := NewWorld(Default(), recorder, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	if w.Arena.Len() != 10 || w.System.Len() != 10 {
		t.Errorf("arena holds %d entities, system %d colliders, want 10", w.Arena.Len(), w.System.Len())
	}
	if _, ok := w.Find("player"); !ok {
		t.Error("player not found")
	}
	if got := len(w.System.Colliders(layer.Tile)); got != 3 {
		t.Errorf("Tile bucket holds %d colliders, want 3", got)
	}

	w.DrawColliders(recorder)
	if got := recorder.Count(debug.ColliderColor); got != 10 {
		t.Errorf("drew %d colliders, want 10", got)
	}
}

func TestWorld_StepBlocksAgainstStatic(t *testing.T) {
	w := createTestWorld(t,
		EntitySpec{
			Name:     "runner",
			Layer:    layer.Player,
			Collider: ColliderSpec{Width: 10, Height: 10},
			Velocity: VelocitySpec{X: 60},
		},
		EntitySpec{
			Name:      "wall",
			Layer:     layer.Tile,
			Static:    true,
			Transform: TransformSpec{X: 20},
			Collider:  ColliderSpec{Width: 10, Height: 50},
		},
	)
	runner, _ := w.Find("runner")
	wall, _ := w.Find("wall")

	var enter, stay int
	w.System.Events().Subscribe(hitbox.COLLISION_ENTER, func(hitbox.Event) { enter++ })
	w.System.Events().Subscribe(hitbox.COLLISION_STAY, func(hitbox.Event) { stay++ })

	for i := 0; i < 5; i++ {
		w.Step(0.1)
	}

	if pos, _ := w.Arena.Position(runner); pos != (mgl64.Vec2{10, 0}) {
		t.Errorf("runner position = %v, want (10, 0)", pos)
	}
	if pos, _ := w.Arena.Position(wall); pos != (mgl64.Vec2{20, 0}) {
		t.Errorf("wall moved to %v", pos)
	}
	// blocked from the second step on: one enter then a stay per step
	if enter != 1 || stay != 3 {
		t.Errorf("enter=%d stay=%d, want 1 and 3", enter, stay)
	}
	if w.Ticks() != 5 {
		t.Errorf("Ticks = %d, want 5", w.Ticks())
	}
}

func TestWorld_ProjectileDespawnsOnHit(t *testing.T) {
	w := createTestWorld(t,
		EntitySpec{
			Name:      "target",
			Layer:     layer.NPC,
			Transform: TransformSpec{X: 50},
			Collider:  ColliderSpec{Width: 20, Height: 20},
		},
		EntitySpec{
			Name:         "bullet",
			Layer:        layer.Projectile,
			Transform:    TransformSpec{Y: 5},
			Collider:     ColliderSpec{Width: 4, Height: 4},
			Velocity:     VelocitySpec{X: 600},
			DespawnOnHit: true,
		},
	)
	target, _ := w.Find("target")

	var exits []hitbox.CollisionExitEvent
	w.System.Events().Subscribe(hitbox.COLLISION_EXIT, func(e hitbox.Event) {
		exits = append(exits, e.(hitbox.CollisionExitEvent))
	})

	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60)
	}

	if _, ok := w.Find("bullet"); ok {
		t.Fatal("bullet should have despawned")
	}
	if w.Arena.Len() != 1 || len(w.Entities()) != 1 {
		t.Errorf("arena holds %d entities, want 1", w.Arena.Len())
	}
	if pos, _ := w.Arena.Position(target); pos != (mgl64.Vec2{50, 0}) {
		t.Errorf("target moved to %v", pos)
	}
	if len(exits) != 1 || exits[0].ColliderB.Owner() != target {
		t.Errorf("exit events = %d, want exactly one against the target", len(exits))
	}
	if w.System.Contacts().Len() != 0 {
		t.Error("contact survived the despawn")
	}
}

func TestWorld_LifetimeExpires(t *testing.T) {
	w := createTestWorld(t, EntitySpec{
		Name:     "spark",
		Layer:    layer.Default,
		Collider: ColliderSpec{Width: 1, Height: 1},
		Lifetime: 0.1,
	})
	spark, _ := w.Find("spark")

	w.Step(0.04)
	w.Step(0.04)
	if !w.Arena.IsAlive(spark) {
		t.Fatal("spark expired early")
	}

	w.Step(0.04)
	if w.Arena.IsAlive(spark) {
		t.Error("spark should have expired")
	}
	if w.System.Len() != 0 {
		t.Errorf("system still holds %d colliders", w.System.Len())
	}
	if w.NameOf(spark) != "" {
		t.Error("expired entity is still tracked")
	}
}

func TestWorld_Spawn(t *testing.T) {
	w := createTestWorld(t)

	e, err := w.Spawn(EntitySpec{
		Name:     "late",
		Layer:    layer.Player,
		Collider: ColliderSpec{Width: 2, Height: 2},
	})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if w.NameOf(e) != "late" || w.System.Len() != 1 {
		t.Errorf("spawned entity not registered")
	}

	if !w.SetVelocity(e, mgl64.Vec2{10, 0}) {
		t.Fatal("SetVelocity on a dynamic entity should succeed")
	}
	w.Step(0.5)
	if pos, _ := w.Arena.Position(e); pos != (mgl64.Vec2{5, 0}) {
		t.Errorf("position = %v, want (5, 0)", pos)
	}

	wall, _ := w.Spawn(EntitySpec{Layer: layer.Tile, Static: true, Collider: ColliderSpec{Width: 1, Height: 1}})
	if w.SetVelocity(wall, mgl64.Vec2{1, 0}) {
		t.Error("SetVelocity on a static entity should fail")
	}
	if w.SetVelocity(actor.Entity(0), mgl64.Vec2{1, 0}) {
		t.Error("SetVelocity on an unknown entity should fail")
	}

	if _, err := w.Spawn(EntitySpec{Layer: layer.CollisionLayer(42), Collider: ColliderSpec{Width: 1, Height: 1}}); err == nil {
		t.Error("Spawn should reject unknown layers")
	}
}
