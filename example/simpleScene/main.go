package main

import (
	"fmt"

	"github.com/akmonengine/hitbox"
	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
)

// EventPrinter prints the contact lifecycle of the entities it listens to
type EventPrinter struct {
	Names map[actor.Entity]string
}

func (p *EventPrinter) name(c *actor.BoxCollider) string {
	if name, ok := p.Names[c.Owner()]; ok {
		return name
	}
	return c.Owner().String()
}

func (p *EventPrinter) OnCollisionEnter(self, other *actor.BoxCollider) {
	fmt.Printf("   ▶ enter  %s <- %s (self %v)\n", p.name(self), p.name(other), self.AABB())
}

func (p *EventPrinter) OnCollisionStay(self, other *actor.BoxCollider) {
	fmt.Printf("   ■ stay   %s <- %s\n", p.name(self), p.name(other))
}

func (p *EventPrinter) OnCollisionExit(self, other *actor.BoxCollider) {
	fmt.Printf("   ◀ exit   %s <- %s\n", p.name(self), p.name(other))
}

// SetupScene creates a falling player above a floor tile, and a projectile
// heading for an NPC
func SetupScene() (*actor.Arena, *hitbox.System, *EventPrinter, map[string]actor.Entity) {
	arena := actor.NewArena()
	system, err := hitbox.NewSystem(arena, hitbox.DefaultConfig())
	if err != nil {
		panic(err)
	}

	printer := &EventPrinter{Names: make(map[actor.Entity]string)}
	entities := make(map[string]actor.Entity)

	spawn := func(name string, l layer.CollisionLayer, position, size mgl64.Vec2, static bool) {
		e := arena.Create(actor.Transform{Position: position}, static)
		if _, err := arena.AttachCollider(e, l, size, mgl64.Vec2{}); err != nil {
			panic(err)
		}
		arena.SetListener(e, printer)
		printer.Names[e] = name
		entities[name] = e
		if err := system.Add(e); err != nil {
			panic(err)
		}
	}

	spawn("floor", layer.Tile, mgl64.Vec2{0, 100}, mgl64.Vec2{200, 20}, true)
	spawn("player", layer.Player, mgl64.Vec2{50, 60}, mgl64.Vec2{16, 32}, false)
	spawn("npc", layer.NPC, mgl64.Vec2{150, 68}, mgl64.Vec2{16, 32}, false)
	spawn("bullet", layer.Projectile, mgl64.Vec2{90, 80}, mgl64.Vec2{4, 4}, false)

	return arena, system, printer, entities
}

func main() {
	fmt.Println("Simple scene: falling player, projectile against an npc")
	fmt.Println("=======================================================")

	arena, system, _, entities := SetupScene()

	// projectiles go away on their first hit
	var despawn []actor.Entity
	system.Events().Subscribe(hitbox.COLLISION_ENTER, func(event hitbox.Event) {
		enter := event.(hitbox.CollisionEnterEvent)
		fmt.Printf("   bus: enter normal=%v penetration=%.2f\n", enter.Manifold.Normal, enter.Manifold.Penetration)
		if enter.ColliderA.Layer() == layer.Projectile {
			despawn = append(despawn, enter.ColliderA.Owner())
		}
	})

	velocities := map[string]mgl64.Vec2{
		"player": {0, 120},
		"bullet": {300, 0},
	}

	const dt float64 = 1.0 / 60.0
	const maxSteps int = 30

	for step := 0; step < maxSteps; step++ {
		fmt.Printf("--- STEP %d ---\n", step+1)

		for _, e := range despawn {
			arena.QueueRemoval(e)
		}
		despawn = despawn[:0]

		var moved []actor.Entity
		for name, v := range velocities {
			e := entities[name]
			if arena.Lifecycle(e) != actor.Active {
				continue
			}
			arena.Translate(e, v.Mul(dt))
			moved = append(moved, e)
		}

		system.ProcessRemovals()
		system.UpdatePositions(moved...)
		system.Update()

		for _, e := range arena.Sweep() {
			fmt.Printf("   swept %s\n", e)
		}

		if p, ok := arena.Position(entities["player"]); ok {
			fmt.Printf("   player at %v, contacts %d\n", p, system.Contacts().Len())
		}
	}

	fmt.Println("Done!")
}
