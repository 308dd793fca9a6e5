package ecs

import (
	"testing"

	"github.com/jakecoffman/quadspace"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newCollider(world donburi.World, x, y float64) donburi.Entity {
	entity := world.Create(Collider)
	Collider.SetValue(world.Entry(entity), ColliderData{X: x, Y: y, W: 10, H: 10})
	return entity
}

func TestSystem_Sync(t *testing.T) {
	world := donburi.NewWorld()
	system := NewSystem(quadspace.NewBBForRect(0, 0, 100, 100), 4)

	a := newCollider(world, 10, 10)
	b := newCollider(world, 50, 50)
	system.Update(world, 1)

	if system.World.Count() != 2 {
		t.Fatalf("expected 2 tracked entities, got %d", system.World.Count())
	}
	if system.Lookup(a).Owner() != a {
		t.Error("quadtree entity should be owned by the ECS entity")
	}

	Collider.SetValue(world.Entry(b), ColliderData{X: 30, Y: 30, W: 10, H: 10})
	system.Update(world, 1)
	if got := system.Lookup(b).Position(); got != (quadspace.Vector{X: 30, Y: 30}) {
		t.Errorf("expected moved position, got %v", got)
	}

	world.Remove(b)
	system.Update(world, 1)
	if system.World.Count() != 1 || system.Lookup(b) != nil {
		t.Errorf("removed ECS entity should leave the quadtree, got %d", system.World.Count())
	}
}

func TestSystem_PublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	system := NewSystem(quadspace.NewBBForRect(0, 0, 100, 100), 4)

	var received []CollisionEvent
	CollisionEventType.Subscribe(world, func(w donburi.World, e CollisionEvent) {
		received = append(received, e)
	})

	a := newCollider(world, 10, 10)
	b := newCollider(world, 15, 10)
	system.Update(world, 1)
	CollisionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0, e1 := received[0], received[1]
	if e0.Kind != quadspace.EventEnter || !e0.Initiator || e0.Self != a || e0.Other != b {
		t.Errorf("event 0: %+v", e0)
	}
	if e1.Kind != quadspace.EventEnter || e1.Initiator || e1.Self != b || e1.Other != a {
		t.Errorf("event 1: %+v", e1)
	}
	if e0.Dir != e1.Dir.Opposite() {
		t.Errorf("directions should mirror: %v %v", e0.Dir, e1.Dir)
	}

	received = nil
	system.Update(world, 1)
	events.ProcessAllEvents(world)
	if len(received) != 2 || received[0].Kind != quadspace.EventStay {
		t.Errorf("expected a stay pair, got %+v", received)
	}
}

func TestSystem_OutsideWorld(t *testing.T) {
	world := donburi.NewWorld()
	system := NewSystem(quadspace.NewBBForRect(0, 0, 100, 100), 4)

	entity := newCollider(world, 500, 500)
	system.Update(world, 1)
	if system.Lookup(entity) != nil {
		t.Fatal("collider outside the world should not be tracked")
	}

	Collider.SetValue(world.Entry(entity), ColliderData{X: 20, Y: 20, W: 10, H: 10})
	system.Update(world, 1)
	if system.Lookup(entity) == nil {
		t.Error("collider should be tracked once it moves inside")
	}
}
