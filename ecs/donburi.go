package ecs

import (
	"github.com/jakecoffman/quadspace"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ColliderData is the axis-aligned rectangle of an ECS entity, top-left
// corner plus size.
type ColliderData struct {
	X, Y, W, H float64
}

var Collider = donburi.NewComponentType[ColliderData]()

// CollisionEvent is one collision callback translated to ECS entities.
type CollisionEvent struct {
	Kind      quadspace.EventKind
	Self      donburi.Entity
	Other     donburi.Entity
	Dir       quadspace.Direction
	Initiator bool
}

// CollisionEventType is the Donburi event type for collision events.
// Events are queued; consume them with Subscribe and ProcessEvents.
var CollisionEventType = events.NewEventType[CollisionEvent]()

// System mirrors Collider components into a quadspace.World and steps it.
type System struct {
	World *quadspace.World

	query   *donburi.Query
	tracked map[donburi.Entity]*quadspace.Entity
	nextID  int

	// ECS world of the Update in progress.
	current donburi.World
}

func NewSystem(bb quadspace.BB, capacity int) *System {
	s := &System{
		World:   quadspace.NewWorld(bb, capacity),
		query:   donburi.NewQuery(filter.Contains(Collider)),
		tracked: map[donburi.Entity]*quadspace.Entity{},
	}
	s.World.AddListener(s)
	return s
}

// Lookup returns the quadtree entity mirroring an ECS entity, or nil.
func (s *System) Lookup(entity donburi.Entity) *quadspace.Entity {
	return s.tracked[entity]
}

// Update inserts new colliders, moves existing ones, removes the ones whose
// ECS entity is gone or lost its Collider, then steps the world.
func (s *System) Update(w donburi.World, dt float64) {
	s.current = w
	defer func() { s.current = nil }()

	seen := make(map[donburi.Entity]struct{}, len(s.tracked))
	s.query.Each(w, func(entry *donburi.Entry) {
		c := Collider.Get(entry)
		entity := entry.Entity()

		if e, ok := s.tracked[entity]; ok {
			s.World.Update(e, c.X, c.Y, c.W, c.H)
			seen[entity] = struct{}{}
			return
		}

		e, ok := s.World.Insert(s.nextID, c.X, c.Y, c.W, c.H, entity)
		s.nextID++
		if !ok {
			// Outside the world; retried next update.
			return
		}
		s.tracked[entity] = e
		seen[entity] = struct{}{}
	})

	for entity, e := range s.tracked {
		if _, ok := seen[entity]; !ok {
			s.World.Remove(e)
			delete(s.tracked, entity)
		}
	}

	s.World.Step(dt)
}

func (s *System) CollisionEvent(ev quadspace.Event) {
	if s.current == nil {
		return
	}
	CollisionEventType.Publish(s.current, CollisionEvent{
		Kind:      ev.Kind,
		Self:      ev.Self.Owner().(donburi.Entity),
		Other:     ev.Other.Owner().(donburi.Entity),
		Dir:       ev.Dir,
		Initiator: ev.Initiator,
	})
}
