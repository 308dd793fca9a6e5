package quadspace

import (
	"log"
	"sort"
)

// Step runs the collision lifecycle for one frame: entities that left
// their node are refiled, every entity that moved past the threshold is
// re-queried and diffed against its previous collisions (enter / exit), and
// then every pair that was already colliding receives a stay callback.
//
// Handlers run synchronously. Geometry changed through Entity setters is
// visible immediately, but Add, Touch, Update, Remove and Clear called from
// a handler are deferred until Step returns.
func (world *World) Step(dt float64) {
	if world.locked > 0 {
		log.Println("Internal Error: Step called from a collision handler")
		return
	}

	world.stamp++
	world.curr_dt = dt

	world.Lock()
	{
		world.reinsertDirty()
		world.refreshCollisions()
		world.dispatchStay()

		clear(world.dirty)
		clear(world.reinsert)
		clear(world.processed)
	}
	world.Unlock(true)
}

// reinsertDirty refiles entities whose center left their node.
func (world *World) reinsertDirty() {
	for _, e := range sortedSet(world.reinsert) {
		if e.node != nil && !world.root.Remove(e) {
			log.Println("Internal Error: entity", e.id, "was not found in its node")
		}
		if !world.root.Insert(e) && world.Verbose {
			log.Printf("quadspace: entity %d left the world at %v", e.id, e.center)
		}
		world.dirty[e] = struct{}{}
	}
}

// refreshCollisions diffs the overlaps of every dirty entity against the
// collisions it had before.
func (world *World) refreshCollisions() {
	for _, a := range sortedSet(world.dirty) {
		// An entity outside the world overlaps nothing.
		found := map[*Entity]struct{}{}
		if a.node != nil {
			found = world.query(a.BB())
			delete(found, a)
		}

		for _, b := range sortedSet(found) {
			key := HashPair(a.id, b.id)
			if _, ok := world.processed[key]; ok {
				continue
			}
			world.processed[key] = struct{}{}

			if a.CollidingWith(b) {
				continue
			}

			arb := newArbiter(a, b, world.directionFunc, world.stamp)
			world.arbiters[key] = arb
			arb.thread()

			world.dispatch(EventEnter, a, b, arb.dir, true)
			world.dispatch(EventEnter, b, a, arb.rdir, false)
		}

		for _, b := range a.sortedCollisions() {
			if _, ok := found[b]; ok {
				continue
			}
			arb := a.collisions[b]
			arb.unthread()
			delete(world.arbiters, arb.key)

			world.dispatch(EventExit, a, b, DirectionNone, true)
			world.dispatch(EventExit, b, a, DirectionNone, false)
		}
	}
}

// dispatchStay reports every pair that existed before this step and still
// exists.
func (world *World) dispatchStay() {
	arbiters := make([]*Arbiter, 0, len(world.arbiters))
	for _, arb := range world.arbiters {
		arbiters = append(arbiters, arb)
	}
	sort.Slice(arbiters, func(i, j int) bool {
		return arbiters[i].key < arbiters[j].key
	})

	for _, arb := range arbiters {
		if arb.stamp == world.stamp {
			continue
		}
		arb.state = ArbiterStateNormal

		if world.stayPolicy == StayRecompute {
			arb.updateDirections(world.directionFunc)
		}

		world.dispatch(EventStay, arb.a, arb.b, arb.dir, true)
		world.dispatch(EventStay, arb.b, arb.a, arb.rdir, false)
	}
}

func (world *World) dispatch(kind EventKind, self, other *Entity, dir Direction, initiator bool) {
	switch kind {
	case EventEnter:
		self.handler.CollisionEnter(other, dir, initiator)
	case EventStay:
		self.handler.CollisionStay(other, dir, initiator)
	case EventExit:
		self.handler.CollisionExit(other, initiator)
	}

	if len(world.listeners) == 0 {
		return
	}
	ev := Event{
		Kind:      kind,
		Self:      self,
		Other:     other,
		Dir:       dir,
		Initiator: initiator,
		Stamp:     world.stamp,
	}
	for _, listener := range world.listeners {
		listener.CollisionEvent(ev)
	}
}
