package quadspace

// HashValue identifies an unordered pair of entity ids.
type HashValue uint64

// HashPair packs the smaller id into the high 32 bits and the larger into
// the low 32 bits, so HashPair(a, b) == HashPair(b, a). Keys are unique only
// for ids in the int32 range, which World.Add enforces.
func HashPair(a, b int) HashValue {
	if a > b {
		a, b = b, a
	}
	return HashValue(uint64(uint32(a))<<32 | uint64(uint32(b)))
}

// Arbiter states
const (
	// Arbiter was created during the current step.
	ArbiterStateFirstCollision = iota
	// Arbiter survived at least one step.
	ArbiterStateNormal
)

// Arbiter is the record of one active collision between two entities.
type Arbiter struct {
	// a discovered the pair, b is the counterpart.
	a, b *Entity
	key  HashValue

	// dir is where b was relative to a when the pair was discovered, or at
	// the last step under StayRecompute. rdir is the same from b's side;
	// it is not always dir.Opposite(), e.g. when the centers coincide.
	dir, rdir Direction

	stamp uint
	state int
}

func newArbiter(a, b *Entity, directionFunc DirectionFunc, stamp uint) *Arbiter {
	assert(a != b, "Entity cannot collide with itself")
	arb := &Arbiter{
		a:     a,
		b:     b,
		key:   HashPair(a.id, b.id),
		stamp: stamp,
		state: ArbiterStateFirstCollision,
	}
	arb.updateDirections(directionFunc)
	return arb
}

// updateDirections classifies the contact from both sides.
func (arb *Arbiter) updateDirections(directionFunc DirectionFunc) {
	arb.dir = directionFunc(arb.a, arb.b)
	arb.rdir = directionFunc(arb.b, arb.a)
}

// Entities returns the initiator and the responder.
func (arb *Arbiter) Entities() (*Entity, *Entity) {
	return arb.a, arb.b
}

func (arb *Arbiter) Key() HashValue {
	return arb.key
}

// Direction is the contact direction from the initiator's side.
func (arb *Arbiter) Direction() Direction {
	return arb.dir
}

// IsFirstContact reports whether the pair was discovered this step.
func (arb *Arbiter) IsFirstContact() bool {
	return arb.state == ArbiterStateFirstCollision
}

// Stamp is the step in which the pair was discovered.
func (arb *Arbiter) Stamp() uint {
	return arb.stamp
}

// other returns the entity on the other side from e.
func (arb *Arbiter) other(e *Entity) *Entity {
	if arb.a == e {
		return arb.b
	}
	return arb.a
}

// dirFor returns the contact direction as seen from e.
func (arb *Arbiter) dirFor(e *Entity) Direction {
	if arb.a == e {
		return arb.dir
	}
	return arb.rdir
}

// thread links the arbiter into both entities' collision sets.
func (arb *Arbiter) thread() {
	arb.a.collisions[arb.b] = arb
	arb.b.collisions[arb.a] = arb
}

// unthread removes the arbiter from both entities' collision sets.
func (arb *Arbiter) unthread() {
	delete(arb.a.collisions, arb.b)
	delete(arb.b.collisions, arb.a)
}
