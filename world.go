package quadspace

import (
	"log"
	"math"
)

const (
	DefaultCapacity        = 4
	DefaultMaxDepth        = 8
	DefaultUpdateThreshold = 2.0
)

// StayPolicy chooses the direction reported by stay callbacks.
type StayPolicy int

const (
	// StayCached repeats the direction computed when the pair was discovered.
	StayCached StayPolicy = iota
	// StayRecompute recomputes the direction from the initiator every step.
	StayRecompute
)

// World is a quadtree of entities plus the collision state between them.
// It is not safe for concurrent use; drive it from the simulation loop.
type World struct {
	// Verbose logs entities the tree could not file.
	Verbose bool

	root            *Node
	capacity        int
	maxDepth        int
	updateThreshold float64
	directionFunc   DirectionFunc
	stayPolicy      StayPolicy

	byID     map[int]*Entity
	dirty    map[*Entity]struct{}
	reinsert map[*Entity]struct{}
	arbiters map[HashValue]*Arbiter
	// Pairs already evaluated during the current step.
	processed map[HashValue]struct{}

	// Furthest any entity's box has reached outside its node, per axis.
	slack Vector

	stamp   uint
	curr_dt float64

	locked            int
	postStepCallbacks []PostStepCallback
	listeners         []Listener
}

// NewWorld creates a world whose root node covers bb. Pick bb generously:
// entities whose center falls outside it are not tracked.
func NewWorld(bb BB, capacity int) *World {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &World{
		root:            NewNode(bb, capacity, 0, DefaultMaxDepth),
		capacity:        capacity,
		maxDepth:        DefaultMaxDepth,
		updateThreshold: DefaultUpdateThreshold,
		directionFunc:   CenterDirection,
		stayPolicy:      StayCached,
		byID:            map[int]*Entity{},
		dirty:           map[*Entity]struct{}{},
		reinsert:        map[*Entity]struct{}{},
		arbiters:        map[HashValue]*Arbiter{},
		processed:       map[HashValue]struct{}{},
	}
}

func (world *World) Root() *Node {
	return world.root
}

func (world *World) MaxDepth() int {
	return world.maxDepth
}

// SetMaxDepth changes the split limit and refiles every entity.
func (world *World) SetMaxDepth(maxDepth int) {
	assert(world.locked == 0, "SetMaxDepth called during Step")
	world.maxDepth = maxDepth
	world.rebuild()
}

func (world *World) UpdateThreshold() float64 {
	return world.updateThreshold
}

// SetUpdateThreshold sets how far an entity must move on one axis before
// the world re-checks it.
func (world *World) SetUpdateThreshold(threshold float64) {
	world.updateThreshold = threshold
}

func (world *World) SetDirectionFunc(f DirectionFunc) {
	if f == nil {
		f = CenterDirection
	}
	world.directionFunc = f
}

func (world *World) SetStayPolicy(policy StayPolicy) {
	world.stayPolicy = policy
}

// Stamp is the number of completed or running steps.
func (world *World) Stamp() uint {
	return world.stamp
}

// CurrentTimeStep is the dt passed to the running or last Step.
func (world *World) CurrentTimeStep() float64 {
	return world.curr_dt
}

func (world *World) IsLocked() bool {
	return world.locked > 0
}

func (world *World) AddListener(listener Listener) {
	world.listeners = append(world.listeners, listener)
}

// Count is the number of entities the world knows about.
func (world *World) Count() int {
	return len(world.byID)
}

func (world *World) Lookup(id int) *Entity {
	return world.byID[id]
}

// Each calls f for every entity in ascending id order.
func (world *World) Each(f func(e *Entity)) {
	entities := make([]*Entity, 0, len(world.byID))
	for _, e := range world.byID {
		entities = append(entities, e)
	}
	sortEntities(entities)
	for _, e := range entities {
		f(e)
	}
}

// Insert creates an entity and adds it to the world. The bool is false when
// the entity's center lies outside the world or id does not fit in an int32,
// and the entity is not tracked.
func (world *World) Insert(id int, x, y, w, h float64, owner interface{}) (*Entity, bool) {
	e := NewEntity(id, x, y, w, h, owner)
	return e, world.Add(e)
}

// Add files e in the tree and schedules a collision check for the next
// Step. An entity already registered under the same id is removed first,
// without exit callbacks. During Step the work is deferred until the step
// ends and Add reports true.
//
// Ids must fit in an int32, and an entity belongs to one world at a time;
// Add reports false otherwise.
func (world *World) Add(e *Entity) bool {
	if e.id < math.MinInt32 || e.id > math.MaxInt32 {
		if world.Verbose {
			log.Printf("quadspace: entity id %d out of range", e.id)
		}
		return false
	}
	if e.world != nil && e.world != world {
		if world.Verbose {
			log.Printf("quadspace: entity %d belongs to another world", e.id)
		}
		return false
	}
	if world.locked > 0 {
		world.AddPostStepCallback(func(world *World, key interface{}) {
			world.Add(e)
		}, nil)
		return true
	}

	if prev := world.byID[e.id]; prev != nil {
		if prev == e {
			return e.Tracked()
		}
		world.Remove(prev)
	}

	e.SetRect(e.x, e.y, e.w, e.h)
	e.last = e.Position()

	e.world = world
	if !world.root.Insert(e) {
		e.world = nil
		if world.Verbose {
			log.Printf("quadspace: entity %d center %v outside world %v", e.id, e.center, world.root.bb)
		}
		return false
	}

	world.byID[e.id] = e
	world.dirty[e] = struct{}{}
	return true
}

// Update sets the geometry of e and applies the movement threshold.
func (world *World) Update(e *Entity, x, y, w, h float64) {
	if e == nil || e.world != world {
		return
	}
	e.SetRect(x, y, w, h)
	world.Touch(e)
}

// Touch tells the world that e's geometry may have changed. Movements at or
// under the update threshold are ignored. Unknown entities are ignored.
func (world *World) Touch(e *Entity) {
	if e == nil || e.world != world {
		return
	}
	world.growSlack(e)
	if world.locked > 0 {
		world.AddPostStepCallback(func(world *World, key interface{}) {
			world.Touch(e)
		}, nil)
		return
	}

	if !e.updateDirty(world.updateThreshold) {
		return
	}

	if e.needsReinsertion() {
		world.reinsert[e] = struct{}{}
	} else {
		world.dirty[e] = struct{}{}
	}
}

// Remove drops e from the world. Active collisions are torn down without
// exit callbacks. Removing an unknown entity is a no-op.
func (world *World) Remove(e *Entity) bool {
	if e == nil || e.world != world {
		return false
	}
	if world.locked > 0 {
		world.AddPostStepCallback(func(world *World, key interface{}) {
			world.Remove(e)
		}, nil)
		return true
	}

	if e.node != nil && !world.root.Remove(e) {
		log.Println("Internal Error: entity", e.id, "was not found in its node")
	}

	for other, arb := range e.collisions {
		delete(other.collisions, e)
		delete(world.arbiters, arb.key)
	}
	e.collisions = map[*Entity]*Arbiter{}

	delete(world.byID, e.id)
	delete(world.dirty, e)
	delete(world.reinsert, e)
	e.world = nil
	e.node = nil
	return true
}

func (world *World) RemoveID(id int) bool {
	return world.Remove(world.byID[id])
}

// Clear removes every entity without callbacks and resets the tree.
func (world *World) Clear() {
	if world.locked > 0 {
		world.AddPostStepCallback(func(world *World, key interface{}) {
			world.Clear()
		}, nil)
		return
	}

	for _, e := range world.byID {
		e.world = nil
		e.node = nil
		e.collisions = map[*Entity]*Arbiter{}
	}
	world.root = NewNode(world.root.bb, world.capacity, 0, world.maxDepth)
	world.byID = map[int]*Entity{}
	world.dirty = map[*Entity]struct{}{}
	world.reinsert = map[*Entity]struct{}{}
	world.arbiters = map[HashValue]*Arbiter{}
	world.slack = Vector{}
}

// rebuild refiles every tracked entity into a fresh tree.
func (world *World) rebuild() {
	old := world.root
	world.root = NewNode(old.bb, world.capacity, 0, world.maxDepth)
	world.slack = Vector{}
	old.Each(func(e *Entity) {
		e.node = nil
		if !world.root.Insert(e) {
			log.Println("Internal Error: entity", e.id, "could not be refiled")
		}
	})
}

// growSlack widens the query slack to cover how far e's box reaches
// outside the node holding it. Movement under the threshold and size changes
// do not refile an entity, so this can exceed its half size.
func (world *World) growSlack(e *Entity) {
	if e.node == nil {
		return
	}
	bb, nb := e.BB(), e.node.bb
	world.slack = world.slack.Max(Vector{
		X: math.Max(nb.L-bb.L, bb.R-nb.R),
		Y: math.Max(nb.T-bb.T, bb.B-nb.B),
	})
}

func (world *World) query(bb BB) map[*Entity]struct{} {
	results := map[*Entity]struct{}{}
	world.root.Query(bb, world.slack, results)
	return results
}

func sortedSet(set map[*Entity]struct{}) []*Entity {
	entities := make([]*Entity, 0, len(set))
	for e := range set {
		entities = append(entities, e)
	}
	sortEntities(entities)
	return entities
}

// QueryBB returns the entities whose boxes intersect bb, ordered by id.
func (world *World) QueryBB(bb BB) []*Entity {
	return sortedSet(world.query(bb))
}

// Query returns the owners of the entities intersecting the rectangle,
// ordered by entity id.
func (world *World) Query(x, y, w, h float64) []interface{} {
	entities := world.QueryBB(NewBBForRect(x, y, w, h))
	owners := make([]interface{}, len(entities))
	for i, e := range entities {
		owners[i] = e.owner
	}
	return owners
}

// QueryEntity returns the entities overlapping e, excluding e itself.
func (world *World) QueryEntity(e *Entity) []*Entity {
	found := world.query(e.BB())
	delete(found, e)
	return sortedSet(found)
}

// Contact describes one active collision from the point of view of the
// entity it was requested for.
type Contact struct {
	Other     *Entity
	Dir       Direction
	Initiator bool
}

// Collisions returns the active collisions of e as of the last Step,
// ordered by the other entity's id.
func (world *World) Collisions(e *Entity) []Contact {
	if e == nil || e.world != world {
		return nil
	}
	others := e.sortedCollisions()
	contacts := make([]Contact, len(others))
	for i, other := range others {
		arb := e.collisions[other]
		contacts[i] = Contact{
			Other:     other,
			Dir:       arb.dirFor(e),
			Initiator: arb.a == e,
		}
	}
	return contacts
}

// ArbiterCount is the number of active collision pairs.
func (world *World) ArbiterCount() int {
	return len(world.arbiters)
}

type PostStepCallbackFunc func(world *World, key interface{})

type PostStepCallback struct {
	callback PostStepCallbackFunc
	key      interface{}
}

// AddPostStepCallback schedules f to run once the current Step finishes.
// A non-nil key is only scheduled once per step; false is returned for a
// duplicate. Outside of Step, f runs immediately.
func (world *World) AddPostStepCallback(f PostStepCallbackFunc, key interface{}) bool {
	if world.locked == 0 {
		f(world, key)
		return true
	}
	if key != nil {
		for _, cb := range world.postStepCallbacks {
			if cb.key == key {
				return false
			}
		}
	}
	world.postStepCallbacks = append(world.postStepCallbacks, PostStepCallback{f, key})
	return true
}

func (world *World) Lock() {
	world.locked++
}

func (world *World) Unlock(runPostStep bool) {
	world.locked--
	if world.locked < 0 {
		log.Fatal("World lock underflow")
	}
	if world.locked != 0 || !runPostStep {
		return
	}

	// Callbacks may schedule more callbacks.
	for i := 0; i < len(world.postStepCallbacks); i++ {
		cb := world.postStepCallbacks[i]
		cb.callback(world, cb.key)
	}
	world.postStepCallbacks = world.postStepCallbacks[:0]
}
