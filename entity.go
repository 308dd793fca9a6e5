package quadspace

import (
	"math"
	"sort"
)

// Entity is a tracked axis-aligned box with a stable id. The collaborator
// that created it owns its lifetime; a World only references it.
type Entity struct {
	id         int
	x, y, w, h float64

	center Vector
	// Position at the last accepted dirty check.
	last Vector

	owner   interface{}
	handler CollisionHandler

	world *World
	node  *Node

	collisions map[*Entity]*Arbiter
}

func NewEntity(id int, x, y, w, h float64, owner interface{}) *Entity {
	e := &Entity{
		id:         id,
		owner:      owner,
		handler:    &defaultHandler,
		collisions: map[*Entity]*Arbiter{},
	}
	e.SetRect(x, y, w, h)
	e.last = Vector{x, y}
	return e
}

func (e *Entity) ID() int {
	return e.id
}

// Owner is the collaborator object the entity was created for.
func (e *Entity) Owner() interface{} {
	return e.owner
}

func (e *Entity) Position() Vector {
	return Vector{e.x, e.y}
}

func (e *Entity) Size() Vector {
	return Vector{e.w, e.h}
}

func (e *Entity) Center() Vector {
	return e.center
}

func (e *Entity) BB() BB {
	return NewBBForRect(e.x, e.y, e.w, e.h)
}

// World returns the world tracking e, or nil once it has been removed.
func (e *Entity) World() *World {
	return e.world
}

// Tracked reports whether e is filed in a world's tree.
func (e *Entity) Tracked() bool {
	return e.world != nil && e.node != nil
}

// Node returns the tree node currently holding e.
func (e *Entity) Node() *Node {
	return e.node
}

// SetRect changes the geometry without telling the world. Call
// World.Touch afterwards, or use World.Update instead.
func (e *Entity) SetRect(x, y, w, h float64) {
	e.x, e.y, e.w, e.h = x, y, w, h
	e.center = Vector{x + w/2, y + h/2}
}

func (e *Entity) SetPosition(x, y float64) {
	e.SetRect(x, y, e.w, e.h)
}

func (e *Entity) SetHandler(handler CollisionHandler) {
	if handler == nil {
		handler = &defaultHandler
	}
	e.handler = handler
}

// SetCollisionFuncs installs closures as the entity's handler. Nil fields
// are ignored.
func (e *Entity) SetCollisionFuncs(funcs CollisionFuncs) {
	e.handler = &funcs
}

// updateDirty refreshes the center and reports whether the entity moved
// further than threshold on either axis since the last accepted check.
func (e *Entity) updateDirty(threshold float64) bool {
	e.center = Vector{e.x + e.w/2, e.y + e.h/2}
	if math.Abs(e.x-e.last.X) > threshold || math.Abs(e.y-e.last.Y) > threshold {
		e.last = Vector{e.x, e.y}
		return true
	}
	return false
}

// needsReinsertion reports whether the center left the holding node.
func (e *Entity) needsReinsertion() bool {
	if e.node == nil {
		return true
	}
	return !e.node.bb.ContainsVect(e.center)
}

// Overlaps is inclusive: entities whose edges touch overlap.
func (e *Entity) Overlaps(other *Entity) bool {
	return !(e.x+e.w < other.x || e.x > other.x+other.w || e.y+e.h < other.y || e.y > other.y+other.h)
}

// DirectionTo reports which side of e the other entity is on, using the
// center delta.
func (e *Entity) DirectionTo(other *Entity) Direction {
	return CenterDirection(e, other)
}

// CollidingWith reports whether e and other are in an active collision.
func (e *Entity) CollidingWith(other *Entity) bool {
	_, ok := e.collisions[other]
	return ok
}

// CollisionCount is the number of entities e currently collides with.
func (e *Entity) CollisionCount() int {
	return len(e.collisions)
}

// sortedCollisions returns the colliding entities ordered by id.
func (e *Entity) sortedCollisions() []*Entity {
	others := make([]*Entity, 0, len(e.collisions))
	for other := range e.collisions {
		others = append(others, other)
	}
	sortEntities(others)
	return others
}

func sortEntities(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].id < entities[j].id
	})
}
