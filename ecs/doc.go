// Package ecs connects a quadspace.World to a donburi ECS world.
//
// Entities that carry the Collider component are mirrored into the
// quadtree on every System.Update, and collision callbacks are published as
// CollisionEventType events for other systems to consume.
package ecs
