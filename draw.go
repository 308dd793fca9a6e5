package quadspace

// Draw flags
const (
	DRAW_ENTITIES   = 1 << 0
	DRAW_NODES      = 1 << 1
	DRAW_COLLISIONS = 1 << 2
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer is implemented by renderers that want to visualise a World.
type Drawer interface {
	DrawRect(bb BB, outline, fill FColor, data interface{})
	DrawSegment(a, b Vector, fill FColor, data interface{})

	Flags() uint
	OutlineColor() FColor
	EntityColor(e *Entity, data interface{}) FColor
	NodeColor() FColor
	CollisionColor() FColor
	Data() interface{}
}

func DrawEntity(e *Entity, options Drawer) {
	data := options.Data()
	options.DrawRect(e.BB(), options.OutlineColor(), options.EntityColor(e, data), data)
}

// DrawWorld draws node bounds first, then entities, then a segment between
// the centers of every colliding pair.
func DrawWorld(world *World, options Drawer) {
	flags := options.Flags()
	data := options.Data()

	if flags&DRAW_NODES != 0 {
		color := options.NodeColor()
		world.root.EachNode(func(n *Node) {
			options.DrawRect(n.bb, color, FColor{}, data)
		})
	}

	if flags&DRAW_ENTITIES != 0 {
		world.Each(func(e *Entity) {
			DrawEntity(e, options)
		})
	}

	if flags&DRAW_COLLISIONS != 0 {
		color := options.CollisionColor()
		world.Each(func(e *Entity) {
			for _, other := range e.sortedCollisions() {
				// Each pair once.
				if e.id < other.id {
					options.DrawSegment(e.center, other.center, color, data)
				}
			}
		})
	}
}
