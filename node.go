package quadspace

// Node is one region of the quadtree. A leaf holds entities directly; a
// split node owns four children and keeps only the entities that no child
// accepted.
type Node struct {
	bb       BB
	capacity int
	depth    int
	maxDepth int

	// NW, NE, SW, SE. All nil for a leaf.
	children [4]*Node
	entities []*Entity
}

func NewNode(bb BB, capacity, depth, maxDepth int) *Node {
	return &Node{
		bb:       bb,
		capacity: capacity,
		depth:    depth,
		maxDepth: maxDepth,
		entities: make([]*Entity, 0, capacity),
	}
}

func (node *Node) BB() BB {
	return node.bb
}

func (node *Node) Depth() int {
	return node.depth
}

func (node *Node) IsLeaf() bool {
	return node.children[0] == nil
}

// Child returns quadrant i (NW, NE, SW or SE), nil for a leaf.
func (node *Node) Child(i int) *Node {
	return node.children[i]
}

// Entities returns the entities held by this node, excluding children.
func (node *Node) Entities() []*Entity {
	return node.entities
}

// Insert files e by its center. It returns false only when the center lies
// outside the node.
func (node *Node) Insert(e *Entity) bool {
	if !node.bb.ContainsVect(e.center) {
		return false
	}

	if node.IsLeaf() {
		if len(node.entities) < node.capacity || node.depth >= node.maxDepth {
			node.add(e)
			return true
		}
		node.split(e)
		return true
	}

	if !node.insertChild(e) {
		// The center sits on a seam no child accepted.
		node.add(e)
	}
	return true
}

func (node *Node) insertChild(e *Entity) bool {
	for _, child := range node.children {
		if child.Insert(e) {
			return true
		}
	}
	return false
}

func (node *Node) add(e *Entity) {
	node.entities = append(node.entities, e)
	e.node = node
	if e.world != nil {
		e.world.growSlack(e)
	}
}

// split creates the four children and redistributes the node's entities
// together with the one that overflowed it.
func (node *Node) split(e *Entity) {
	for i := range node.children {
		node.children[i] = NewNode(node.bb.Quadrant(i), node.capacity, node.depth+1, node.maxDepth)
	}

	pending := append(node.entities, e)
	node.entities = nil
	for _, p := range pending {
		if !node.insertChild(p) {
			node.add(p)
		}
	}
}

// Remove unlinks e from this node or one of its descendants, merging
// children that became sparse on the way back up.
func (node *Node) Remove(e *Entity) bool {
	for i, v := range node.entities {
		if v.id == e.id {
			node.entities = append(node.entities[:i], node.entities[i+1:]...)
			e.node = nil
			return true
		}
	}

	if node.IsLeaf() {
		return false
	}

	for _, child := range node.children {
		// Node bounds nest, so only the branch containing the holding node
		// can have it. The entity's center may already be elsewhere.
		if e.node != nil && !child.bb.ContainsVect(e.node.bb.Center()) {
			continue
		}
		if child.Remove(e) {
			node.tryMerge()
			return true
		}
	}
	return false
}

// tryMerge folds four leaf children back into this node when together they
// fit its capacity.
func (node *Node) tryMerge() bool {
	if node.IsLeaf() {
		return false
	}

	count := 0
	for _, child := range node.children {
		if !child.IsLeaf() {
			return false
		}
		count += len(child.entities)
	}
	if count > node.capacity {
		return false
	}

	for i, child := range node.children {
		for _, e := range child.entities {
			node.add(e)
		}
		node.children[i] = nil
	}
	return true
}

// Query adds every entity whose box intersects bb to results. slack is how
// far an entity's box may reach outside the node holding it.
func (node *Node) Query(bb BB, slack Vector, results map[*Entity]struct{}) {
	if !node.bb.Expand(slack).Intersects(bb) {
		return
	}

	for _, e := range node.entities {
		if e.BB().Intersects(bb) {
			results[e] = struct{}{}
		}
	}

	if !node.IsLeaf() {
		for _, child := range node.children {
			child.Query(bb, slack, results)
		}
	}
}

// Count returns the number of entities in this subtree.
func (node *Node) Count() int {
	count := len(node.entities)
	if !node.IsLeaf() {
		for _, child := range node.children {
			count += child.Count()
		}
	}
	return count
}

// Each calls f for every entity in this subtree.
func (node *Node) Each(f func(e *Entity)) {
	for _, e := range node.entities {
		f(e)
	}
	if !node.IsLeaf() {
		for _, child := range node.children {
			child.Each(f)
		}
	}
}

// EachNode calls f for this node and every descendant, parents first.
func (node *Node) EachNode(f func(n *Node)) {
	f(node)
	if !node.IsLeaf() {
		for _, child := range node.children {
			child.EachNode(f)
		}
	}
}
