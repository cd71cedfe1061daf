// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

// loopContainer is a circular doubly-linked ring of Elements, keyed by a
// stable integer id rather than by position. Ids survive
// insertion and removal of other nodes, so a cursor can reference a
// specific node across mutations of its neighbours. headID
// is -1 when the ring is empty.
//
// This is a plain id-keyed map rather than container/list (whose
// elements cannot be addressed by a stable id once reordered) or a
// mutex-guarded graph of the kind core.Graph uses for general graphs:
// the kernel runs single-threaded and the ring is always a simple cycle,
// never an arbitrary graph, so neither borrowed-pointer list nodes nor
// adjacency-map locking earn their cost here.
type loopContainer struct {
	nodes  map[int]*loopNode
	headID int
	nextID int

	onItemChanged func()
}

type loopNode struct {
	id         int
	prev, next int
	elem       Element
}

func newLoopContainer() *loopContainer {
	return &loopContainer{nodes: make(map[int]*loopNode), headID: -1}
}

// Len returns the number of nodes in the ring.
func (c *loopContainer) Len() int {
	return len(c.nodes)
}

func (c *loopContainer) changed() {
	if c.onItemChanged != nil {
		c.onItemChanged()
	}
}

// PushBack inserts elem at the end of the ring (immediately before head,
// in traversal order) and returns its id. If the ring is empty, elem
// becomes the sole node and the new head.
func (c *loopContainer) PushBack(elem Element) int {
	id := c.nextID
	c.nextID++
	node := &loopNode{id: id, elem: elem}

	if c.headID < 0 {
		node.prev, node.next = id, id
		c.nodes[id] = node
		c.headID = id
		c.changed()
		return id
	}

	tail := c.nodes[c.headID].prev
	c.linkBetween(tail, c.headID, node)
	c.changed()
	return id
}

// linkBetween splices node in between the nodes with ids prevID and
// nextID, which must already be adjacent.
func (c *loopContainer) linkBetween(prevID, nextID int, node *loopNode) {
	node.prev, node.next = prevID, nextID
	c.nodes[node.id] = node
	c.nodes[prevID].next = node.id
	c.nodes[nextID].prev = node.id
}

// Remove deletes the node with the given id. Returns the id of the node
// that followed it (or -1 if the ring is now empty).
func (c *loopContainer) Remove(id int) int {
	node, ok := c.nodes[id]
	precondition(ok, "loopContainer.Remove: unknown id %d", id)

	if node.next == id {
		// sole remaining node
		delete(c.nodes, id)
		c.headID = -1
		c.changed()
		return -1
	}

	c.nodes[node.prev].next = node.next
	c.nodes[node.next].prev = node.prev
	if c.headID == id {
		c.headID = node.next
	}
	delete(c.nodes, id)
	c.changed()
	return node.next
}

// Element returns the element stored at id.
func (c *loopContainer) Element(id int) Element {
	return c.nodes[id].elem
}

// SetElement replaces the element stored at id.
func (c *loopContainer) SetElement(id int, elem Element) {
	c.nodes[id].elem = elem
	c.changed()
}

// Next and Previous return the neighbouring ids of id.
func (c *loopContainer) Next(id int) int     { return c.nodes[id].next }
func (c *loopContainer) Previous(id int) int { return c.nodes[id].prev }

// InsertAfter creates a new node holding elem immediately after id, and
// returns its id.
func (c *loopContainer) InsertAfter(id int, elem Element) int {
	node := c.nodes[id]
	newID := c.nextID
	c.nextID++
	c.linkBetween(id, node.next, &loopNode{id: newID, elem: elem})
	c.changed()
	return newID
}

// InsertBefore creates a new node holding elem immediately before id, and
// returns its id.
func (c *loopContainer) InsertBefore(id int, elem Element) int {
	node := c.nodes[id]
	newID := c.nextID
	c.nextID++
	c.linkBetween(node.prev, id, &loopNode{id: newID, elem: elem})
	c.changed()
	return newID
}

// IDs returns every node id in traversal order starting at the head.
// Returns nil for an empty ring.
func (c *loopContainer) IDs() []int {
	if c.headID < 0 {
		return nil
	}
	out := make([]int, 0, len(c.nodes))
	id := c.headID
	for {
		out = append(out, id)
		id = c.nodes[id].next
		if id == c.headID {
			break
		}
	}
	return out
}

// FindID returns the id of the first node (in traversal order from head)
// whose element satisfies pred, and true. Returns (-1, false) if none
// match.
func (c *loopContainer) FindID(pred func(Element) bool) (int, bool) {
	for _, id := range c.IDs() {
		if pred(c.nodes[id].elem) {
			return id, true
		}
	}
	return -1, false
}

// cursor addresses a node of a loopContainer by id; it remains valid
// across mutation of other nodes, and becomes invalid only if its own
// node is removed.
type cursor struct {
	c  *loopContainer
	id int
}

// cursorAt returns a cursor over the node with the given id.
func (c *loopContainer) cursorAt(id int) cursor {
	return cursor{c: c, id: id}
}

// headCursor returns a cursor over the head node, or an invalid cursor
// if the ring is empty.
func (c *loopContainer) headCursor() cursor {
	return cursor{c: c, id: c.headID}
}

// Valid reports whether the cursor addresses an existing node.
func (cur cursor) Valid() bool {
	_, ok := cur.c.nodes[cur.id]
	return ok
}

// ID returns the id the cursor addresses.
func (cur cursor) ID() int { return cur.id }

// Element returns the element at the cursor.
func (cur cursor) Element() Element { return cur.c.Element(cur.id) }

// MoveForward returns a cursor at the next node.
func (cur cursor) MoveForward() cursor {
	return cursor{c: cur.c, id: cur.c.Next(cur.id)}
}

// MoveBackward returns a cursor at the previous node.
func (cur cursor) MoveBackward() cursor {
	return cursor{c: cur.c, id: cur.c.Previous(cur.id)}
}

// InsertAfter inserts elem after the cursor and returns a cursor at the
// new node.
func (cur cursor) InsertAfter(elem Element) cursor {
	return cursor{c: cur.c, id: cur.c.InsertAfter(cur.id, elem)}
}

// InsertBefore inserts elem before the cursor and returns a cursor at
// the new node.
func (cur cursor) InsertBefore(elem Element) cursor {
	return cursor{c: cur.c, id: cur.c.InsertBefore(cur.id, elem)}
}

// Remove deletes the cursor's node and returns a cursor at the node that
// followed it (invalid if the ring is now empty).
func (cur cursor) Remove() cursor {
	return cursor{c: cur.c, id: cur.c.Remove(cur.id)}
}
