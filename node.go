package thicket

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: node trees are only touched
// from the thread that owns them).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// NodeAllocations returns the number of nodes created so far. Comparing the
// value before and after an update tells whether the update reused the
// existing tree.
func NodeAllocations() uint32 {
	return nodeIDCounter
}

// --- Node ---

// Node is a retained paint node. A single flat struct is used for all node
// kinds; the payload matching Kind is non-nil.
//
// Every node carries a role, a small integer chosen by whoever builds the
// tree. Reconciliation code reads the role back on the next update to find
// out what the node was used for without inspecting its payload.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Owned marks the node as owned by its parent: removing it from the
	// parent disposes it. Nodes that are not owned are only detached.
	Owned bool

	Visible bool

	role uint8

	// Payloads
	Ticks   *TickmarksNode
	Text    *TextNode
	Graphic *GraphicNode
	Box     *BoxNode

	disposed bool
}

func newNode(name string, kind NodeKind) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		Kind:    kind,
		Owned:   true,
		Visible: true,
	}
}

// NewContainer creates a node that only groups children.
func NewContainer(name string) *Node {
	return newNode(name, NodeKindContainer)
}

// NewTicksNode creates a node drawing tick marks.
func NewTicksNode(name string) *Node {
	n := newNode(name, NodeKindTicks)
	n.Ticks = &TickmarksNode{}
	return n
}

// NewTextNode creates a node drawing a single text.
func NewTextNode(name string) *Node {
	n := newNode(name, NodeKindText)
	n.Text = &TextNode{}
	return n
}

// NewGraphicNode creates a node drawing an icon.
func NewGraphicNode(name string) *Node {
	n := newNode(name, NodeKindGraphic)
	n.Graphic = &GraphicNode{}
	return n
}

// NewBoxNode creates a node drawing a bordered rectangle.
func NewBoxNode(name string) *Node {
	n := newNode(name, NodeKindBox)
	n.Box = &BoxNode{}
	return n
}

// Role returns the role tag stamped on the node.
func (n *Node) Role() uint8 {
	return n.role
}

// SetRole stamps a role tag on the node.
func (n *Node) SetRole(role uint8) {
	n.role = role
}

// --- Tree manipulation ---

// AppendChild adds child after the last child.
// Panics if child is nil, already has a parent, or is an ancestor of n.
func (n *Node) AppendChild(child *Node) {
	n.checkAttach(child, "AppendChild")
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckChildCount(n)
	}
}

// PrependChild adds child before the first child.
// Same checks as AppendChild.
func (n *Node) PrependChild(child *Node) {
	n.InsertChildAt(child, 0)
}

// InsertChildAt inserts child at the given index.
// Same checks as AppendChild.
func (n *Node) InsertChildAt(child *Node, index int) {
	n.checkAttach(child, "InsertChildAt")
	if index < 0 || index > len(n.children) {
		panic("thicket: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckChildCount(n)
	}
}

func (n *Node) checkAttach(child *Node, op string) {
	if child == nil {
		panic("thicket: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if child.Parent != nil {
		panic("thicket: node already has a parent; remove it first")
	}
	if isAncestor(child, n) {
		panic("thicket: adding child would create a cycle")
	}
}

// RemoveChild detaches child from n. The child is not disposed, even when
// it is owned: ownership passes to the caller.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("thicket: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// NextSibling returns the node following n in its parent, or nil.
func (n *Node) NextSibling() *Node {
	if n.Parent == nil {
		return nil
	}
	i := n.Parent.indexOf(n)
	if i < 0 || i+1 >= len(n.Parent.children) {
		return nil
	}
	return n.Parent.children[i+1]
}

// FindChild returns the first child carrying role, or nil.
func (n *Node) FindChild(role uint8) *Node {
	for _, c := range n.children {
		if c.role == role {
			return c
		}
	}
	return nil
}

// RemoveChildrenFrom removes from and every sibling after it. Owned nodes
// are disposed. A nil from, or one that is not a child of n, is a no-op.
func (n *Node) RemoveChildrenFrom(from *Node) {
	if from == nil {
		return
	}
	i := n.indexOf(from)
	if i < 0 {
		return
	}
	n.truncateChildren(i)
}

// truncateChildren removes every child at index i and above.
func (n *Node) truncateChildren(i int) {
	if i >= len(n.children) {
		return
	}
	logger().Debug("thicket: trimming trailing nodes", "parent", n.Name, "count", len(n.children)-i)
	for j := i; j < len(n.children); j++ {
		c := n.children[j]
		n.children[j] = nil
		c.Parent = nil
		if c.Owned {
			c.dispose()
		}
	}
	n.children = n.children[:i]
}

// InsertOrReplaceChild swaps oldChild for newChild below parent.
//
// Nothing happens when both are the same node. Otherwise oldChild, when
// present, is removed and disposed if owned, and newChild, when present, is
// appended or prepended depending on appendIfNew.
func InsertOrReplaceChild(parent, oldChild, newChild *Node, appendIfNew bool) {
	if newChild == oldChild {
		return
	}
	if oldChild != nil {
		parent.RemoveChild(oldChild)
		if oldChild.Owned {
			oldChild.dispose()
		}
	}
	if newChild != nil {
		if appendIfNew {
			parent.AppendChild(newChild)
		} else {
			parent.PrependChild(newChild)
		}
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all owned descendants. Children that are not
// owned are detached and left alive.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	n.dispose()
}

func (n *Node) dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		if child.Owned {
			child.dispose()
		}
	}
	n.children = nil
	n.Parent = nil
	n.Ticks = nil
	n.Text = nil
	n.Graphic = nil
	n.Box = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	if i := n.indexOf(child); i >= 0 {
		copy(n.children[i:], n.children[i+1:])
		n.children[len(n.children)-1] = nil
		n.children = n.children[:len(n.children)-1]
	}
}
