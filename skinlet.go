package thicket

// SkinState is a bitmask of widget states that influence the skin.
type SkinState uint16

const (
	StateHovered SkinState = 1 << iota
	StatePressed
	StateChecked
	StatePartiallyChecked
	StateDisabled
)

// Has reports whether all bits of flags are set.
func (s SkinState) Has(flags SkinState) bool {
	return s&flags == flags
}

// Subcontrol names a styleable region of a widget.
type Subcontrol uint8

// Skinnable is what a skinlet needs from a widget: its state and geometry.
type Skinnable interface {
	SkinState() SkinState
	// ContentsRect is the widget's rectangle in scene coordinates.
	ContentsRect() Rect
}

// Skinlet turns a widget's state into paint nodes, one subtree per role.
type Skinlet interface {
	// NodeRoles lists the roles in paint order, back to front.
	NodeRoles() []uint8
	// SubControlRect returns where sub lies inside the widget.
	SubControlRect(s Skinnable, contents Rect, sub Subcontrol) Rect
	// UpdateSubNode builds or updates the subtree of one role. Returning
	// nil removes the subtree.
	UpdateSubNode(s Skinnable, role uint8, node *Node) *Node
}

// Animator is implemented by skinlets that animate between states. Scene
// advances them once per update, before reconciling.
type Animator interface {
	Advance(dt float32)
}

// Forgetter is implemented by skinlets that keep per-skinnable state.
type Forgetter interface {
	Forget(s Skinnable)
}

// UpdateNode reconciles the children of root against the skinlet's roles,
// creating root when nil. Each role keeps at most one child; children stay
// in the order of NodeRoles. Unchanged subtrees keep their identity.
func UpdateNode(sk Skinlet, s Skinnable, root *Node) *Node {
	if root == nil {
		root = NewContainer("skinlet")
	}

	index := 0
	for _, role := range sk.NodeRoles() {
		oldNode := root.FindChild(role)
		newNode := sk.UpdateSubNode(s, role, oldNode)
		if newNode != nil {
			newNode.SetRole(role)
		}

		if newNode != oldNode {
			if oldNode != nil {
				root.RemoveChild(oldNode)
				if oldNode.Owned {
					oldNode.dispose()
				}
			}
			if newNode != nil {
				if index > root.NumChildren() {
					index = root.NumChildren()
				}
				root.InsertChildAt(newNode, index)
			}
		}
		if newNode != nil {
			index++
		}
	}
	return root
}
