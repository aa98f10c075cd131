package thicket

import "testing"

// fakeSkinnable is a skinnable with a fixed state and rectangle.
type fakeSkinnable struct {
	state SkinState
	rect  Rect
}

func (f *fakeSkinnable) SkinState() SkinState { return f.state }
func (f *fakeSkinnable) ContentsRect() Rect   { return f.rect }

// roleSkinlet builds one container per enabled role and counts updates.
type roleSkinlet struct {
	roles   []uint8
	enabled map[uint8]bool
	updates int
}

func (sk *roleSkinlet) NodeRoles() []uint8 { return sk.roles }

func (sk *roleSkinlet) SubControlRect(s Skinnable, contents Rect, sub Subcontrol) Rect {
	return contents
}

func (sk *roleSkinlet) UpdateSubNode(s Skinnable, role uint8, node *Node) *Node {
	sk.updates++
	if !sk.enabled[role] {
		return nil
	}
	if node == nil {
		node = NewContainer("sub")
	}
	return node
}

func TestUpdateNodeKeepsRoleOrder(t *testing.T) {
	sk := &roleSkinlet{roles: []uint8{1, 2, 3}, enabled: map[uint8]bool{1: true, 3: true}}
	s := &fakeSkinnable{rect: Rect{0, 0, 10, 10}}

	root := UpdateNode(sk, s, nil)
	if root.NumChildren() != 2 || root.ChildAt(0).Role() != 1 || root.ChildAt(1).Role() != 3 {
		t.Fatalf("unexpected tree:\n%s", DumpTree(root))
	}

	// Enabling the middle role inserts it between the others.
	sk.enabled[2] = true
	first, last := root.ChildAt(0), root.ChildAt(1)
	UpdateNode(sk, s, root)

	if root.NumChildren() != 3 {
		t.Fatalf("children = %d, want 3", root.NumChildren())
	}
	for i, role := range []uint8{1, 2, 3} {
		if root.ChildAt(i).Role() != role {
			t.Errorf("child %d role = %d, want %d", i, root.ChildAt(i).Role(), role)
		}
	}
	if root.ChildAt(0) != first || root.ChildAt(2) != last {
		t.Error("existing subtrees should be reused")
	}
}

func TestUpdateNodeRemovesDisabledRole(t *testing.T) {
	sk := &roleSkinlet{roles: []uint8{1, 2}, enabled: map[uint8]bool{1: true, 2: true}}
	s := &fakeSkinnable{}

	root := UpdateNode(sk, s, nil)
	gone := root.FindChild(1)

	sk.enabled[1] = false
	UpdateNode(sk, s, root)

	if root.NumChildren() != 1 || root.ChildAt(0).Role() != 2 {
		t.Fatalf("unexpected tree:\n%s", DumpTree(root))
	}
	if !gone.IsDisposed() {
		t.Error("removed subtree should be disposed")
	}
	if sk.updates != 4 {
		t.Errorf("updates = %d, want one per role and pass", sk.updates)
	}
}

func TestSkinStateHas(t *testing.T) {
	s := StateHovered | StateChecked
	if !s.Has(StateHovered) || !s.Has(StateHovered|StateChecked) {
		t.Error("Has should report set flags")
	}
	if s.Has(StateHovered | StateDisabled) {
		t.Error("Has should require all flags")
	}
}
