package thicket

import (
	"slices"

	"github.com/tanema/gween/ease"
)

// CheckState is the tri-state value of a check box.
type CheckState uint8

const (
	Unchecked CheckState = iota
	PartiallyChecked
	Checked
)

// Subcontrols of a check box.
const (
	CheckBoxPanel Subcontrol = iota + 1
	CheckBoxIndicator
)

// Node roles of a check box, back to front.
const (
	CheckBoxPanelRole uint8 = iota + 1
	CheckBoxIndicatorRole
)

// CheckBox is a minimal tri-state check box. It carries no event handling:
// callers set Hovered and toggle it themselves.
//
// A check box can lead a group of other check boxes. Its state then follows
// the group: Checked when every member is checked, Unchecked when none is,
// PartiallyChecked otherwise. Checking or unchecking the leader checks or
// unchecks every member.
type CheckBox struct {
	Rect     Rect
	Hovered  bool
	Disabled bool

	// Tristate allows Toggle to pass through PartiallyChecked.
	Tristate bool

	state CheckState

	group   []*CheckBox // members led by this box
	leaders []*CheckBox // boxes whose group contains this box
	syncing bool
}

// CheckState returns the current state.
func (c *CheckBox) CheckState() CheckState { return c.state }

// IsChecked reports whether the box is fully checked.
func (c *CheckBox) IsChecked() bool { return c.state == Checked }

// SetCheckState sets the state. PartiallyChecked turns on Tristate.
func (c *CheckBox) SetCheckState(state CheckState) {
	c.setState(state)
}

// Toggle advances the state: Unchecked → Checked → Unchecked, or through
// PartiallyChecked when Tristate is set. Group leaders never toggle into
// PartiallyChecked; that state only comes from their members.
func (c *CheckBox) Toggle() {
	next := Unchecked
	switch c.state {
	case Unchecked:
		next = Checked
		if c.Tristate && len(c.group) == 0 {
			next = PartiallyChecked
		}
	case PartiallyChecked:
		next = Checked
	}
	c.setState(next)
}

// AddToGroup makes item a member of the group led by c and updates the
// state of c. Adding a member twice, nil or c itself is a no-op.
func (c *CheckBox) AddToGroup(item *CheckBox) {
	if item == nil || item == c || slices.Contains(c.group, item) {
		return
	}
	c.group = append(c.group, item)
	item.leaders = append(item.leaders, c)
	c.groupChanged()
}

// RemoveFromGroup drops item from the group led by c and updates the state
// of c. A leader whose group becomes empty keeps its current state.
func (c *CheckBox) RemoveFromGroup(item *CheckBox) {
	i := slices.Index(c.group, item)
	if i < 0 {
		return
	}
	c.group = slices.Delete(c.group, i, i+1)
	if j := slices.Index(item.leaders, c); j >= 0 {
		item.leaders = slices.Delete(item.leaders, j, j+1)
	}
	c.groupChanged()
}

// Group returns the members led by c. The returned slice MUST NOT be
// mutated by the caller.
func (c *CheckBox) Group() []*CheckBox {
	return c.group
}

func (c *CheckBox) setState(state CheckState) {
	if state == PartiallyChecked {
		c.Tristate = true
	}
	if state == c.state {
		return
	}
	c.state = state

	if state != PartiallyChecked && !c.syncing {
		c.syncing = true
		for _, item := range c.group {
			item.setState(state)
		}
		c.syncing = false
	}
	for _, leader := range c.leaders {
		leader.groupChanged()
	}
}

// groupChanged derives the state of a leader from its members. It is
// skipped while the leader pushes its own state down to them.
func (c *CheckBox) groupChanged() {
	if c.syncing || len(c.group) == 0 {
		return
	}
	checked := 0
	for _, item := range c.group {
		if item.state == Checked {
			checked++
		}
	}
	switch checked {
	case len(c.group):
		c.setState(Checked)
	case 0:
		c.setState(Unchecked)
	default:
		c.setState(PartiallyChecked)
	}
}

// SetHovered sets the hovered flag.
func (c *CheckBox) SetHovered(on bool) { c.Hovered = on }

// SetDisabled sets the disabled flag.
func (c *CheckBox) SetDisabled(on bool) { c.Disabled = on }

// SkinState implements Skinnable.
func (c *CheckBox) SkinState() SkinState {
	var s SkinState
	if c.Hovered {
		s |= StateHovered
	}
	if c.Disabled {
		s |= StateDisabled
	}
	switch c.state {
	case Checked:
		s |= StateChecked
	case PartiallyChecked:
		s |= StatePartiallyChecked
	}
	return s
}

// ContentsRect implements Skinnable.
func (c *CheckBox) ContentsRect() Rect { return c.Rect }

// CheckBoxSkinlet paints a check box as a panel with a square indicator
// centered in it. Indicator borders fade between states over
// TransitionDuration seconds; zero switches instantly.
type CheckBoxSkinlet struct {
	Skin               *Skin
	TransitionDuration float32
	Easing             ease.TweenFunc

	transitions map[Skinnable]*BorderTransition
}

// NewCheckBoxSkinlet creates a skinlet for skin, or the default skin when
// nil.
func NewCheckBoxSkinlet(skin *Skin) *CheckBoxSkinlet {
	if skin == nil {
		skin = DefaultSkin()
	}
	return &CheckBoxSkinlet{
		Skin:               skin,
		TransitionDuration: skin.TransitionDuration,
		Easing:             ease.OutQuad,
		transitions:        make(map[Skinnable]*BorderTransition),
	}
}

// Advance moves all running border transitions forward by dt seconds.
func (sk *CheckBoxSkinlet) Advance(dt float32) {
	for _, t := range sk.transitions {
		t.Update(dt)
	}
}

// Forget drops the transition state kept for s.
func (sk *CheckBoxSkinlet) Forget(s Skinnable) {
	delete(sk.transitions, s)
}

// indicatorBorder returns the indicator's border colors, easing towards
// the colors of the current state.
func (sk *CheckBoxSkinlet) indicatorBorder(s Skinnable, state SkinState) BorderColors {
	target := sk.Skin.BorderColors(sk.Skin.Indicator, state)
	if sk.TransitionDuration <= 0 {
		return target
	}
	if sk.transitions == nil {
		sk.transitions = make(map[Skinnable]*BorderTransition)
	}

	t, ok := sk.transitions[s]
	if !ok {
		t = NewBorderTransition(target, target, 0, nil)
		sk.transitions[s] = t
	} else if !t.Target().Equal(target) {
		t.Retarget(target, sk.TransitionDuration, sk.Easing)
	}
	return t.Colors()
}

// NodeRoles implements Skinlet.
func (sk *CheckBoxSkinlet) NodeRoles() []uint8 {
	return []uint8{CheckBoxPanelRole, CheckBoxIndicatorRole}
}

// SubControlRect implements Skinlet.
func (sk *CheckBoxSkinlet) SubControlRect(s Skinnable, contents Rect, sub Subcontrol) Rect {
	switch sub {
	case CheckBoxPanel:
		return contents
	case CheckBoxIndicator:
		size := sk.Skin.IndicatorSize
		if contents.Width < size {
			size = contents.Width
		}
		if contents.Height < size {
			size = contents.Height
		}
		c := contents.Center()
		return Rect{c.X - 0.5*size, c.Y - 0.5*size, size, size}
	}
	return Rect{}
}

// SizeHint returns the preferred size of a check box: the indicator plus
// the panel border around it.
func (sk *CheckBoxSkinlet) SizeHint() Size {
	w := sk.Skin.Panel.Metrics.Widths
	size := sk.Skin.IndicatorSize
	return Size{size + w[Left] + w[Right], size + w[Top] + w[Bottom]}
}

// UpdateSubNode implements Skinlet.
func (sk *CheckBoxSkinlet) UpdateSubNode(s Skinnable, role uint8, node *Node) *Node {
	contents := s.ContentsRect()
	state := s.SkinState()

	switch role {
	case CheckBoxPanelRole:
		box := sk.Skin.Panel
		return UpdateBoxNode(node, sk.SubControlRect(s, contents, CheckBoxPanel),
			box.Metrics, sk.Skin.BorderColors(box, state), box.Fill)

	case CheckBoxIndicatorRole:
		return UpdateBoxNode(node, sk.SubControlRect(s, contents, CheckBoxIndicator),
			sk.Skin.Indicator.Metrics, sk.indicatorBorder(s, state), sk.indicatorFill(state))
	}
	return nil
}

func (sk *CheckBoxSkinlet) indicatorFill(state SkinState) Gradient {
	fill := sk.Skin.Indicator.Fill
	switch {
	case state.Has(StateChecked):
		fill = SolidGradient(sk.Skin.IndicatorFill)
	case state.Has(StatePartiallyChecked):
		fill = SolidGradient(sk.Skin.IndicatorFill.WithAlpha(0.5 * sk.Skin.IndicatorFill.A))
	}
	if state.Has(StateHovered) {
		stops := fill.Stops()
		for i := range stops {
			stops[i].Color = sk.Skin.Hovered(stops[i].Color)
		}
		fill = NewGradient(stops...)
	}
	if state.Has(StateDisabled) {
		fill = fill.WithAlpha(0.5)
	}
	return fill
}
