package thicket

// Subcontrols of a scale.
const (
	ScaleTicks Subcontrol = iota + 1
	ScaleLabels
)

// ScaleSkinletRole is the role of the scale subtree below a ScaleSkinlet's
// root.
const ScaleSkinletRole uint8 = 1

// Scale is a standalone linear scale: evenly stepped major ticks with
// optional minor ticks and a label per major tick.
type Scale struct {
	Rect        Rect
	Orientation Orientation
	Bounds      Interval

	// Step is the distance between major ticks. MinorPerMajor minor ticks
	// are placed between two major ticks.
	Step          float64
	MinorPerMajor int

	// TickLength is the extent of a major tick across the scale.
	TickLength float64
	// Spacing separates the tick band from the label band.
	Spacing float64

	LabelSource LabelSource
	Disabled    bool
}

// SetDisabled sets the disabled flag.
func (s *Scale) SetDisabled(on bool) { s.Disabled = on }

// SkinState implements Skinnable.
func (s *Scale) SkinState() SkinState {
	if s.Disabled {
		return StateDisabled
	}
	return 0
}

// ContentsRect implements Skinnable.
func (s *Scale) ContentsRect() Rect { return s.Rect }

// Tickmarks returns the tick positions of the scale.
func (s *Scale) Tickmarks() ScaleTickmarks {
	return LinearTickmarks(s.Bounds, s.Step, s.MinorPerMajor)
}

// ScaleSkinlet paints a Scale through a ScaleRenderer. Horizontal scales
// hang their ticks from the top edge with labels below; vertical scales
// have ticks on the right edge and labels to their left.
type ScaleSkinlet struct {
	Skin *Skin
	Font Font
}

// NewScaleSkinlet creates a skinlet for skin, or the default skin when nil.
func NewScaleSkinlet(skin *Skin, font Font) *ScaleSkinlet {
	if skin == nil {
		skin = DefaultSkin()
	}
	return &ScaleSkinlet{Skin: skin, Font: font}
}

// NodeRoles implements Skinlet.
func (sk *ScaleSkinlet) NodeRoles() []uint8 {
	return []uint8{ScaleSkinletRole}
}

// Renderer returns a renderer configured for the scale's current state.
func (sk *ScaleSkinlet) Renderer(s *Scale) *ScaleRenderer {
	cfg := sk.Skin.ScaleConfig(sk.Font, s.Orientation, s.Bounds, s.Tickmarks())
	cfg.LabelSource = s.LabelSource
	if s.Disabled {
		cfg.TickColor = cfg.TickColor.WithAlpha(0.5 * cfg.TickColor.A)
		cfg.TextColors.Text = cfg.TextColors.Text.WithAlpha(0.5 * cfg.TextColors.Text.A)
	}
	return NewScaleRenderer(cfg)
}

// SubControlRect implements Skinlet.
func (sk *ScaleSkinlet) SubControlRect(s Skinnable, contents Rect, sub Subcontrol) Rect {
	scale, ok := s.(*Scale)
	if !ok {
		return Rect{}
	}

	length := scale.TickLength
	if scale.Orientation == Horizontal {
		length = min(length, contents.Height)
		switch sub {
		case ScaleTicks:
			return Rect{contents.X, contents.Y, contents.Width, length}
		case ScaleLabels:
			y := contents.Y + length + scale.Spacing
			return Rect{contents.X, y, contents.Width, max(contents.Bottom()-y, 0)}
		}
		return Rect{}
	}

	length = min(length, contents.Width)
	switch sub {
	case ScaleTicks:
		return Rect{contents.Right() - length, contents.Y, length, contents.Height}
	case ScaleLabels:
		w := max(contents.Width-length-scale.Spacing, 0)
		return Rect{contents.X, contents.Y, w, contents.Height}
	}
	return Rect{}
}

// UpdateSubNode implements Skinlet.
func (sk *ScaleSkinlet) UpdateSubNode(s Skinnable, role uint8, node *Node) *Node {
	scale, ok := s.(*Scale)
	if !ok || role != ScaleSkinletRole {
		return nil
	}
	contents := s.ContentsRect()
	if contents.IsEmpty() {
		return nil
	}
	return sk.Renderer(scale).UpdateScaleNode(
		sk.SubControlRect(s, contents, ScaleTicks),
		sk.SubControlRect(s, contents, ScaleLabels),
		node)
}

// SizeHint returns the size the scale needs across its orientation: the
// tick length, the spacing, and the widest or tallest label.
func (sk *ScaleSkinlet) SizeHint(s *Scale) Size {
	labels := sk.Renderer(s).BoundingLabelSize()
	if s.Orientation == Horizontal {
		return Size{s.Rect.Width, s.TickLength + s.Spacing + labels.Height}
	}
	return Size{s.TickLength + s.Spacing + labels.Width, s.Rect.Height}
}
