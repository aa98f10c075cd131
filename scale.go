package thicket

import "strconv"

// Roles of the two subtrees below a scale node.
const (
	ScaleRoleTicks  uint8 = 1
	ScaleRoleLabels uint8 = 2
)

// Roles of the label nodes inside the labels subtree.
const (
	LabelRoleText    uint8 = 1
	LabelRoleGraphic uint8 = 2
)

type labelKind uint8

const (
	labelNone labelKind = iota
	labelText
	labelGraphic
)

// Label is the content shown next to a major tick: a text, a graphic, or
// nothing.
type Label struct {
	kind    labelKind
	text    string
	graphic Graphic
}

// TextLabel returns a text label.
func TextLabel(s string) Label {
	return Label{kind: labelText, text: s}
}

// GraphicLabel returns an icon label. A nil graphic gives a null label.
func GraphicLabel(g Graphic) Label {
	if g == nil {
		return Label{}
	}
	return Label{kind: labelGraphic, graphic: g}
}

// IsNull reports whether the label holds nothing at all.
func (l Label) IsNull() bool { return l.kind == labelNone }

// Text returns the text of a text label.
func (l Label) Text() (string, bool) { return l.text, l.kind == labelText }

// Graphic returns the graphic of an icon label.
func (l Label) Graphic() (Graphic, bool) { return l.graphic, l.kind == labelGraphic }

// LabelSource maps a tick value to its label.
type LabelSource func(tick float64) Label

// DefaultLabel formats the tick value with up to six significant digits.
func DefaultLabel(tick float64) Label {
	return TextLabel(strconv.FormatFloat(tick, 'g', 6, 64))
}

// ScaleConfig is everything a ScaleRenderer needs for one update. Build a
// fresh value per update cycle instead of mutating a shared one.
type ScaleConfig struct {
	Orientation Orientation
	Boundaries  Interval
	Tickmarks   ScaleTickmarks
	TickColor   Color
	TickWidth   float64
	Font        Font
	TextColors  TextColors
	ColorFilter ColorFilter

	// LabelSource overrides DefaultLabel when set.
	LabelSource LabelSource
}

// ScaleRenderer builds and reconciles the paint nodes of a scale: tick
// marks plus one label per major tick.
//
// The renderer keeps no state between updates apart from what is threaded
// through the node passed to UpdateScaleNode.
type ScaleRenderer struct {
	cfg ScaleConfig
}

// NewScaleRenderer creates a renderer for cfg.
func NewScaleRenderer(cfg ScaleConfig) *ScaleRenderer {
	return &ScaleRenderer{cfg: cfg}
}

// Config returns the renderer's configuration.
func (r *ScaleRenderer) Config() ScaleConfig {
	return r.cfg
}

// LabelAt returns the label of a tick.
func (r *ScaleRenderer) LabelAt(tick float64) Label {
	if r.cfg.LabelSource != nil {
		return r.cfg.LabelSource(tick)
	}
	return DefaultLabel(tick)
}

// UpdateScaleNode reconciles the scale below node, creating node when nil.
// Ticks are kept in front of the labels so that labels paint on top.
// The returned node must be passed back on the next update.
func (r *ScaleRenderer) UpdateScaleNode(tickmarksRect, labelsRect Rect, node *Node) *Node {
	if node == nil {
		node = NewContainer("scale")
	}

	{
		oldNode := node.FindChild(ScaleRoleTicks)
		var newNode *Node

		if !tickmarksRect.IsEmpty() {
			newNode = r.UpdateTicksNode(tickmarksRect, oldNode)
			if newNode != nil {
				newNode.SetRole(ScaleRoleTicks)
			}
		}

		InsertOrReplaceChild(node, oldNode, newNode, false)
	}

	{
		oldNode := node.FindChild(ScaleRoleLabels)
		var newNode *Node

		if !labelsRect.IsEmpty() {
			newNode = r.UpdateLabelsNode(tickmarksRect, labelsRect, oldNode)
			if newNode != nil {
				newNode.SetRole(ScaleRoleLabels)
			}
		}

		InsertOrReplaceChild(node, oldNode, newNode, true)
	}

	return node
}

// UpdateTicksNode builds or updates the tick marks drawn into rect. An
// empty rect or an empty tick set yields nil.
func (r *ScaleRenderer) UpdateTicksNode(rect Rect, node *Node) *Node {
	if rect.IsEmpty() || r.cfg.Tickmarks.IsEmpty() {
		return nil
	}
	if node == nil || node.Kind != NodeKindTicks {
		node = NewTicksNode("ticks")
	}

	c := r.cfg
	node.Ticks.Update(c.TickColor, rect, c.Boundaries, c.Tickmarks, c.TickWidth, c.Orientation)
	return node
}

// UpdateLabelsNode builds or updates the labels of the major ticks.
//
// Label nodes are matched by position, not by tick value: the n-th visible
// label reuses the n-th child when that child holds the same kind of label.
// At the first kind mismatch the remaining children are dropped and rebuilt,
// which is cheap as long as ticks arrive in the same order every update.
//
// Vertical text labels are centered on their tick and then clamped so the
// line box stays inside labelsRect, except that it may overhang the top by
// the space above the caps and the bottom by the descent. Nothing is painted
// in those margins, so end labels line up with the scale ends without being
// clipped, and no label reaches further below the band than its descent.
func (r *ScaleRenderer) UpdateLabelsNode(tickmarksRect, labelsRect Rect, node *Node) *Node {
	if labelsRect.IsEmpty() || tickmarksRect.IsEmpty() {
		return nil
	}

	c := r.cfg
	ticks := c.Tickmarks.MajorTicks()
	if len(ticks) == 0 {
		return nil
	}
	if c.Boundaries.Width() == 0 {
		logger().Debug("thicket: scale has zero width boundaries, dropping labels",
			"bound", c.Boundaries.Lower)
		return nil
	}

	if node == nil || node.Kind != NodeKindContainer {
		node = NewContainer("labels")
	}

	length := tickmarksRect.Width
	if c.Orientation == Vertical {
		length = tickmarksRect.Height
	}
	ratio := length / c.Boundaries.Width()

	fontHeight := FontHeight(c.Font)
	next := 0 // cursor into node's children

	for _, tick := range ticks {
		label := r.LabelAt(tick)
		if label.IsNull() {
			continue
		}

		tickPos := ratio * (tick - c.Boundaries.Lower)

		if text, ok := label.Text(); ok {
			if text == "" {
				continue
			}

			var rect Rect
			var alignment Alignment

			if c.Orientation == Horizontal {
				w := horizontalAdvance(c.Font, text)

				pos := tickmarksRect.X + tickPos - 0.5*w
				pos = bound(labelsRect.Left(), pos, labelsRect.Right()-w)

				rect = Rect{pos, labelsRect.Y, w, labelsRect.Height}
				alignment = AlignLeft
			} else {
				h := fontHeight
				pos := tickmarksRect.Bottom() - (tickPos + 0.5*h)

				var ascent, descent float64
				if c.Font != nil {
					ascent, descent = c.Font.Ascent(), c.Font.Descent()
				}
				lo := labelsRect.Top() - (h - ascent)
				hi := labelsRect.Bottom() - h + descent
				pos = bound(lo, pos, hi)

				rect = Rect{labelsRect.X, pos, labelsRect.Width, h}
				alignment = AlignRight
			}

			labelNode(node, next, LabelRoleText).Text.SetTextData(text, rect, c.Font,
				TextOptions{}, c.TextColors, alignment, TextNormal)
			next++

		} else if graphic, ok := label.Graphic(); ok {
			if graphic.IsNull() {
				continue
			}

			h := fontHeight
			w := graphic.WidthForHeight(h)

			var rect Rect
			var alignment Alignment

			if c.Orientation == Horizontal {
				pos := tickmarksRect.X + tickPos - 0.5*w
				pos = bound(labelsRect.Left(), pos, labelsRect.Right()-w)

				rect = Rect{pos, labelsRect.Y, w, h}
				alignment = AlignHCenter | AlignBottom
			} else {
				pos := tickmarksRect.Bottom() - (tickPos + 0.5*h)
				pos = bound(labelsRect.Top(), pos, labelsRect.Bottom()-h)

				rect = Rect{labelsRect.Right() - w, pos, w, h}
				alignment = AlignRight | AlignVCenter
			}

			labelNode(node, next, LabelRoleGraphic).Graphic.SetGraphicData(graphic, c.ColorFilter, rect, alignment)
			next++
		}
	}

	node.truncateChildren(next)
	return node
}

// labelNode returns the child at index when it holds a label of the given
// role. Otherwise the children from index on are dropped and a new label
// node is appended.
func labelNode(parent *Node, index int, role uint8) *Node {
	kind := NodeKindText
	if role == LabelRoleGraphic {
		kind = NodeKindGraphic
	}

	if index < parent.NumChildren() {
		if n := parent.ChildAt(index); n.Role() == role && n.Kind == kind {
			return n
		}
		parent.truncateChildren(index)
	}

	logger().Debug("thicket: creating label node", "index", index, "kind", kind)
	var n *Node
	if kind == NodeKindText {
		n = NewTextNode("label")
	} else {
		n = NewGraphicNode("label")
	}
	n.SetRole(role)
	parent.AppendChild(n)
	return n
}

// BoundingLabelSize returns the widest label width and the shared label
// height, so that layout can reserve room for the labels. It builds no
// nodes.
func (r *ScaleRenderer) BoundingLabelSize() Size {
	ticks := r.cfg.Tickmarks.MajorTicks()
	if len(ticks) == 0 {
		return Size{}
	}

	h := FontHeight(r.cfg.Font)
	var maxWidth float64

	for _, tick := range ticks {
		label := r.LabelAt(tick)

		var w float64
		if text, ok := label.Text(); ok {
			w = horizontalAdvance(r.cfg.Font, text)
		} else if graphic, ok := label.Graphic(); ok && !graphic.IsNull() {
			w = graphic.WidthForHeight(h)
		}
		if w > maxWidth {
			maxWidth = w
		}
	}

	return Size{maxWidth, h}
}
