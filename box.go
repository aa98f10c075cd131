package thicket

import "github.com/hajimehoshi/ebiten/v2"

// BorderMetrics holds the border width of each side.
type BorderMetrics struct {
	Widths [4]float64
}

// UniformBorder uses w on every side.
func UniformBorder(w float64) BorderMetrics {
	return BorderMetrics{Widths: [4]float64{w, w, w, w}}
}

// IsZero reports whether no side has a border.
func (m BorderMetrics) IsZero() bool {
	return m.Widths == [4]float64{}
}

// BoxNode is the payload of a NodeKindBox node: a filled rectangle with a
// border whose sides may have their own gradients.
type BoxNode struct {
	Rect    Rect
	Metrics BorderMetrics
	Colors  BorderColors
	Fill    Gradient

	Vertices []ebiten.Vertex
	Indices  []uint16

	hash  uint64
	built bool
}

// SetBoxData updates the box. Geometry is only regenerated when the hash of
// the inputs differs from the previous call; the result reports whether it
// was.
func (bn *BoxNode) SetBoxData(rect Rect, metrics BorderMetrics, colors BorderColors, fill Gradient) bool {
	h := hashFloat(0, rect.X)
	h = hashFloat(h, rect.Y)
	h = hashFloat(h, rect.Width)
	h = hashFloat(h, rect.Height)
	for _, w := range metrics.Widths {
		h = hashFloat(h, w)
	}
	h = colors.Hash(h)
	h = fill.Hash(h)
	if bn.built && h == bn.hash {
		return false
	}
	bn.hash = h
	bn.built = true

	bn.Rect = rect
	bn.Metrics = metrics
	bn.Colors = colors
	bn.Fill = fill

	bn.Vertices = bn.Vertices[:0]
	bn.Indices = bn.Indices[:0]
	if rect.IsEmpty() {
		return true
	}

	w := metrics.Widths
	inner := Rect{
		X:      rect.X + w[Left],
		Y:      rect.Y + w[Top],
		Width:  rect.Width - w[Left] - w[Right],
		Height: rect.Height - w[Top] - w[Bottom],
	}
	if fill.IsVisible() && !inner.IsEmpty() {
		bn.appendGradientRect(inner, fill, true)
	}

	sides := [4]Rect{
		Left:   {rect.X, rect.Y, w[Left], rect.Height},
		Top:    {rect.X, rect.Y, rect.Width, w[Top]},
		Right:  {rect.Right() - w[Right], rect.Y, w[Right], rect.Height},
		Bottom: {rect.X, rect.Bottom() - w[Bottom], rect.Width, w[Bottom]},
	}
	for pos, r := range sides {
		g := colors.Gradient(Position(pos))
		if r.IsEmpty() || !g.IsVisible() {
			continue
		}
		vertical := Position(pos) == Left || Position(pos) == Right
		bn.appendGradientRect(r, g, vertical)
	}
	return true
}

// appendGradientRect fills r with one quad per pair of neighbouring stops.
// vertical gradients run top to bottom, others left to right.
func (bn *BoxNode) appendGradientRect(r Rect, g Gradient, vertical bool) {
	stops := g.stops
	if len(stops) == 1 || g.IsMonochrome() {
		c := g.StartColor()
		stops = []GradientStop{{0, c}, {1, c}}
	}
	if stops[0].Pos > 0 {
		stops = append([]GradientStop{{0, stops[0].Color}}, stops...)
	}
	if last := stops[len(stops)-1]; last.Pos < 1 {
		stops = append(stops[:len(stops):len(stops)], GradientStop{1, last.Color})
	}

	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if s1.Pos <= s0.Pos {
			continue
		}
		if len(bn.Vertices)+4 > maxVertices {
			logger().Warn("thicket: too many gradient stops, dropping the rest",
				"limit", maxVertices/4, "stops", len(stops))
			return
		}
		var x0, y0, x1, y1 float64
		if vertical {
			x0, x1 = r.X, r.Right()
			y0 = r.Y + s0.Pos*r.Height
			y1 = r.Y + s1.Pos*r.Height
		} else {
			y0, y1 = r.Y, r.Bottom()
			x0 = r.X + s0.Pos*r.Width
			x1 = r.X + s1.Pos*r.Width
		}

		c0, c1 := s0.Color, s1.Color
		corners := [4]Color{c0, c1, c1, c0} // horizontal: left, right, right, left
		if vertical {
			corners = [4]Color{c0, c0, c1, c1}
		}

		base := uint16(len(bn.Vertices))
		for k, p := range [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}} {
			c := corners[k]
			bn.Vertices = append(bn.Vertices, ebiten.Vertex{
				DstX: float32(p[0]), DstY: float32(p[1]),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: float32(c.R * c.A), ColorG: float32(c.G * c.A),
				ColorB: float32(c.B * c.A), ColorA: float32(c.A),
			})
		}
		bn.Indices = append(bn.Indices, base, base+1, base+2, base, base+2, base+3)
	}
}

// UpdateBoxNode creates or updates a box node. An empty rect, or a box
// with neither a visible fill nor a visible border, yields nil.
func UpdateBoxNode(node *Node, rect Rect, metrics BorderMetrics, colors BorderColors, fill Gradient) *Node {
	if rect.IsEmpty() {
		return nil
	}
	if !fill.IsVisible() && (metrics.IsZero() || !colors.IsVisible()) {
		return nil
	}
	if node == nil || node.Kind != NodeKindBox {
		node = NewBoxNode("box")
	}
	node.Box.SetBoxData(rect, metrics, colors, fill)
	return node
}
