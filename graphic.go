package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// Graphic is a scalable icon. Implementations may be of any type; graphics
// that cannot be compared with == are treated as changed on every update.
type Graphic interface {
	// IsNull reports whether there is nothing to draw.
	IsNull() bool
	// WidthForHeight returns the width keeping the intrinsic aspect ratio.
	WidthForHeight(h float64) float64
	// Image returns the pixels to draw, or nil for layout-only graphics.
	Image() *ebiten.Image
}

// ImageGraphic is a Graphic backed by an Ebitengine image.
type ImageGraphic struct {
	img           *ebiten.Image
	width, height float64
}

// NewImageGraphic wraps img; the intrinsic size is the image size.
func NewImageGraphic(img *ebiten.Image) *ImageGraphic {
	b := img.Bounds()
	return &ImageGraphic{img: img, width: float64(b.Dx()), height: float64(b.Dy())}
}

// NewSizedGraphic creates a graphic that has an intrinsic size but no
// pixels. It takes part in layout and is skipped when drawing.
func NewSizedGraphic(width, height float64) *ImageGraphic {
	return &ImageGraphic{width: width, height: height}
}

func (g *ImageGraphic) IsNull() bool {
	return g == nil || g.width <= 0 || g.height <= 0
}

func (g *ImageGraphic) WidthForHeight(h float64) float64 {
	if g.IsNull() {
		return 0
	}
	return h * g.width / g.height
}

func (g *ImageGraphic) Image() *ebiten.Image {
	if g == nil {
		return nil
	}
	return g.img
}

// --- ColorFilter ---

// ColorFilter recolors icons with a 4x5 color matrix in row-major order:
// [R_r, R_g, R_b, R_a, R_offset, G_r, ...]. The zero value is the identity.
type ColorFilter struct {
	matrix [20]float64
	set    bool
}

var identityMatrix = [20]float64{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// NewColorFilter creates a filter from an explicit matrix.
func NewColorFilter(m [20]float64) ColorFilter {
	if m == identityMatrix {
		return ColorFilter{}
	}
	return ColorFilter{matrix: m, set: true}
}

// IsIdentity reports whether the filter leaves colors untouched.
func (f ColorFilter) IsIdentity() bool {
	return !f.set
}

// Matrix returns the color matrix.
func (f ColorFilter) Matrix() [20]float64 {
	if !f.set {
		return identityMatrix
	}
	return f.matrix
}

// BrightnessFilter adjusts brightness by the given offset [-1, 1].
func BrightnessFilter(b float64) ColorFilter {
	return NewColorFilter([20]float64{
		1, 0, 0, 0, b,
		0, 1, 0, 0, b,
		0, 0, 1, 0, b,
		0, 0, 0, 1, 0,
	})
}

// SaturationFilter adjusts saturation. s=1 is normal, 0=grayscale.
func SaturationFilter(s float64) ColorFilter {
	sr := (1 - s) * 0.299
	sg := (1 - s) * 0.587
	sb := (1 - s) * 0.114
	return NewColorFilter([20]float64{
		sr + s, sg, sb, 0, 0,
		sr, sg + s, sb, 0, 0,
		sr, sg, sb + s, 0, 0,
		0, 0, 0, 1, 0,
	})
}

// TintFilter maps the luminance of every pixel onto c, which turns
// monochrome icons into c while keeping their alpha.
func TintFilter(c Color) ColorFilter {
	const lr, lg, lb = 0.299, 0.587, 0.114
	return NewColorFilter([20]float64{
		c.R * lr, c.R * lg, c.R * lb, 0, 0,
		c.G * lr, c.G * lg, c.G * lb, 0, 0,
		c.B * lr, c.B * lg, c.B * lb, 0, 0,
		0, 0, 0, c.A, 0,
	})
}

// Apply runs a single color through the filter.
func (f ColorFilter) Apply(c Color) Color {
	if !f.set {
		return c
	}
	m := &f.matrix
	in := [4]float64{c.R, c.G, c.B, c.A}
	var out [4]float64
	for row := 0; row < 4; row++ {
		v := m[row*5+4]
		for col := 0; col < 4; col++ {
			v += m[row*5+col] * in[col]
		}
		out[row] = clamp01(v)
	}
	return Color{out[0], out[1], out[2], out[3]}
}

// ColorM converts the filter for colorm.DrawImage.
func (f ColorFilter) ColorM() colorm.ColorM {
	var cm colorm.ColorM
	if !f.set {
		return cm
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			cm.SetElement(row, col, f.matrix[row*5+col])
		}
	}
	return cm
}

// --- GraphicNode ---

// GraphicNode is the payload of a NodeKindGraphic node.
type GraphicNode struct {
	Graphic   Graphic
	Filter    ColorFilter
	Rect      Rect
	Alignment Alignment

	// target is where the graphic lands inside Rect after keeping its
	// aspect ratio.
	target Rect
}

// Target returns the rectangle the graphic is drawn into.
func (gn *GraphicNode) Target() Rect {
	return gn.target
}

// UpdateGraphicNode creates or updates a graphic node. The graphic is
// scaled to fit rect keeping its aspect ratio and placed according to
// alignment. A null graphic or an empty rect yields nil; the caller removes
// the old node in that case.
func UpdateGraphicNode(node *Node, graphic Graphic, filter ColorFilter, rect Rect, alignment Alignment) *Node {
	if graphic == nil || graphic.IsNull() || rect.IsEmpty() {
		return nil
	}
	if node == nil || node.Kind != NodeKindGraphic {
		node = NewGraphicNode("graphic")
	}

	node.Graphic.SetGraphicData(graphic, filter, rect, alignment)
	return node
}

// SetGraphicData updates the graphic in place and reports whether anything
// changed.
func (gn *GraphicNode) SetGraphicData(graphic Graphic, filter ColorFilter, rect Rect, alignment Alignment) bool {
	if sameValue(gn.Graphic, graphic) && gn.Filter == filter && gn.Rect == rect && gn.Alignment == alignment {
		return false
	}
	gn.Graphic = graphic
	gn.Filter = filter
	gn.Rect = rect
	gn.Alignment = alignment
	gn.target = Rect{}
	if graphic != nil && !graphic.IsNull() {
		gn.target = fitGraphic(graphic, rect, alignment)
	}
	return true
}

func fitGraphic(g Graphic, rect Rect, alignment Alignment) Rect {
	h := rect.Height
	w := g.WidthForHeight(h)
	if w > rect.Width {
		h = h * rect.Width / w
		w = rect.Width
	}

	x := rect.X + 0.5*(rect.Width-w)
	switch {
	case alignment&AlignLeft != 0:
		x = rect.X
	case alignment&AlignRight != 0:
		x = rect.Right() - w
	}
	y := rect.Y + 0.5*(rect.Height-h)
	switch {
	case alignment&AlignTop != 0:
		y = rect.Y
	case alignment&AlignBottom != 0:
		y = rect.Bottom() - h
	}
	return Rect{x, y, w, h}
}
