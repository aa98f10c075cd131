package thicket

import (
	"image/color"
	"strings"
)

// BorderColors holds one gradient per side of a box. Each side is either
// unset (an invalid Gradient) or a well formed gradient.
//
// BorderColors is a value type and can be copied freely.
type BorderColors struct {
	gradients [4]Gradient
}

// NewBorderColors creates border colors from four per-side gradients.
func NewBorderColors(left, top, right, bottom Gradient) BorderColors {
	var bc BorderColors
	bc.SetGradientsLTRB(left, top, right, bottom)
	return bc
}

// BorderColorsFromColor uses a solid color on every side.
func BorderColorsFromColor(c Color) BorderColors {
	return BorderColorsFromGradient(SolidGradient(c))
}

// BorderColorsFromGradient uses the same gradient on every side.
func BorderColorsFromGradient(g Gradient) BorderColors {
	var bc BorderColors
	bc.SetGradients(g)
	return bc
}

// ToBorderColors converts a dynamically typed value. It accepts
// BorderColors, Color, Gradient and any image/color value.
func ToBorderColors(v any) (BorderColors, bool) {
	switch v := v.(type) {
	case BorderColors:
		return v, true
	case *BorderColors:
		if v == nil {
			return BorderColors{}, false
		}
		return *v, true
	case Color:
		return BorderColorsFromColor(v), true
	case Gradient:
		return BorderColorsFromGradient(v), true
	case color.Color:
		return BorderColorsFromColor(ColorFrom(v)), true
	}
	return BorderColors{}, false
}

// SetGradients uses g for all four sides.
func (bc *BorderColors) SetGradients(g Gradient) {
	bc.gradients = [4]Gradient{g, g, g, g}
}

// SetGradientsLTRB replaces all four sides.
func (bc *BorderColors) SetGradientsLTRB(left, top, right, bottom Gradient) {
	bc.gradients[Left] = left
	bc.gradients[Top] = top
	bc.gradients[Right] = right
	bc.gradients[Bottom] = bottom
}

// SetGradient replaces the gradient at pos. Unknown positions are ignored.
func (bc *BorderColors) SetGradient(pos Position, g Gradient) {
	if pos <= Bottom {
		bc.gradients[pos] = g
	}
}

// SetGradientAt replaces every side whose bit is set in edges and leaves
// the others untouched.
func (bc *BorderColors) SetGradientAt(edges Edges, g Gradient) {
	if edges&EdgeTop != 0 {
		bc.gradients[Top] = g
	}
	if edges&EdgeLeft != 0 {
		bc.gradients[Left] = g
	}
	if edges&EdgeRight != 0 {
		bc.gradients[Right] = g
	}
	if edges&EdgeBottom != 0 {
		bc.gradients[Bottom] = g
	}
}

func (bc *BorderColors) SetLeft(g Gradient)   { bc.gradients[Left] = g }
func (bc *BorderColors) SetTop(g Gradient)    { bc.gradients[Top] = g }
func (bc *BorderColors) SetRight(g Gradient)  { bc.gradients[Right] = g }
func (bc *BorderColors) SetBottom(g Gradient) { bc.gradients[Bottom] = g }

// Gradient returns the gradient at pos, or an invalid gradient for unknown
// positions.
func (bc BorderColors) Gradient(pos Position) Gradient {
	if pos > Bottom {
		return Gradient{}
	}
	return bc.gradients[pos]
}

// GradientAt returns the gradient for exactly one edge. Any other value,
// including combined masks, yields an invalid gradient.
func (bc BorderColors) GradientAt(edge Edges) Gradient {
	switch edge {
	case EdgeTop:
		return bc.gradients[Top]
	case EdgeLeft:
		return bc.gradients[Left]
	case EdgeRight:
		return bc.gradients[Right]
	case EdgeBottom:
		return bc.gradients[Bottom]
	}
	return Gradient{}
}

// SetAlpha sets the alpha of every valid side. Unset sides stay unset.
func (bc *BorderColors) SetAlpha(alpha float64) {
	for i := range bc.gradients {
		if bc.gradients[i].IsValid() {
			bc.gradients[i].SetAlpha(alpha)
		}
	}
}

// IsVisible reports whether at least one side paints anything.
func (bc BorderColors) IsVisible() bool {
	for _, g := range bc.gradients {
		if g.IsVisible() {
			return true
		}
	}
	return false
}

// IsValid reports whether any side is set.
func (bc BorderColors) IsValid() bool {
	for _, g := range bc.gradients {
		if g.IsValid() {
			return true
		}
	}
	return false
}

// IsMonochrome reports whether all sides are equal and single colored.
func (bc BorderColors) IsMonochrome() bool {
	for i := 1; i < 4; i++ {
		if !bc.gradients[i].Equal(bc.gradients[i-1]) {
			return false
		}
	}
	return bc.gradients[0].IsMonochrome()
}

// Equal compares side by side.
func (bc BorderColors) Equal(other BorderColors) bool {
	for i := range bc.gradients {
		if !bc.gradients[i].Equal(other.gradients[i]) {
			return false
		}
	}
	return true
}

// Interpolated blends every side towards to.
//
// Sides are blended even when the matching border has zero width. Ignoring
// the color of an invisible border would look better, but requires the
// widths, which are not known here.
func (bc BorderColors) Interpolated(to BorderColors, ratio float64) BorderColors {
	var out BorderColors
	for i := range out.gradients {
		out.gradients[i] = bc.gradients[i].Interpolated(to.gradients[i], ratio)
	}
	return out
}

// InterpolateBorderColors is the dynamically typed form of Interpolated.
// Either side may be anything ToBorderColors accepts.
func InterpolateBorderColors(from, to any, ratio float64) any {
	f, _ := ToBorderColors(from)
	t, _ := ToBorderColors(to)
	return f.Interpolated(t, ratio)
}

// Hash combines the hashes of all four sides.
func (bc BorderColors) Hash(seed uint64) uint64 {
	h := seed
	for _, g := range bc.gradients {
		h = g.Hash(h)
	}
	return h
}

func (bc BorderColors) String() string {
	if !bc.IsValid() {
		return "BorderColors()"
	}

	var b strings.Builder
	b.WriteString("BorderColors( ")
	if bc.IsMonochrome() {
		b.WriteString(bc.gradients[Left].StartColor().String())
	} else {
		prompts := [4]byte{'L', 'T', 'R', 'B'}
		for i, g := range bc.gradients {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteByte(prompts[i])
			b.WriteString(": ")
			if g.IsValid() && g.IsMonochrome() {
				b.WriteString(g.StartColor().String())
			} else {
				b.WriteString(g.String())
			}
		}
	}
	b.WriteString(" )")
	return b.String()
}

func init() {
	RegisterInterpolator(BorderColors{}, InterpolateBorderColors)
}
