package thicket

import (
	"sort"
	"strconv"
	"strings"
)

// GradientStop is a color at a position in [0, 1] along a gradient.
type GradientStop struct {
	Pos   float64
	Color Color
}

// Gradient is an ordered sequence of color stops. The zero value has no
// stops and is invalid; it paints nothing.
//
// Gradient is a value type. Stops are never mutated in place, so copies
// share their backing array safely.
type Gradient struct {
	stops []GradientStop
}

// NewGradient creates a gradient from the given stops. Positions are clamped
// to [0, 1] and stops are ordered by position; stops sharing a position keep
// their relative order, which allows hard color edges.
func NewGradient(stops ...GradientStop) Gradient {
	if len(stops) == 0 {
		return Gradient{}
	}
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	for i := range sorted {
		sorted[i].Pos = clamp01(sorted[i].Pos)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pos < sorted[j].Pos
	})
	return Gradient{stops: sorted}
}

// SolidGradient returns a monochrome gradient of c.
func SolidGradient(c Color) Gradient {
	return Gradient{stops: []GradientStop{{0, c}, {1, c}}}
}

// LinearGradient returns a two-stop gradient from one color to another.
func LinearGradient(from, to Color) Gradient {
	return Gradient{stops: []GradientStop{{0, from}, {1, to}}}
}

// Stops returns a copy of the gradient's stops.
func (g Gradient) Stops() []GradientStop {
	if len(g.stops) == 0 {
		return nil
	}
	out := make([]GradientStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// NumStops returns the number of stops.
func (g Gradient) NumStops() int { return len(g.stops) }

// IsValid reports whether the gradient has at least one stop.
func (g Gradient) IsValid() bool { return len(g.stops) > 0 }

// IsMonochrome reports whether every stop has the same color. A gradient
// without stops is trivially monochrome.
func (g Gradient) IsMonochrome() bool {
	for i := 1; i < len(g.stops); i++ {
		if g.stops[i].Color != g.stops[0].Color {
			return false
		}
	}
	return true
}

// IsVisible reports whether any stop is not fully transparent.
func (g Gradient) IsVisible() bool {
	for _, s := range g.stops {
		if s.Color.IsVisible() {
			return true
		}
	}
	return false
}

// StartColor returns the color of the first stop, or transparent.
func (g Gradient) StartColor() Color {
	if len(g.stops) == 0 {
		return ColorTransparent
	}
	return g.stops[0].Color
}

// EndColor returns the color of the last stop, or transparent.
func (g Gradient) EndColor() Color {
	if len(g.stops) == 0 {
		return ColorTransparent
	}
	return g.stops[len(g.stops)-1].Color
}

// ColorAt samples the gradient at pos. Positions outside the stop range pad
// with the nearest stop color. A stop lying exactly at pos wins over
// interpolation.
func (g Gradient) ColorAt(pos float64) Color {
	n := len(g.stops)
	switch {
	case n == 0:
		return ColorTransparent
	case pos <= g.stops[0].Pos:
		return g.stops[0].Color
	case pos >= g.stops[n-1].Pos:
		return g.stops[n-1].Color
	}
	i := sort.Search(n, func(i int) bool { return g.stops[i].Pos >= pos })
	s1 := g.stops[i]
	if s1.Pos == pos {
		return s1.Color
	}
	s0 := g.stops[i-1]
	t := (pos - s0.Pos) / (s1.Pos - s0.Pos)
	return s0.Color.Lerp(s1.Color, t)
}

// WithAlpha returns a copy of g with the alpha of every stop set to alpha.
func (g Gradient) WithAlpha(alpha float64) Gradient {
	if len(g.stops) == 0 {
		return g
	}
	out := g.Stops()
	for i := range out {
		out[i].Color = out[i].Color.WithAlpha(alpha)
	}
	return Gradient{stops: out}
}

// SetAlpha sets the alpha of every stop.
func (g *Gradient) SetAlpha(alpha float64) {
	*g = g.WithAlpha(alpha)
}

// Equal reports whether both gradients have identical stops.
func (g Gradient) Equal(other Gradient) bool {
	if len(g.stops) != len(other.stops) {
		return false
	}
	for i := range g.stops {
		if g.stops[i] != other.stops[i] {
			return false
		}
	}
	return true
}

// Interpolated blends g towards to. Ratios outside (0, 1) return a copy of
// the nearer endpoint. When only one side is valid the result fades that
// side in or out by scaling its alpha.
func (g Gradient) Interpolated(to Gradient, ratio float64) Gradient {
	switch {
	case ratio <= 0:
		return g
	case ratio >= 1:
		return to
	case !g.IsValid() && !to.IsValid():
		return Gradient{}
	case !g.IsValid():
		return to.scaledAlpha(ratio)
	case !to.IsValid():
		return g.scaledAlpha(1 - ratio)
	case g.Equal(to):
		return g
	}

	if g.samePositions(to) {
		out := make([]GradientStop, len(g.stops))
		for i, s := range g.stops {
			out[i] = GradientStop{s.Pos, s.Color.Lerp(to.stops[i].Color, ratio)}
		}
		return Gradient{stops: out}
	}

	positions := make([]float64, 0, len(g.stops)+len(to.stops))
	for _, s := range g.stops {
		positions = append(positions, s.Pos)
	}
	for _, s := range to.stops {
		positions = append(positions, s.Pos)
	}
	sort.Float64s(positions)

	out := make([]GradientStop, 0, len(positions))
	for i, p := range positions {
		if i > 0 && p == positions[i-1] {
			continue
		}
		out = append(out, GradientStop{p, g.ColorAt(p).Lerp(to.ColorAt(p), ratio)})
	}
	return Gradient{stops: out}
}

func (g Gradient) samePositions(other Gradient) bool {
	if len(g.stops) != len(other.stops) {
		return false
	}
	for i := range g.stops {
		if g.stops[i].Pos != other.stops[i].Pos {
			return false
		}
	}
	return true
}

func (g Gradient) scaledAlpha(f float64) Gradient {
	out := g.Stops()
	for i := range out {
		out[i].Color.A *= f
	}
	return Gradient{stops: out}
}

// Hash returns a deterministic structural hash of the gradient.
func (g Gradient) Hash(seed uint64) uint64 {
	h := hashCombine(seed, uint64(len(g.stops)))
	for _, s := range g.stops {
		h = hashFloat(h, s.Pos)
		h = s.Color.hash(h)
	}
	return h
}

func (g Gradient) String() string {
	if len(g.stops) == 0 {
		return "Gradient()"
	}
	var b strings.Builder
	b.WriteString("Gradient( ")
	for i, s := range g.stops {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(s.Pos, 'g', -1, 64))
		b.WriteString(": ")
		b.WriteString(s.Color.String())
	}
	b.WriteString(" )")
	return b.String()
}
