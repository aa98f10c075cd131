package thicket

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TickType ranks tick marks by importance.
type TickType uint8

const (
	MinorTick TickType = iota
	MediumTick
	MajorTick
)

// tickLengthFactor is the fraction of the tick rectangle's cross extent
// covered by each tick type.
var tickLengthFactor = [3]float64{0.5, 0.7, 1.0}

// ScaleTickmarks holds the tick positions of a scale in scale coordinates.
// Only major ticks get labels.
type ScaleTickmarks struct {
	Minor  []float64
	Medium []float64
	Major  []float64
}

// Ticks returns the ticks of the given type.
func (t ScaleTickmarks) Ticks(typ TickType) []float64 {
	switch typ {
	case MinorTick:
		return t.Minor
	case MediumTick:
		return t.Medium
	case MajorTick:
		return t.Major
	}
	return nil
}

// MajorTicks returns the labeled ticks.
func (t ScaleTickmarks) MajorTicks() []float64 { return t.Major }

// TickCount returns the number of ticks of all types.
func (t ScaleTickmarks) TickCount() int {
	return len(t.Minor) + len(t.Medium) + len(t.Major)
}

// IsEmpty reports whether there are no ticks at all.
func (t ScaleTickmarks) IsEmpty() bool { return t.TickCount() == 0 }

func (t ScaleTickmarks) hash(seed uint64) uint64 {
	h := seed
	for typ := MinorTick; typ <= MajorTick; typ++ {
		ticks := t.Ticks(typ)
		h = hashCombine(h, uint64(len(ticks)))
		for _, v := range ticks {
			h = hashFloat(h, v)
		}
	}
	return h
}

// LinearTickmarks divides bounds into major ticks every step, with
// minorPerMajor-1 minor ticks between neighbours. When minorPerMajor is
// even, the middle minor tick is promoted to a medium tick. A non-positive
// step or an empty interval yields no ticks.
func LinearTickmarks(bounds Interval, step float64, minorPerMajor int) ScaleTickmarks {
	var t ScaleTickmarks
	if !(step > 0) || !(bounds.Width() > 0) {
		return t
	}

	const eps = 1e-9
	first := math.Ceil(bounds.Lower/step-eps) * step
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > bounds.Upper+eps*step {
			break
		}
		t.Major = append(t.Major, v)
	}

	if minorPerMajor < 2 {
		return t
	}
	minorStep := step / float64(minorPerMajor)
	start := first - step
	for m := start; m <= bounds.Upper+eps*step; m += step {
		for j := 1; j < minorPerMajor; j++ {
			v := m + float64(j)*minorStep
			if !bounds.Contains(v) {
				continue
			}
			if minorPerMajor%2 == 0 && j == minorPerMajor/2 {
				t.Medium = append(t.Medium, v)
			} else {
				t.Minor = append(t.Minor, v)
			}
		}
	}
	return t
}

// maxVertices is the number of vertices uint16 indices can address.
const maxVertices = 1 << 16

// TickmarksNode is the payload of a NodeKindTicks node: one quad per tick,
// ready for DrawTriangles.
type TickmarksNode struct {
	Vertices []ebiten.Vertex
	Indices  []uint16

	hash  uint64
	built bool
	lines int
}

// NumLines returns the number of tick lines currently built.
func (tn *TickmarksNode) NumLines() int {
	return tn.lines
}

// Update rebuilds the tick geometry. It returns false without touching the
// vertices when the inputs are the same as last time.
//
// Horizontal ticks hang down from the top of rect; vertical ticks grow left
// from its right edge, with the lower bound at the bottom.
func (tn *TickmarksNode) Update(c Color, rect Rect, bounds Interval,
	tickmarks ScaleTickmarks, width float64, orientation Orientation) bool {

	h := c.hash(0)
	h = hashFloat(h, rect.X)
	h = hashFloat(h, rect.Y)
	h = hashFloat(h, rect.Width)
	h = hashFloat(h, rect.Height)
	h = hashFloat(h, bounds.Lower)
	h = hashFloat(h, bounds.Upper)
	h = tickmarks.hash(h)
	h = hashFloat(h, width)
	h = hashCombine(h, uint64(orientation))
	if tn.built && h == tn.hash {
		return false
	}
	tn.hash = h
	tn.built = true

	tn.Vertices = tn.Vertices[:0]
	tn.Indices = tn.Indices[:0]
	tn.lines = 0

	if rect.IsEmpty() || bounds.Width() == 0 || !(width > 0) {
		return true
	}

	length := rect.Width
	if orientation == Vertical {
		length = rect.Height
	}
	ratio := length / bounds.Width()
	half := 0.5 * width

ticks:
	for typ := MinorTick; typ <= MajorTick; typ++ {
		for _, v := range tickmarks.Ticks(typ) {
			if !bounds.Contains(v) {
				continue
			}
			if len(tn.Vertices)+4 > maxVertices {
				logger().Warn("thicket: too many tick marks, dropping the rest",
					"limit", maxVertices/4, "ticks", tickmarks.TickCount())
				break ticks
			}
			pos := ratio * (v - bounds.Lower)

			var x0, y0, x1, y1 float64
			if orientation == Horizontal {
				x := rect.X + pos
				x0, x1 = x-half, x+half
				y0 = rect.Y
				y1 = rect.Y + rect.Height*tickLengthFactor[typ]
			} else {
				y := rect.Bottom() - pos
				y0, y1 = y-half, y+half
				x1 = rect.Right()
				x0 = x1 - rect.Width*tickLengthFactor[typ]
			}
			tn.appendQuad(x0, y0, x1, y1, c)
		}
	}
	return true
}

func (tn *TickmarksNode) appendQuad(x0, y0, x1, y1 float64, c Color) {
	base := uint16(len(tn.Vertices))
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	for _, p := range [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}} {
		tn.Vertices = append(tn.Vertices, ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	tn.Indices = append(tn.Indices, base, base+1, base+2, base, base+2, base+3)
	tn.lines++
}
