package thicket

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite and ColorTransparent are the two colors used as defaults
// throughout the package.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorTransparent = Color{}
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// IsEmpty reports whether the rectangle covers no area. Rectangles with a
// negative extent are empty.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0 && r.Height > 0)
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + 0.5*r.Width, r.Y + 0.5*r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Inset shrinks the rectangle by d on every side. The result never has a
// negative extent.
func (r Rect) Inset(d float64) Rect {
	out := Rect{r.X + d, r.Y + d, r.Width - 2*d, r.Height - 2*d}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Interval is a closed range of real values, e.g. the boundaries of a scale.
type Interval struct {
	Lower, Upper float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Contains reports whether v lies within the interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

// Orientation selects the axis a scale is laid out along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Alignment is a bitmask of horizontal and vertical alignment flags.
// Values can be combined with bitwise OR (e.g. AlignRight | AlignVCenter).
type Alignment uint8

const (
	AlignLeft Alignment = 1 << iota
	AlignRight
	AlignHCenter
	AlignTop
	AlignBottom
	AlignVCenter

	AlignCenter = AlignHCenter | AlignVCenter
)

// Edges is a bitmask of rectangle edges.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	AllEdges = EdgeLeft | EdgeTop | EdgeRight | EdgeBottom
)

// Position indexes the four sides of a box.
type Position uint8

const (
	Left Position = iota
	Top
	Right
	Bottom
)

// NodeKind distinguishes the payload carried by a Node.
type NodeKind uint8

const (
	NodeKindContainer NodeKind = iota // group node with no visual output
	NodeKindTicks                     // tick mark quads along an axis
	NodeKindText                      // a single text label
	NodeKindGraphic                   // an icon drawn from a Graphic
	NodeKindBox                       // a bordered, filled rectangle
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindContainer:
		return "container"
	case NodeKindTicks:
		return "ticks"
	case NodeKindText:
		return "text"
	case NodeKindGraphic:
		return "graphic"
	case NodeKindBox:
		return "box"
	default:
		return "unknown"
	}
}

// bound clamps v to [lo, hi]. When hi < lo, lo wins.
func bound(lo, v, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
