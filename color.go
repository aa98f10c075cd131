package thicket

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorFromRGBA8 builds a Color from 8-bit channels.
func ColorFromRGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// ColorFrom converts any image/color value. The input is premultiplied, the
// result is not.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return ColorTransparent
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorFromRGBA8(nc.R, nc.G, nc.B, nc.A)
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("thicket: invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("thicket: invalid color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// RGBA8 returns the color quantized to 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	r, g, b, a := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// IsVisible reports whether the color paints anything.
func (c Color) IsVisible() bool {
	return c.A > 0
}

// Lerp linearly interpolates every channel from c to to.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// BlendLab blends two colors in CIE-L*a*b* space, which keeps hover and
// pressed shades derived from a base color perceptually even. Alpha is
// blended linearly.
func (c Color) BlendLab(to Color, t float64) Color {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: to.R, G: to.G, B: to.B}
	m := a.BlendLab(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (to.A-c.A)*t}
}

// ColorScale returns the color as an Ebitengine color scale.
func (c Color) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(c.toRGBA())
	return cs
}

func (c Color) hash(seed uint64) uint64 {
	h := hashFloat(seed, c.R)
	h = hashFloat(h, c.G)
	h = hashFloat(h, c.B)
	return hashFloat(h, c.A)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// hashCombine mixes v into seed the same way for every caller so that hashes
// are stable across processes and can be persisted or compared between runs.
func hashCombine(seed, v uint64) uint64 {
	return seed ^ (v + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}

func hashFloat(seed uint64, f float64) uint64 {
	if f == 0 {
		f = 0 // fold -0 into +0
	}
	return hashCombine(seed, math.Float64bits(f))
}
