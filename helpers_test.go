package thicket

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// fixedFont is a monospaced metrics double: every rune advances charWidth.
type fixedFont struct {
	charWidth float64
	ascent    float64
	descent   float64
}

func newFixedFont() *fixedFont {
	return &fixedFont{charWidth: 6, ascent: 8, descent: 2}
}

func (f *fixedFont) MeasureString(s string) (float64, float64) {
	return f.charWidth * float64(utf8.RuneCountInString(s)), f.ascent + f.descent
}

func (f *fixedFont) LineHeight() float64 { return f.ascent + f.descent }
func (f *fixedFont) Ascent() float64     { return f.ascent }
func (f *fixedFont) Descent() float64    { return f.descent }

// squareGraphic is a graphic with a 1:1 aspect ratio and no image.
type squareGraphic struct {
	null bool
}

func (g *squareGraphic) IsNull() bool                     { return g.null }
func (g *squareGraphic) WidthForHeight(h float64) float64 { return h }
func (g *squareGraphic) Image() *ebiten.Image             { return nil }

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertColor(t *testing.T, got, want Color) {
	t.Helper()
	if !approxEqual(got.R, want.R) || !approxEqual(got.G, want.G) ||
		!approxEqual(got.B, want.B) || !approxEqual(got.A, want.A) {
		t.Errorf("color = %+v, want %+v", got, want)
	}
}

var (
	red   = Color{1, 0, 0, 1}
	green = Color{0, 1, 0, 1}
	blue  = Color{0, 0, 1, 1}
	black = Color{0, 0, 0, 1}
)
