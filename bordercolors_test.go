package thicket

import (
	"image/color"
	"testing"
)

func TestBorderColorsDefaultIsInvalid(t *testing.T) {
	var bc BorderColors
	if bc.IsValid() || bc.IsVisible() {
		t.Error("zero BorderColors should be invalid and invisible")
	}
	if got := bc.String(); got != "BorderColors()" {
		t.Errorf("String = %q", got)
	}
}

func TestBorderColorsFromColor(t *testing.T) {
	bc := BorderColorsFromColor(red)
	for pos := Left; pos <= Bottom; pos++ {
		if !bc.Gradient(pos).Equal(SolidGradient(red)) {
			t.Errorf("side %d is not solid red", pos)
		}
	}
	if !bc.IsMonochrome() {
		t.Error("single color borders should be monochrome")
	}
	if got := bc.String(); got != "BorderColors( #ff0000ff )" {
		t.Errorf("String = %q", got)
	}
}

func TestBorderColorsSetGradientAt(t *testing.T) {
	bc := BorderColorsFromColor(red)
	bc.SetGradientAt(EdgeTop|EdgeBottom, SolidGradient(blue))

	if !bc.GradientAt(EdgeTop).Equal(SolidGradient(blue)) {
		t.Error("top should be blue")
	}
	if !bc.GradientAt(EdgeBottom).Equal(SolidGradient(blue)) {
		t.Error("bottom should be blue")
	}
	if !bc.GradientAt(EdgeLeft).Equal(SolidGradient(red)) {
		t.Error("left should stay red")
	}
	if !bc.GradientAt(EdgeRight).Equal(SolidGradient(red)) {
		t.Error("right should stay red")
	}
	if bc.IsMonochrome() {
		t.Error("mixed sides should not be monochrome")
	}
}

func TestBorderColorsGradientAtCombinedMask(t *testing.T) {
	bc := BorderColorsFromColor(red)
	if bc.GradientAt(EdgeTop | EdgeLeft).IsValid() {
		t.Error("combined edge mask should yield an invalid gradient")
	}
	if bc.GradientAt(0).IsValid() {
		t.Error("empty edge mask should yield an invalid gradient")
	}
	if bc.Gradient(Position(9)).IsValid() {
		t.Error("unknown position should yield an invalid gradient")
	}
}

func TestBorderColorsSideSetters(t *testing.T) {
	var bc BorderColors
	bc.SetLeft(SolidGradient(red))
	bc.SetTop(SolidGradient(green))
	bc.SetRight(SolidGradient(blue))
	bc.SetBottom(SolidGradient(black))

	want := NewBorderColors(SolidGradient(red), SolidGradient(green), SolidGradient(blue), SolidGradient(black))
	if !bc.Equal(want) {
		t.Errorf("got %v, want %v", bc, want)
	}
	if got := bc.String(); got != "BorderColors( L: #ff0000ff, T: #00ff00ff, R: #0000ffff, B: #000000ff )" {
		t.Errorf("String = %q", got)
	}
}

func TestBorderColorsSetAlphaSkipsUnset(t *testing.T) {
	var bc BorderColors
	bc.SetTop(SolidGradient(red))
	bc.SetAlpha(0.5)

	if got := bc.GradientAt(EdgeTop).StartColor().A; got != 0.5 {
		t.Errorf("top alpha = %v, want 0.5", got)
	}
	if bc.GradientAt(EdgeLeft).IsValid() {
		t.Error("SetAlpha should not make unset sides valid")
	}
}

func TestBorderColorsInterpolatedIdentity(t *testing.T) {
	bc := NewBorderColors(LinearGradient(red, blue), SolidGradient(green), Gradient{}, SolidGradient(black))
	for _, r := range []float64{0, 0.3, 1} {
		if got := bc.Interpolated(bc, r); !got.Equal(bc) {
			t.Errorf("Interpolated(self, %v) = %v, want %v", r, got, bc)
		}
	}
}

func TestBorderColorsInterpolatedEndpoints(t *testing.T) {
	a := BorderColorsFromColor(red)
	b := NewBorderColors(SolidGradient(blue), SolidGradient(green), LinearGradient(red, blue), SolidGradient(black))

	if !a.Interpolated(b, 0).Equal(a) {
		t.Error("ratio 0 should give the start colors")
	}
	if !a.Interpolated(b, 1).Equal(b) {
		t.Error("ratio 1 should give the end colors")
	}

	mid := a.Interpolated(b, 0.5)
	assertColor(t, mid.GradientAt(EdgeLeft).StartColor(), Color{0.5, 0, 0.5, 1})
}

func TestInterpolateBorderColorsVariant(t *testing.T) {
	got, ok := Interpolate(BorderColorsFromColor(red), BorderColorsFromColor(blue), 0.5)
	if !ok {
		t.Fatal("BorderColors should have a registered interpolator")
	}
	bc, isBC := got.(BorderColors)
	if !isBC {
		t.Fatalf("result is %T, want BorderColors", got)
	}
	assertColor(t, bc.GradientAt(EdgeRight).EndColor(), Color{0.5, 0, 0.5, 1})

	// A plain color on the start side is promoted.
	got = InterpolateBorderColors(red, BorderColorsFromColor(blue), 1)
	if !got.(BorderColors).Equal(BorderColorsFromColor(blue)) {
		t.Error("ratio 1 should give the end colors")
	}
}

func TestToBorderColors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		ok   bool
	}{
		{"BorderColors", BorderColorsFromColor(red), true},
		{"pointer", &BorderColors{}, true},
		{"nil pointer", (*BorderColors)(nil), false},
		{"Color", red, true},
		{"Gradient", LinearGradient(red, blue), true},
		{"image/color", color.RGBA{R: 255, A: 255}, true},
		{"string", "red", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ToBorderColors(tt.in)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
		})
	}

	bc, _ := ToBorderColors(color.RGBA{R: 255, A: 255})
	if !bc.Equal(BorderColorsFromColor(red)) {
		t.Errorf("image/color conversion = %v", bc)
	}
}

func TestBorderColorsHash(t *testing.T) {
	a := BorderColorsFromColor(red)
	b := BorderColorsFromColor(red)
	if a.Hash(0) != b.Hash(0) {
		t.Error("equal colors should hash equal")
	}

	b.SetGradientAt(EdgeBottom, SolidGradient(blue))
	if a.Hash(0) == b.Hash(0) {
		t.Error("changing a side should change the hash")
	}

	// Sides are hashed in order, so moving a gradient changes the hash.
	var top, left BorderColors
	top.SetTop(SolidGradient(red))
	left.SetLeft(SolidGradient(red))
	if top.Hash(0) == left.Hash(0) {
		t.Error("the side a gradient sits on should affect the hash")
	}
}
