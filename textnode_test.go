package thicket

import "testing"

func TestSetTextDataReportsChanges(t *testing.T) {
	var tn TextNode
	f := newFixedFont()
	rect := Rect{0, 0, 100, 20}

	if !tn.SetTextData("abc", rect, f, TextOptions{}, DefaultTextColors, AlignLeft, TextNormal) {
		t.Error("first call should report a change")
	}
	if tn.Displayed() != "abc" {
		t.Errorf("Displayed() = %q, want %q", tn.Displayed(), "abc")
	}
	if tn.SetTextData("abc", rect, f, TextOptions{}, DefaultTextColors, AlignLeft, TextNormal) {
		t.Error("identical call should report no change")
	}

	colors := TextColors{Text: red}
	if !tn.SetTextData("abc", rect, f, TextOptions{}, colors, AlignLeft, TextOutline) {
		t.Error("paint change should be reported")
	}
	if tn.Colors != colors || tn.Style != TextOutline {
		t.Error("paint attributes should be stored")
	}
}

func TestTextNodeElide(t *testing.T) {
	var tn TextNode
	f := newFixedFont()

	tn.SetTextData("abcdefgh", Rect{0, 0, 30, 10}, f, TextOptions{}, DefaultTextColors, AlignLeft, TextNormal)
	if tn.Displayed() != "abcdefgh" {
		t.Errorf("without eliding Displayed() = %q", tn.Displayed())
	}

	tn.SetTextData("abcdefgh", Rect{0, 0, 30, 10}, f, TextOptions{Elide: true}, DefaultTextColors, AlignLeft, TextNormal)
	if tn.Displayed() != "abcd…" {
		t.Errorf("Displayed() = %q, want %q", tn.Displayed(), "abcd…")
	}

	// Growing the rect restores the full text.
	tn.SetTextData("abcdefgh", Rect{0, 0, 60, 10}, f, TextOptions{Elide: true}, DefaultTextColors, AlignLeft, TextNormal)
	if tn.Displayed() != "abcdefgh" {
		t.Errorf("Displayed() = %q, want full text", tn.Displayed())
	}
}

func TestElideTextTooNarrow(t *testing.T) {
	if got := elideText(newFixedFont(), "abc", 4); got != "" {
		t.Errorf("elideText = %q, want empty", got)
	}
}

func TestTextNodeOrigin(t *testing.T) {
	f := newFixedFont()
	rect := Rect{0, 0, 100, 40}

	tests := []struct {
		alignment Alignment
		want      Vec2
	}{
		{AlignLeft, Vec2{0, 15}},
		{AlignRight, Vec2{88, 15}},
		{AlignHCenter | AlignTop, Vec2{44, 0}},
		{AlignHCenter | AlignBottom, Vec2{44, 30}},
	}
	for _, tt := range tests {
		var tn TextNode
		tn.SetTextData("ab", rect, f, TextOptions{}, DefaultTextColors, tt.alignment, TextNormal)
		if got := tn.origin(); got != tt.want {
			t.Errorf("alignment %b: origin = %+v, want %+v", tt.alignment, got, tt.want)
		}
	}
}

// tableFont is a value-type font whose width table makes it incomparable.
type tableFont struct {
	widths []float64
}

func (f tableFont) MeasureString(s string) (float64, float64) {
	return f.widths[0] * float64(len(s)), 10
}
func (f tableFont) LineHeight() float64 { return 10 }
func (f tableFont) Ascent() float64     { return 8 }
func (f tableFont) Descent() float64    { return 2 }

func TestSetTextDataIncomparableFont(t *testing.T) {
	var tn TextNode
	f := tableFont{widths: []float64{5}}
	rect := Rect{0, 0, 100, 20}

	tn.SetTextData("abc", rect, f, TextOptions{}, DefaultTextColors, AlignLeft, TextNormal)
	if !tn.SetTextData("abc", rect, f, TextOptions{}, DefaultTextColors, AlignLeft, TextNormal) {
		t.Error("incomparable font should report a change")
	}
	if tn.width != 15 {
		t.Errorf("width = %v, want 15", tn.width)
	}
}
