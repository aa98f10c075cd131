package thicket

import "unicode/utf8"

// TextStyle selects how the style color of TextColors is applied.
type TextStyle uint8

const (
	TextNormal  TextStyle = iota // fill only
	TextOutline                  // style color drawn around the glyphs
	TextRaised                   // style color one pixel below the glyphs
	TextSunken                   // style color one pixel above the glyphs
)

// TextColors are the colors used to paint a text.
type TextColors struct {
	Text  Color
	Style Color
	Link  Color
}

// DefaultTextColors paints black text.
var DefaultTextColors = TextColors{Text: Color{0, 0, 0, 1}}

// TextOptions control how a text is fitted into its rectangle.
type TextOptions struct {
	// Elide replaces the tail of texts wider than their rectangle with an
	// ellipsis.
	Elide bool
}

// TextNode is the payload of a NodeKindText node.
type TextNode struct {
	Content   string
	Rect      Rect
	Font      Font
	Options   TextOptions
	Colors    TextColors
	Alignment Alignment
	Style     TextStyle

	// displayed is Content after eliding; recomputed when layout inputs change.
	displayed string
	width     float64
}

// SetTextData updates the text in place. It reports whether anything
// changed; an unchanged call leaves the cached layout untouched.
func (tn *TextNode) SetTextData(content string, rect Rect, font Font,
	options TextOptions, colors TextColors, alignment Alignment, style TextStyle) bool {

	layoutChanged := tn.Content != content || tn.Rect != rect || !sameValue(tn.Font, font) ||
		tn.Options != options
	paintChanged := tn.Colors != colors || tn.Alignment != alignment || tn.Style != style

	if !layoutChanged && !paintChanged {
		return false
	}

	tn.Content = content
	tn.Rect = rect
	tn.Font = font
	tn.Options = options
	tn.Colors = colors
	tn.Alignment = alignment
	tn.Style = style

	if layoutChanged {
		tn.relayout()
	}
	return true
}

// Displayed returns the text as it will be drawn, after eliding.
func (tn *TextNode) Displayed() string {
	return tn.displayed
}

// origin returns the top-left corner of the line box inside Rect according
// to Alignment. Texts are vertically centered unless AlignTop or
// AlignBottom is set.
func (tn *TextNode) origin() Vec2 {
	r := tn.Rect
	x := r.X
	switch {
	case tn.Alignment&AlignRight != 0:
		x = r.Right() - tn.width
	case tn.Alignment&AlignHCenter != 0:
		x = r.X + 0.5*(r.Width-tn.width)
	}

	h := FontHeight(tn.Font)
	y := r.Y + 0.5*(r.Height-h)
	switch {
	case tn.Alignment&AlignTop != 0:
		y = r.Y
	case tn.Alignment&AlignBottom != 0:
		y = r.Bottom() - h
	}
	return Vec2{x, y}
}

func (tn *TextNode) relayout() {
	tn.displayed = tn.Content
	tn.width = horizontalAdvance(tn.Font, tn.Content)
	if tn.Options.Elide && tn.width > tn.Rect.Width {
		tn.displayed = elideText(tn.Font, tn.Content, tn.Rect.Width)
		tn.width = horizontalAdvance(tn.Font, tn.displayed)
	}
}

const ellipsis = "…"

// elideText shortens s rune by rune until s plus an ellipsis fits maxWidth.
func elideText(f Font, s string, maxWidth float64) string {
	for len(s) > 0 {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		if horizontalAdvance(f, s+ellipsis) <= maxWidth {
			return s + ellipsis
		}
	}
	return ""
}
