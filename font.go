package thicket

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the metrics oracle used for label layout. Fonts that cannot be
// compared with == are treated as changed on every update.
type Font interface {
	// MeasureString returns the advance width and height of the text.
	MeasureString(text string) (width, height float64)
	// LineHeight returns the vertical distance between baselines.
	LineHeight() float64
	// Ascent is the distance from the top of the line box to the baseline.
	Ascent() float64
	// Descent is the distance from the baseline to the bottom of the line box.
	Descent() float64
}

// FontHeight returns ascent plus descent, the height of a single line
// without line gap.
func FontHeight(f Font) float64 {
	if f == nil {
		return 0
	}
	return f.Ascent() + f.Descent()
}

// horizontalAdvance returns the advance width of s in f.
func horizontalAdvance(f Font, s string) float64 {
	if f == nil {
		return 0
	}
	w, _ := f.MeasureString(s)
	return w
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face    *text.GoTextFace
	size    float64
	ascent  float64
	descent float64
	lh      float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("thicket: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFont{
		face:    face,
		size:    size,
		ascent:  m.HAscent,
		descent: m.HDescent,
		lh:      m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// DefaultFont returns the Go Regular face at the given size. It needs no
// font files and is what DefaultSkin uses.
func DefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 { return f.lh }

// Ascent returns the font ascent in pixels.
func (f *TTFFont) Ascent() float64 { return f.ascent }

// Descent returns the font descent in pixels.
func (f *TTFFont) Descent() float64 { return f.descent }

// Size returns the size the font was loaded at.
func (f *TTFFont) Size() float64 { return f.size }

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
