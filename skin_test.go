package thicket

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSkin(t *testing.T) {
	s := DefaultSkin()
	if s.Name != "default" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.TickWidth != 1 || s.FontSize != 12 {
		t.Errorf("TickWidth/FontSize = %v/%v", s.TickWidth, s.FontSize)
	}
	if !s.Panel.Colors.IsMonochrome() || s.Panel.Metrics != UniformBorder(1) {
		t.Error("panel border should be a uniform single color")
	}
	if s.Panel.Fill.NumStops() != 2 {
		t.Errorf("panel fill stops = %d, want 2", s.Panel.Fill.NumStops())
	}
	if s.IndicatorSize != 18 {
		t.Errorf("IndicatorSize = %v", s.IndicatorSize)
	}
	if s.TransitionDuration <= 0 {
		t.Error("default skin should animate")
	}
}

func TestLoadSkinPerSideBorders(t *testing.T) {
	data := []byte(`
name = "sides"

[panel]
border_width = 2
border_color = "#000"
border_top = "#ff0000"
border_bottom = "#0000ff80"
fill = ["#fff", "#000", "#fff"]
`)
	s, err := LoadSkin(data)
	if err != nil {
		t.Fatal(err)
	}
	bc := s.Panel.Colors
	if !bc.GradientAt(EdgeTop).Equal(SolidGradient(red)) {
		t.Errorf("top = %v", bc.GradientAt(EdgeTop))
	}
	if !bc.GradientAt(EdgeLeft).Equal(SolidGradient(black)) {
		t.Errorf("left = %v", bc.GradientAt(EdgeLeft))
	}
	if a := bc.GradientAt(EdgeBottom).StartColor().A; !approxEqual(a, 128.0/255) {
		t.Errorf("bottom alpha = %v", a)
	}
	stops := s.Panel.Fill.Stops()
	if len(stops) != 3 || stops[1].Pos != 0.5 {
		t.Errorf("fill stops = %v", stops)
	}

	// Missing sections fall back to neutral values.
	if s.TickWidth != 1 || s.TickColor != black || s.IndicatorSize != 16 {
		t.Errorf("fallbacks = %v %v %v", s.TickWidth, s.TickColor, s.IndicatorSize)
	}
}

func TestLoadSkinIndicator(t *testing.T) {
	s, err := LoadSkin([]byte(`
[indicator]
border_width = 1
border_color = "#123456"
checked_fill = "#00ff00"
size = 20
`))
	if err != nil {
		t.Fatal(err)
	}
	if s.IndicatorFill != green || s.IndicatorSize != 20 {
		t.Errorf("indicator = %v / %v", s.IndicatorFill, s.IndicatorSize)
	}
	if got := s.Indicator.Colors.GradientAt(EdgeLeft).StartColor().String(); got != "#123456ff" {
		t.Errorf("indicator border = %s", got)
	}
}

func TestLoadSkinErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `name = `, "failed to parse skin"},
		{"tick color", "[scale]\ntick_color = \"nope\"", "scale.tick_color"},
		{"fill", "[panel]\nfill = [\"#fff\", \"#xyz\"]", "fill[1]"},
		{"side", "[indicator]\nborder_left = \"#12\"", "border_left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSkin([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSkinFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skin.toml")
	if err := os.WriteFile(path, []byte(`name = "file"`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSkinFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "file" {
		t.Errorf("Name = %q", s.Name)
	}

	_, err = LoadSkinFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestSkinBorderColorsByState(t *testing.T) {
	s := DefaultSkin()
	normal := s.BorderColors(s.Indicator, 0)
	if !normal.Equal(s.Indicator.Colors) {
		t.Error("normal state should use the configured colors")
	}

	hovered := s.BorderColors(s.Indicator, StateHovered)
	if hovered.Equal(normal) {
		t.Error("hovered colors should differ")
	}
	if hovered.GradientAt(EdgeTop).StartColor().R <= normal.GradientAt(EdgeTop).StartColor().R {
		t.Error("hovered colors should be lighter")
	}

	s.HoverBlend = 0
	if !s.BorderColors(s.Indicator, StateHovered).Equal(normal) {
		t.Error("zero hover blend should keep the colors")
	}
}

func TestSkinScaleConfig(t *testing.T) {
	s := DefaultSkin()
	f := newFixedFont()
	ticks := ScaleTickmarks{Major: []float64{0, 1}}
	cfg := s.ScaleConfig(f, Vertical, Interval{0, 1}, ticks)

	if cfg.Font != f || cfg.Orientation != Vertical || cfg.TickWidth != s.TickWidth {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TickColor != s.TickColor || cfg.TextColors != s.TextColors {
		t.Error("colors not taken from the skin")
	}
}
