package thicket

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// BoxConfig describes a bordered box in a skin file. Colors are hex strings
// ("#rgb", "#rrggbb" or "#rrggbbaa"). A per-side border color overrides
// BorderColor for that side; Fill lists gradient stops spread evenly from
// top to bottom.
type BoxConfig struct {
	BorderWidth  float64  `toml:"border_width"`
	BorderColor  string   `toml:"border_color"`
	BorderLeft   string   `toml:"border_left"`
	BorderTop    string   `toml:"border_top"`
	BorderRight  string   `toml:"border_right"`
	BorderBottom string   `toml:"border_bottom"`
	Fill         []string `toml:"fill"`
}

// ScaleSkinConfig describes scales in a skin file.
type ScaleSkinConfig struct {
	TickColor string  `toml:"tick_color"`
	TickWidth float64 `toml:"tick_width"`
	FontSize  float64 `toml:"font_size"`
	TextColor string  `toml:"text_color"`
	IconTint  string  `toml:"icon_tint"`
}

// IndicatorConfig describes check indicators in a skin file.
type IndicatorConfig struct {
	BoxConfig
	CheckedFill string  `toml:"checked_fill"`
	Size        float64 `toml:"size"`
}

// SkinConfig is the TOML layout of a skin file.
type SkinConfig struct {
	Name string `toml:"name"`

	// HoverBlend is how far hovered colors move towards white, in [0, 1].
	HoverBlend float64 `toml:"hover_blend"`
	// TransitionDuration is the length of state transitions in seconds.
	TransitionDuration float64 `toml:"transition_duration"`

	Scale     ScaleSkinConfig `toml:"scale"`
	Panel     BoxConfig       `toml:"panel"`
	Indicator IndicatorConfig `toml:"indicator"`
}

// BoxSkin is a resolved BoxConfig.
type BoxSkin struct {
	Metrics BorderMetrics
	Colors  BorderColors
	Fill    Gradient
}

// Skin holds the resolved colors and metrics used by the skinlets.
type Skin struct {
	Name               string
	HoverBlend         float64
	TransitionDuration float32

	TickColor  Color
	TickWidth  float64
	FontSize   float64
	TextColors TextColors
	IconFilter ColorFilter

	Panel BoxSkin

	Indicator     BoxSkin
	IndicatorFill Color
	IndicatorSize float64
}

const defaultSkinTOML = `
name = "default"
hover_blend = 0.25
transition_duration = 0.15

[scale]
tick_color = "#404040"
tick_width = 1.0
font_size = 12
text_color = "#202020"

[panel]
border_width = 1
border_color = "#9e9e9e"
fill = ["#ffffff", "#ececec"]

[indicator]
border_width = 1
border_color = "#616161"
fill = ["#ffffff"]
checked_fill = "#2f7de1"
size = 18
`

// DefaultSkin returns the built-in skin.
func DefaultSkin() *Skin {
	s, err := LoadSkin([]byte(defaultSkinTOML))
	if err != nil {
		panic("thicket: built-in skin is invalid: " + err.Error())
	}
	return s
}

// LoadSkinFile reads and resolves a TOML skin file.
func LoadSkinFile(path string) (*Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("thicket: failed to read %s: %w", path, err)
	}
	s, err := LoadSkin(data)
	if err != nil {
		return nil, fmt.Errorf("thicket: %s: %w", path, err)
	}
	return s, nil
}

// LoadSkin parses and resolves TOML skin data. Missing values fall back to
// neutral defaults: black ticks and text, no borders, no fill.
func LoadSkin(data []byte) (*Skin, error) {
	var cfg SkinConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse skin: %w", err)
	}
	return cfg.Resolve()
}

// Resolve converts the textual configuration into a Skin.
func (cfg SkinConfig) Resolve() (*Skin, error) {
	s := &Skin{
		Name:               cfg.Name,
		HoverBlend:         clamp01(cfg.HoverBlend),
		TransitionDuration: float32(max(cfg.TransitionDuration, 0)),
		TickWidth:          cfg.Scale.TickWidth,
		FontSize:           cfg.Scale.FontSize,
	}
	if s.TickWidth <= 0 {
		s.TickWidth = 1
	}
	if s.FontSize <= 0 {
		s.FontSize = 12
	}

	var err error
	if s.TickColor, err = colorOr(cfg.Scale.TickColor, Color{0, 0, 0, 1}); err != nil {
		return nil, fmt.Errorf("scale.tick_color: %w", err)
	}
	if s.TextColors.Text, err = colorOr(cfg.Scale.TextColor, Color{0, 0, 0, 1}); err != nil {
		return nil, fmt.Errorf("scale.text_color: %w", err)
	}
	if cfg.Scale.IconTint != "" {
		tint, err := ParseColor(cfg.Scale.IconTint)
		if err != nil {
			return nil, fmt.Errorf("scale.icon_tint: %w", err)
		}
		s.IconFilter = TintFilter(tint)
	}

	if s.Panel, err = cfg.Panel.resolve(); err != nil {
		return nil, fmt.Errorf("panel: %w", err)
	}
	if s.Indicator, err = cfg.Indicator.resolve(); err != nil {
		return nil, fmt.Errorf("indicator: %w", err)
	}
	if s.IndicatorFill, err = colorOr(cfg.Indicator.CheckedFill, Color{0, 0, 0, 1}); err != nil {
		return nil, fmt.Errorf("indicator.checked_fill: %w", err)
	}
	s.IndicatorSize = cfg.Indicator.Size
	if s.IndicatorSize <= 0 {
		s.IndicatorSize = 16
	}
	return s, nil
}

func (b BoxConfig) resolve() (BoxSkin, error) {
	var out BoxSkin
	out.Metrics = UniformBorder(b.BorderWidth)

	if b.BorderColor != "" {
		c, err := ParseColor(b.BorderColor)
		if err != nil {
			return out, fmt.Errorf("border_color: %w", err)
		}
		out.Colors = BorderColorsFromColor(c)
	}

	sides := []struct {
		value string
		edge  Edges
		key   string
	}{
		{b.BorderLeft, EdgeLeft, "border_left"},
		{b.BorderTop, EdgeTop, "border_top"},
		{b.BorderRight, EdgeRight, "border_right"},
		{b.BorderBottom, EdgeBottom, "border_bottom"},
	}
	for _, side := range sides {
		if side.value == "" {
			continue
		}
		c, err := ParseColor(side.value)
		if err != nil {
			return out, fmt.Errorf("%s: %w", side.key, err)
		}
		out.Colors.SetGradientAt(side.edge, SolidGradient(c))
	}

	if len(b.Fill) > 0 {
		stops := make([]GradientStop, len(b.Fill))
		for i, v := range b.Fill {
			c, err := ParseColor(v)
			if err != nil {
				return out, fmt.Errorf("fill[%d]: %w", i, err)
			}
			pos := 0.0
			if len(b.Fill) > 1 {
				pos = float64(i) / float64(len(b.Fill)-1)
			}
			stops[i] = GradientStop{pos, c}
		}
		if len(stops) == 1 {
			out.Fill = SolidGradient(stops[0].Color)
		} else {
			out.Fill = NewGradient(stops...)
		}
	}
	return out, nil
}

func colorOr(s string, fallback Color) (Color, error) {
	if s == "" {
		return fallback, nil
	}
	return ParseColor(s)
}

// Hovered returns c moved towards white by the skin's hover blend.
func (s *Skin) Hovered(c Color) Color {
	if s.HoverBlend == 0 {
		return c
	}
	return c.BlendLab(ColorWhite.WithAlpha(c.A), s.HoverBlend)
}

// BorderColors returns the border colors of box for the given state.
// Hovered boxes are lightened, disabled ones drawn at half alpha.
func (s *Skin) BorderColors(box BoxSkin, state SkinState) BorderColors {
	colors := box.Colors
	if state.Has(StateHovered) && s.HoverBlend > 0 {
		var lit BorderColors
		for pos := Left; pos <= Bottom; pos++ {
			g := colors.Gradient(pos)
			if !g.IsValid() {
				continue
			}
			stops := g.Stops()
			for i := range stops {
				stops[i].Color = s.Hovered(stops[i].Color)
			}
			lit.SetGradient(pos, NewGradient(stops...))
		}
		colors = lit
	}
	if state.Has(StateDisabled) {
		colors.SetAlpha(0.5)
	}
	return colors
}

// ScaleConfig fills the skin dependent parts of a scale configuration.
func (s *Skin) ScaleConfig(font Font, orientation Orientation, bounds Interval, ticks ScaleTickmarks) ScaleConfig {
	return ScaleConfig{
		Orientation: orientation,
		Boundaries:  bounds,
		Tickmarks:   ticks,
		TickColor:   s.TickColor,
		TickWidth:   s.TickWidth,
		Font:        font,
		TextColors:  s.TextColors,
		ColorFilter: s.IconFilter,
	}
}
