package thicket

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestImageGraphicSized(t *testing.T) {
	g := NewSizedGraphic(20, 10)
	if g.IsNull() {
		t.Fatal("sized graphic should not be null")
	}
	if got := g.WidthForHeight(5); got != 10 {
		t.Errorf("WidthForHeight(5) = %v, want 10", got)
	}
	if g.Image() != nil {
		t.Error("sized graphic has no image")
	}

	var nilGraphic *ImageGraphic
	if !nilGraphic.IsNull() || nilGraphic.WidthForHeight(10) != 0 {
		t.Error("nil graphic should be null with zero width")
	}
	if !NewSizedGraphic(0, 10).IsNull() {
		t.Error("zero width graphic should be null")
	}
}

func TestFitGraphic(t *testing.T) {
	g := &squareGraphic{}
	tests := []struct {
		name      string
		rect      Rect
		alignment Alignment
		want      Rect
	}{
		{"wide left", Rect{0, 0, 40, 20}, AlignLeft, Rect{0, 0, 20, 20}},
		{"wide right", Rect{0, 0, 40, 20}, AlignRight, Rect{20, 0, 20, 20}},
		{"wide center", Rect{0, 0, 40, 20}, AlignCenter, Rect{10, 0, 20, 20}},
		{"tall top", Rect{0, 0, 10, 30}, AlignTop, Rect{0, 0, 10, 10}},
		{"tall bottom", Rect{0, 0, 10, 30}, AlignBottom, Rect{0, 20, 10, 10}},
		{"tall center", Rect{5, 5, 10, 30}, AlignCenter, Rect{5, 15, 10, 10}},
	}
	for _, tt := range tests {
		if got := fitGraphic(g, tt.rect, tt.alignment); got != tt.want {
			t.Errorf("%s: fitGraphic = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestUpdateGraphicNode(t *testing.T) {
	g := &squareGraphic{}
	rect := Rect{0, 0, 20, 20}

	if UpdateGraphicNode(nil, nil, ColorFilter{}, rect, AlignCenter) != nil {
		t.Error("nil graphic should yield no node")
	}
	if UpdateGraphicNode(nil, &squareGraphic{null: true}, ColorFilter{}, rect, AlignCenter) != nil {
		t.Error("null graphic should yield no node")
	}
	if UpdateGraphicNode(nil, g, ColorFilter{}, Rect{}, AlignCenter) != nil {
		t.Error("empty rect should yield no node")
	}

	node := UpdateGraphicNode(nil, g, ColorFilter{}, rect, AlignCenter)
	if node == nil || node.Kind != NodeKindGraphic {
		t.Fatal("expected a graphic node")
	}
	if node.Graphic.Target() != rect {
		t.Errorf("target = %+v, want %+v", node.Graphic.Target(), rect)
	}
	if again := UpdateGraphicNode(node, g, ColorFilter{}, rect, AlignCenter); again != node {
		t.Error("graphic node should be reused")
	}

	text := NewTextNode("t")
	if got := UpdateGraphicNode(text, g, ColorFilter{}, rect, AlignCenter); got == text || got.Kind != NodeKindGraphic {
		t.Error("node of another kind should be replaced")
	}
}

func TestSetGraphicDataReportsChanges(t *testing.T) {
	var gn GraphicNode
	g := &squareGraphic{}
	rect := Rect{0, 0, 20, 20}

	if !gn.SetGraphicData(g, ColorFilter{}, rect, AlignCenter) {
		t.Error("first call should report a change")
	}
	if gn.SetGraphicData(g, ColorFilter{}, rect, AlignCenter) {
		t.Error("identical call should report no change")
	}
	if !gn.SetGraphicData(g, BrightnessFilter(0.1), rect, AlignCenter) {
		t.Error("filter change should be reported")
	}
	if !gn.SetGraphicData(&squareGraphic{null: true}, ColorFilter{}, rect, AlignCenter) {
		t.Error("graphic change should be reported")
	}
	if !gn.Target().IsEmpty() {
		t.Errorf("null graphic target = %+v, want empty", gn.Target())
	}
}

func TestColorFilterIdentity(t *testing.T) {
	var f ColorFilter
	if !f.IsIdentity() {
		t.Error("zero filter should be the identity")
	}
	if f.Matrix() != identityMatrix {
		t.Error("zero filter matrix should be the identity matrix")
	}
	if !NewColorFilter(identityMatrix).IsIdentity() {
		t.Error("explicit identity matrix should be the identity")
	}
	if f != NewColorFilter(identityMatrix) {
		t.Error("identity filters should compare equal")
	}

	c := Color{0.2, 0.4, 0.6, 0.8}
	if f.Apply(c) != c {
		t.Error("identity filter should not change colors")
	}
}

func TestColorFilterApply(t *testing.T) {
	white := Color{1, 1, 1, 1}

	assertColor(t, BrightnessFilter(0.5).Apply(black), Color{0.5, 0.5, 0.5, 1})
	assertColor(t, BrightnessFilter(1).Apply(white), white)
	assertColor(t, SaturationFilter(0).Apply(red), Color{0.299, 0.299, 0.299, 1})
	assertColor(t, SaturationFilter(1).Apply(red), red)
	assertColor(t, TintFilter(blue).Apply(white), blue)
	assertColor(t, TintFilter(Color{1, 0, 0, 0.5}).Apply(white), Color{1, 0, 0, 0.5})
}

// pathGraphic is a value-type vector icon; the slice makes it incomparable.
type pathGraphic struct {
	points []float64
}

func (g pathGraphic) IsNull() bool                     { return len(g.points) == 0 }
func (g pathGraphic) WidthForHeight(h float64) float64 { return h }
func (g pathGraphic) Image() *ebiten.Image             { return nil }

func TestSetGraphicDataIncomparableGraphic(t *testing.T) {
	var gn GraphicNode
	g := pathGraphic{points: []float64{0, 0, 1, 1}}
	rect := Rect{0, 0, 20, 20}

	if !gn.SetGraphicData(g, ColorFilter{}, rect, AlignCenter) {
		t.Error("first call should report a change")
	}
	// Incomparable graphics are always treated as changed.
	if !gn.SetGraphicData(g, ColorFilter{}, rect, AlignCenter) {
		t.Error("incomparable graphic should report a change")
	}

	node := UpdateGraphicNode(nil, g, ColorFilter{}, rect, AlignCenter)
	if again := UpdateGraphicNode(node, g, ColorFilter{}, rect, AlignCenter); again != node {
		t.Error("graphic node should be reused")
	}
}

func TestScaleWithIncomparableGraphicLabels(t *testing.T) {
	cfg := testScaleConfig()
	cfg.LabelSource = func(float64) Label {
		return GraphicLabel(pathGraphic{points: []float64{0, 1}})
	}
	r := NewScaleRenderer(cfg)

	node := r.UpdateScaleNode(testTickRect, testLabelRect, nil)
	r.UpdateScaleNode(testTickRect, testLabelRect, node)

	if labels := labelsOf(t, node); labels.NumChildren() != 3 {
		t.Errorf("labels = %d, want 3", labels.NumChildren())
	}
}
