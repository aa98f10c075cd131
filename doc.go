// Package thicket is a skinnable control layer for [Ebitengine].
//
// Controls describe what they are (a state bitmask and a rectangle);
// skinlets turn that description into a tree of retained paint nodes. On
// every update the skinlet reconciles the tree it built last time instead
// of rebuilding it, so unchanged tick marks, labels and boxes keep their
// nodes and their generated geometry.
//
// # Quick start
//
// Implement [ebiten.Game] and call [Scene.Update] and [Scene.Draw]:
//
//	type Game struct{ scene *thicket.Scene }
//
//	func (g *Game) Update() error         { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// Controls are registered together with the skinlet that paints them:
//
//	skin := thicket.DefaultSkin()
//	box := &thicket.CheckBox{Rect: thicket.Rect{X: 20, Y: 20, Width: 24, Height: 24}}
//	scene.Add(box, thicket.NewCheckBoxSkinlet(skin))
//
// # Paint nodes
//
// Every paint node is a [Node] tagged with a small role number. A skinlet
// finds the subtree it built for a role with [Node.FindChild], lets the
// subtree update itself, and swaps it with [InsertOrReplaceChild] only when
// a different node comes back. Nodes are owned by their parent unless
// [Node.Owned] is cleared, and removing an owned node disposes it.
//
// # Scales
//
// [ScaleRenderer] builds tick marks and one label per major tick for a
// linear scale. Labels are text or graphics; the n-th label reuses the n-th
// label node as long as both are of the same kind. [ScaleConfig] is a plain
// value: build a new one for every update.
//
// # Colors
//
// [Gradient] is an ordered list of color stops and [BorderColors] holds one
// gradient per border side. Both interpolate, hash deterministically and
// are registered with [Interpolate], which [Transition] uses to animate
// them (easing via [gween]).
//
// # Skins
//
// A [Skin] is loaded from TOML with [LoadSkin] or [LoadSkinFile]; colors are
// hex strings. [DefaultSkin] needs no files.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package thicket
