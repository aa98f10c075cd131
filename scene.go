package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// control pairs a skinnable with its skinlet and the subtree built for it.
type control struct {
	skinnable Skinnable
	skinlet   Skinlet
	node      *Node
}

// Scene hosts skinned controls under one root node and keeps their paint
// trees up to date. Controls paint in the order they were added.
//
// There is no event handling: callers change control state between frames
// and the next Update reconciles the trees.
type Scene struct {
	root     *Node
	controls []*control
	renderer *Renderer

	// ClearColor fills the target before drawing when visible.
	ClearColor Color

	// ScreenshotDir receives the files queued with Screenshot.
	ScreenshotDir string
	snapshots     []string

	testRunner *TestRunner
	stats      *statsOverlay
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		renderer:      NewRenderer(),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Renderer returns the renderer used by Draw.
func (s *Scene) Renderer() *Renderer {
	return s.renderer
}

// Add registers a control painted by sk.
func (s *Scene) Add(skinnable Skinnable, sk Skinlet) {
	s.controls = append(s.controls, &control{skinnable: skinnable, skinlet: sk})
}

// Remove unregisters a control and disposes its paint tree.
func (s *Scene) Remove(skinnable Skinnable) {
	for i, c := range s.controls {
		if c.skinnable != skinnable {
			continue
		}
		if c.node != nil {
			c.node.Dispose()
		}
		if f, ok := c.skinlet.(Forgetter); ok {
			f.Forget(skinnable)
		}
		s.controls = append(s.controls[:i], s.controls[i+1:]...)
		return
	}
}

// NodeFor returns the paint tree of a control, or nil before the first
// Update.
func (s *Scene) NodeFor(skinnable Skinnable) *Node {
	for _, c := range s.controls {
		if c.skinnable == skinnable {
			return c.node
		}
	}
	return nil
}

// controlAt returns the skinnable added at index i, or nil.
func (s *Scene) controlAt(i int) Skinnable {
	if i < 0 || i >= len(s.controls) {
		return nil
	}
	return s.controls[i].skinnable
}

// Update advances the attached test runner, if any, and reconciles the
// paint tree of every control.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	advanced := make(map[Skinlet]bool, 2)
	for _, c := range s.controls {
		if a, ok := c.skinlet.(Animator); ok && !advanced[c.skinlet] {
			a.Advance(dt)
			advanced[c.skinlet] = true
		}
	}

	for i, c := range s.controls {
		c.node = UpdateNode(c.skinlet, c.skinnable, c.node)
		if c.node.Parent == nil {
			s.root.InsertChildAt(c.node, min(i, s.root.NumChildren()))
		}
	}
}

// Draw paints the scene onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.IsVisible() {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.renderer.Draw(screen, s.root)
	s.flushScreenshots(screen)

	if s.stats != nil {
		s.stats.update(1/float64(ebiten.TPS()), countNodes(s.root), len(s.renderer.commands))
		s.stats.draw(screen)
	}
}
