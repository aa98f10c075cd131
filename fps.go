package thicket

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay shows frame rate and paint tree statistics in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

// SetShowStats toggles the statistics overlay drawn on top of the scene.
func (s *Scene) SetShowStats(show bool) {
	if !show {
		if s.stats != nil {
			s.stats.img.Deallocate()
			s.stats = nil
		}
		return
	}
	if s.stats == nil {
		// 140x64 is enough for four short lines of debug text.
		s.stats = &statsOverlay{img: ebiten.NewImage(140, 64), lastUpdate: 1}
	}
}

func (o *statsOverlay) update(dt float64, nodes, commands int) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nNodes: %d\nDraws: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), nodes, commands))
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

// countNodes returns the number of nodes in the subtree below n, n
// included.
func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}
