package thicket

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandTriangles CommandType = iota // DrawTriangles (ticks, boxes)
	CommandText                         // text.Draw
	CommandImage                        // colorm.DrawImage (graphics)
)

// RenderCommand is a single draw instruction emitted during tree traversal.
type RenderCommand struct {
	Type CommandType
	Node *Node

	treeOrder int

	// Triangles: slice headers into the node payload, not copies.
	verts []ebiten.Vertex
	inds  []uint16

	// Text
	text   string
	origin Vec2
	font   Font
	colors TextColors
	style  TextStyle

	// Image
	image  *ebiten.Image
	target Rect
	filter ColorFilter
}

// Renderer walks a paint tree depth-first in child order and draws it.
// Later children paint over earlier ones. A Renderer holds scratch buffers
// only and may be reused across frames and trees.
type Renderer struct {
	// Offset translates the whole tree when drawing.
	Offset Vec2

	commands []RenderCommand
	vertBuf  []ebiten.Vertex
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{commands: make([]RenderCommand, 0, 64)}
}

// Commands traverses root and returns the commands Draw would submit. The
// slice is reused by the next call.
func (r *Renderer) Commands(root *Node) []RenderCommand {
	r.commands = r.commands[:0]
	if root != nil {
		treeOrder := 0
		r.traverse(root, &treeOrder)
	}
	return r.commands
}

// Draw paints root onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, root *Node) {
	for i := range r.Commands(root) {
		r.submit(dst, &r.commands[i])
	}
}

func (r *Renderer) traverse(n *Node, treeOrder *int) {
	if !n.Visible || n.disposed {
		return
	}

	switch n.Kind {
	case NodeKindTicks:
		if n.Ticks != nil && len(n.Ticks.Indices) > 0 {
			r.emitTriangles(n, n.Ticks.Vertices, n.Ticks.Indices, treeOrder)
		}
	case NodeKindBox:
		if n.Box != nil && len(n.Box.Indices) > 0 {
			r.emitTriangles(n, n.Box.Vertices, n.Box.Indices, treeOrder)
		}
	case NodeKindText:
		tn := n.Text
		if tn != nil && tn.displayed != "" && tn.Font != nil {
			*treeOrder++
			r.commands = append(r.commands, RenderCommand{
				Type:      CommandText,
				Node:      n,
				treeOrder: *treeOrder,
				text:      tn.displayed,
				origin:    tn.origin(),
				font:      tn.Font,
				colors:    tn.Colors,
				style:     tn.Style,
			})
		}
	case NodeKindGraphic:
		gn := n.Graphic
		if gn != nil && gn.Graphic != nil && !gn.target.IsEmpty() {
			*treeOrder++
			r.commands = append(r.commands, RenderCommand{
				Type:      CommandImage,
				Node:      n,
				treeOrder: *treeOrder,
				image:     gn.Graphic.Image(),
				target:    gn.target,
				filter:    gn.Filter,
			})
		}
		// NodeKindContainer doesn't emit commands
	}

	for _, child := range n.children {
		r.traverse(child, treeOrder)
	}
}

func (r *Renderer) emitTriangles(n *Node, verts []ebiten.Vertex, inds []uint16, treeOrder *int) {
	*treeOrder++
	r.commands = append(r.commands, RenderCommand{
		Type:      CommandTriangles,
		Node:      n,
		treeOrder: *treeOrder,
		verts:     verts,
		inds:      inds,
	})
}

func (r *Renderer) submit(dst *ebiten.Image, cmd *RenderCommand) {
	switch cmd.Type {
	case CommandTriangles:
		r.submitTriangles(dst, cmd)
	case CommandText:
		r.submitText(dst, cmd)
	case CommandImage:
		r.submitImage(dst, cmd)
	}
}

// submitTriangles draws vertices that carry premultiplied colors.
func (r *Renderer) submitTriangles(dst *ebiten.Image, cmd *RenderCommand) {
	verts := cmd.verts
	if r.Offset != (Vec2{}) {
		if cap(r.vertBuf) < len(verts) {
			r.vertBuf = make([]ebiten.Vertex, len(verts))
		}
		r.vertBuf = r.vertBuf[:len(verts)]
		ox, oy := float32(r.Offset.X), float32(r.Offset.Y)
		for i, v := range verts {
			v.DstX += ox
			v.DstY += oy
			r.vertBuf[i] = v
		}
		verts = r.vertBuf
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(verts, cmd.inds, ensureWhitePixel(), &op)
}

// submitText draws the style decoration first, then the text itself. Only
// TTF fonts can be drawn; other Font implementations only provide metrics.
func (r *Renderer) submitText(dst *ebiten.Image, cmd *RenderCommand) {
	f, ok := cmd.font.(*TTFFont)
	if !ok {
		return
	}

	x, y := cmd.origin.X+r.Offset.X, cmd.origin.Y+r.Offset.Y
	draw := func(dx, dy float64, c Color) {
		if !c.IsVisible() {
			return
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+dx, y+dy)
		op.ColorScale = c.ColorScale()
		op.LineSpacing = f.lh
		text.Draw(dst, cmd.text, f.face, op)
	}

	switch cmd.style {
	case TextOutline:
		for _, d := range [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			draw(d[0], d[1], cmd.colors.Style)
		}
	case TextRaised:
		draw(0, 1, cmd.colors.Style)
	case TextSunken:
		draw(0, -1, cmd.colors.Style)
	}
	draw(0, 0, cmd.colors.Text)
}

// submitImage scales the graphic into its target rect through the node's
// color filter. Graphics without an image (intrinsic size only) draw
// nothing.
func (r *Renderer) submitImage(dst *ebiten.Image, cmd *RenderCommand) {
	img := cmd.image
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &colorm.DrawImageOptions{}
	op.GeoM.Scale(cmd.target.Width/float64(b.Dx()), cmd.target.Height/float64(b.Dy()))
	op.GeoM.Translate(cmd.target.X+r.Offset.X, cmd.target.Y+r.Offset.Y)
	op.Filter = ebiten.FilterLinear
	colorm.DrawImage(dst, img, cmd.filter.ColorM(), op)
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
