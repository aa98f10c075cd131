package thicket

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the next drawn frame, written as
// <ScreenshotDir>/<timestamp>_<label>.png. Useful for comparing skins.
func (s *Scene) Screenshot(label string) {
	s.snapshots = append(s.snapshots, label)
}

// flushScreenshots writes every queued capture of screen. Failures are
// logged; a frame is never dropped because of them.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.snapshots) == 0 {
		return
	}
	defer func() { s.snapshots = s.snapshots[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		logger().Warn("thicket: screenshot directory unavailable", "dir", s.ScreenshotDir, "err", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := straightAlpha(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.snapshots {
		path := filepath.Join(s.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			logger().Warn("thicket: screenshot failed", "path", path, "err", err)
			continue
		}
		logger().Debug("thicket: screenshot written", "path", path)
	}
}

// straightAlpha converts premultiplied RGBA pixels, as read back from an
// ebiten.Image, into a straight-alpha image suitable for PNG encoding.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for k := 0; k < 3; k++ {
			img.Pix[i+k] = uint8(min(int(img.Pix[i+k])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("thicket: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("thicket: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces everything
// else with '_', and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
