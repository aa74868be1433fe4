//go:build dev

package display

import (
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/redox-os/orbital/internal/rimage"
)

// EbitenBackend stands in for the mmap'd hardware framebuffer during
// development, windowing the composited desktop the same way the
// teacher's EbitenOutput windowed an emulated machine's video chip
// output. Map/Unmap here do not actually touch the file descriptor; the
// backing store is a plain Go slice shared with an ebiten.Game that
// blits it to screen every Draw.
type EbitenBackend struct {
	mu      sync.Mutex
	started bool
}

type ebitenGame struct {
	backend *EbitenBackend
	img     *rimage.Image
}

func (g *ebitenGame) Update() error { return nil }

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.backend.mu.Lock()
	defer g.backend.mu.Unlock()
	w, h := g.img.Width(), g.img.Height()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := g.img.Row(y)
		for x := 0; x < w; x++ {
			c := row[x]
			rgba.SetRGBA(x, y, color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 255})
		}
	}
	screen.WritePixels(rgba.Pix)
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.img.Width(), g.img.Height()
}

func (b *EbitenBackend) Map(file *os.File, width, height int) (*rimage.Image, error) {
	img := rimage.New(width, height)
	b.mu.Lock()
	started := b.started
	b.started = true
	b.mu.Unlock()
	if !started {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("orbital (dev)")
		go func() {
			_ = ebiten.RunGame(&ebitenGame{backend: b, img: img})
		}()
	}
	return img, nil
}

func (b *EbitenBackend) Unmap(*rimage.Image) {}
