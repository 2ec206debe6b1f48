// Package graphics: Ebitengine-backed display sink.
package graphics

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/golang/glog"
)

// EbitenBackend presents frames through a real Ebitengine window. It
// implements ebiten.Game itself so cmd/nescore can hand it straight to
// ebiten.RunGame.
type EbitenBackend struct {
	mu     sync.Mutex
	image  *image.RGBA
	shown  *ebiten.Image
	scale  int
	update func() error
}

// NewEbitenBackend creates an Ebitengine backend at the given integer window
// scale (1 = native 256x240).
func NewEbitenBackend(scale int) *EbitenBackend {
	if scale < 1 {
		scale = 1
	}
	b := &EbitenBackend{
		image: image.NewRGBA(image.Rect(0, 0, 256, 240)),
		shown: ebiten.NewImage(256, 240),
		scale: scale,
	}
	ebiten.SetWindowSize(256*scale, 240*scale)
	ebiten.SetWindowTitle("nescore")
	glog.Infof("graphics: ebiten backend created at %dx scale", scale)
	return b
}

// SetUpdateFunc installs the per-frame emulator step called from Update.
func (b *EbitenBackend) SetUpdateFunc(f func() error) { b.update = f }

// Present copies frame into the backend's reusable RGBA buffer. Ebitengine's
// own Draw call later blits it to the window.
func (b *EbitenBackend) Present(frame *[256 * 240]uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, pixel := range frame {
		r := uint8(pixel >> 16)
		g := uint8(pixel >> 8)
		bl := uint8(pixel)
		b.image.Pix[i*4+0] = r
		b.image.Pix[i*4+1] = g
		b.image.Pix[i*4+2] = bl
		b.image.Pix[i*4+3] = 0xFF
	}
	b.shown.ReplacePixels(b.image.Pix)
	return nil
}

// Resolution reports the fixed NES framebuffer dimensions.
func (b *EbitenBackend) Resolution() (int, int) { return 256, 240 }

// Update implements ebiten.Game.
func (b *EbitenBackend) Update() error {
	if b.update != nil {
		return b.update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (b *EbitenBackend) Draw(screen *ebiten.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.scale), float64(b.scale))
	screen.DrawImage(b.shown, op)
}

// Layout implements ebiten.Game.
func (b *EbitenBackend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 256 * b.scale, 240 * b.scale
}
