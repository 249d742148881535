//go:build ebiten

package render

import (
	"toy-atom/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads an RGBA frame into an ebiten image and draws it.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for a frame of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the frame and draws it scaled onto dst. The backing image is
// reallocated when the frame has been resized.
func (fp *FramePainter) Blit(dst *ebiten.Image, f *core.Frame, scale int) {
	if f == nil || len(f.Pix) != 4*f.W*f.H {
		return
	}
	if f.W != fp.w || f.H != fp.h {
		fp.img.Deallocate()
		fp.w, fp.h = f.W, f.H
		fp.img = ebiten.NewImage(f.W, f.H)
	}
	fp.img.WritePixels(f.Pix)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
