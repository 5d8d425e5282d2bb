//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SlicePainter updates a single RGBA image from one Z slice of a field.
type SlicePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewSlicePainter allocates a painter for a slice of size w*h.
func NewSlicePainter(w, h int) *SlicePainter {
	sp := &SlicePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	sp.img = ebiten.NewImage(w, h)
	return sp
}

// Blit uploads the provided slice cells into the painter image and draws it.
func (sp *SlicePainter) Blit(dst *ebiten.Image, cells []uint32, scale int) {
	if len(cells) != sp.w*sp.h {
		return
	}
	fillGrayRGBA(sp.buf, cells)
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Size returns the dimensions of the underlying image.
func (sp *SlicePainter) Size() (int, int) { return sp.w, sp.h }
