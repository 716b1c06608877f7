//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns an RGBA image sized to the automaton grid and the two
// pixel values binary cells map to. The color choice is fixed at
// construction; both engines render live-on-dead only.
type GridPainter struct {
	w, h    int
	on, off [4]byte
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a w*h grid drawing live cells in on
// and dead cells in off.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	gp := &GridPainter{
		w:   w,
		h:   h,
		on:  pixel(on),
		off: pixel(off),
		buf: make([]byte, 4*w*h),
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cells into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
