//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter converts cell buffers into a scaled screen image for the
// desktop viewer. It owns one w-by-h texture and a pixel staging buffer so
// a frame costs no allocations.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	pixel *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a w-by-h cell viewport.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:     w,
		h:     h,
		img:   ebiten.NewImage(w, h),
		pixel: ebiten.NewImage(1, 1),
		buf:   make([]byte, w*h*4),
	}
}

// Blit writes cells through the palette and draws them scaled onto screen.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	fillPaletteRGBA(p.buf, cells, palette)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}

// MarkCell paints a single cell on top of the blitted grid, used for the
// ant marker.
func (p *GridPainter) MarkCell(screen *ebiten.Image, x, y int, c color.Color, scale int) {
	p.pixel.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x*scale), float64(y*scale))
	screen.DrawImage(p.pixel, op)
}
