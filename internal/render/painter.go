//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// ImagePainter uploads RGBA simulation frames into a single ebiten image.
type ImagePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewImagePainter allocates a painter for a w*h frame.
func NewImagePainter(w, h int) *ImagePainter {
	return &ImagePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads pix into the painter image and draws it scaled onto dst.
func (p *ImagePainter) Blit(dst *ebiten.Image, pix []byte, scale int) {
	if len(pix) != 4*p.w*p.h {
		return
	}
	p.img.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *ImagePainter) Size() (int, int) { return p.w, p.h }
