// Package render holds the pixel-buffer helpers shared by the simulation
// displays, plus the ebiten blitter used by the GUI build.
package render

// Clear fills an RGBA buffer with opaque black.
func Clear(pix []byte) {
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 255
	}
}

// SetPixel writes an RGBA value at (x, y) in a w*h buffer. Out-of-range
// coordinates are ignored.
func SetPixel(pix []byte, w, h, x, y int, r, g, b, a uint8) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	base := 4 * (y*w + x)
	pix[base+0] = r
	pix[base+1] = g
	pix[base+2] = b
	pix[base+3] = a
}

// AddPixel saturating-adds brightness at (x, y), so overlapping splats
// accumulate toward white. Out-of-range coordinates are ignored.
func AddPixel(pix []byte, w, h, x, y int, r, g, b uint8) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	base := 4 * (y*w + x)
	pix[base+0] = addSat(pix[base+0], r)
	pix[base+1] = addSat(pix[base+1], g)
	pix[base+2] = addSat(pix[base+2], b)
	pix[base+3] = 255
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
