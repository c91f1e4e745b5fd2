// Package mandel computes images of the Mandelbrot set. Every pixel is
// independent of every other, so a single image buffer is reused in place
// across recalculations; there is no generation concept.
package mandel

import (
	"math"

	"golang.org/x/exp/constraints"

	"parsim/internal/parallel"
)

const (
	maxIters = 500

	// Anything above this is assumed divergent. This is the square of the
	// maximum absolute value of a non-divergent number, to avoid a sqrt in
	// the inner loop.
	divergenceLimit = 256
)

// palette is the 16-entry color cycle the smoothed iteration count indexes
// into, modulo its length.
var palette = [16][4]uint8{
	{66, 30, 15, 255},
	{25, 7, 26, 255},
	{9, 1, 47, 255},
	{4, 4, 73, 255},
	{0, 7, 100, 255},
	{12, 44, 138, 255},
	{24, 82, 177, 255},
	{57, 125, 209, 255},
	{134, 181, 229, 255},
	{211, 236, 248, 255},
	{241, 233, 191, 255},
	{248, 201, 95, 255},
	{255, 170, 0, 255},
	{204, 128, 0, 255},
	{153, 87, 0, 255},
	{106, 52, 3, 255},
}

// Calculator computes an image of the Mandelbrot set over a bounded region
// of the complex plane, generic over float precision (float64 allows much
// deeper zoom).
type Calculator[F constraints.Float] struct {
	w, h int
	img  []byte
	pool *parallel.Pool

	minX, maxX F
	minY, maxY F
}

// New allocates a calculator for a w*h image viewing the default region
// Re ∈ [-2, 1], Im ∈ [-1, 1].
func New[F constraints.Float](w, h int) *Calculator[F] {
	return &Calculator[F]{
		w:    w,
		h:    h,
		img:  make([]byte, 4*w*h),
		pool: parallel.NewPool(0),
		minX: -2,
		maxX: 1,
		minY: -1,
		maxY: 1,
	}
}

// SetBounds updates the viewed region of the complex plane. X is Re, Y is
// Im. Takes effect on the next Calc.
func (c *Calculator[F]) SetBounds(minX, maxX, minY, maxY F) {
	c.minX, c.maxX = minX, maxX
	c.minY, c.maxY = minY, maxY
}

// Bounds returns the currently viewed region.
func (c *Calculator[F]) Bounds() (minX, maxX, minY, maxY F) {
	return c.minX, c.maxX, c.minY, c.maxY
}

// Calc recomputes the image: every pixel maps to a point of the bounded
// region and is colored by its smoothed escape count. Pixels are computed
// in parallel; Calc returns once the whole image is written.
func (c *Calculator[F]) Calc() {
	w, h := c.w, c.h
	minX, maxX := c.minX, c.maxX
	minY, maxY := c.minY, c.maxY
	img := c.img

	c.pool.For2D(w, h, func(px, py int) {
		x := F(px) / F(w) * (maxX - minX)
		x += minX
		y := F(py) / F(h) * (maxY - minY)
		y += minY

		m := Mandelness(x, y)

		mi := int(math.Floor(float64(m)))
		fract := m - F(mi)
		colA := palette[((mi%16)+16)%16]
		colB := palette[(((mi+1)%16)+16)%16]

		base := 4 * (py*w + px)
		for ch := 0; ch < 4; ch++ {
			img[base+ch] = uint8(F(colA[ch])*(1-fract) + F(colB[ch])*fract)
		}
	})
}

// WithData calls fn with the most recently computed RGBA image. Before the
// first Calc the buffer is zeroed. The slice must not be retained past the
// call.
func (c *Calculator[F]) WithData(fn func(pix []byte)) {
	fn(c.img)
}

// Mandelness returns the smoothed iteration count at which the quadratic
// map diverges at the point (re, im). Points that never escape within the
// iteration cap return the in-set sentinel 1 rather than the cap, so
// interior points always pick the same palette stop.
func Mandelness[F constraints.Float](re, im F) F {
	var zRe, zIm F

	logTwo := F(math.Log(2))

	for i := 0; i < maxIters; i++ {
		zRe2 := zRe*zRe - zIm*zIm + re
		zIm = 2*zRe*zIm + im
		zRe = zRe2

		absSq := zRe*zRe + zIm*zIm
		if absSq >= divergenceLimit {
			logZn := F(math.Log(float64(absSq))) / 2
			nu := F(math.Log(float64(logZn/logTwo))) / logTwo
			return F(i) + 1 - nu
		}
	}

	return 1
}
