package mandel

import (
	"strconv"

	"parsim/internal/core"
)

// Config controls the Mandelbrot image dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// View drives a Calculator through the shared display contract: each Step
// applies the current viewport bounds and recomputes the image. float64
// precision is used for deeper zooming.
type View struct {
	calc *Calculator[float64]
	vp   Viewport[float64]
}

// NewView creates a Mandelbrot view with the default viewport.
func NewView(cfg Config) *View {
	return &View{
		calc: New[float64](cfg.Width, cfg.Height),
		vp:   DefaultViewport[float64](),
	}
}

// Name returns the simulation identifier.
func (v *View) Name() string { return "mandelbrot" }

// Size returns the image dimensions.
func (v *View) Size() core.Size { return core.Size{W: v.calc.w, H: v.calc.h} }

// Reset restores the default viewport. The seed is ignored: the set is not
// randomized.
func (v *View) Reset(int64) {
	v.vp = DefaultViewport[float64]()
}

// Step applies the viewport bounds and recomputes the image.
func (v *View) Step() {
	v.calc.SetBounds(v.vp.Bounds(v.calc.w, v.calc.h))
	v.calc.Calc()
}

// WithImage calls fn with the most recently computed RGBA image.
func (v *View) WithImage(fn func(pix []byte)) {
	v.calc.WithData(fn)
}

// Pan shifts the view by fractions of the visible range.
func (v *View) Pan(dx, dy float64) {
	v.vp = v.vp.Panned(dx, dy)
}

// Zoom scales the visible range; factors below 1 zoom in.
func (v *View) Zoom(factor float64) {
	v.vp = v.vp.Zoomed(factor)
}

// Calculator exposes the underlying calculator.
func (v *View) Calculator() *Calculator[float64] { return v.calc }

func init() {
	core.Register("mandelbrot", func(cfg map[string]string) core.Sim {
		return NewView(FromMap(cfg))
	})
}
