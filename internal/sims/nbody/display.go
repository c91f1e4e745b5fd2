package nbody

import (
	"parsim/internal/core"
	"parsim/internal/render"
)

// View adapts a Sim to the display contract shared with the grid sims by
// splatting body positions into an RGBA image after every tick. Bodies are
// projected onto the XY plane; depth is ignored.
type View struct {
	cfg Config
	sim *Sim[float32]
	img []byte
}

// NewView builds the simulation described by cfg and renders generation 0.
func NewView(cfg Config, seed int64) *View {
	v := &View{cfg: cfg, img: make([]byte, 4*cfg.Width*cfg.Height)}
	v.build(seed)
	return v
}

func (v *View) build(seed int64) {
	n := v.cfg.Bodies
	switch v.cfg.Distribution {
	case "sphere":
		v.sim = NewSphere(n, Sphere[float32]{RMin: 0.1, RMax: 1}, seed)
	default:
		v.sim = NewCylinder(n, Cylinder[float32]{
			RMin:      0.1,
			RMax:      1,
			AngleMin:  0,
			AngleMax:  2 * 3.141592,
			HeightMin: -0.1,
			HeightMax: 0.1,
			Speed:     0.1,
		}, seed)
	}
	v.sim.SetForce(v.cfg.force())
	v.sim.SetIntegrator(v.cfg.integrator())
	v.sim.SetGravG(float32(v.cfg.G))
	v.sim.SetGravDamping(float32(v.cfg.Damping))
	v.sim.SetLJEps(float32(v.cfg.Eps))
	v.sim.SetLJSigma(float32(v.cfg.Sigma))
	v.render()
}

// Name returns the simulation identifier.
func (v *View) Name() string { return "nbody" }

// Size returns the viewport dimensions.
func (v *View) Size() core.Size { return core.Size{W: v.cfg.Width, H: v.cfg.Height} }

// Reset rebuilds the body distribution from the provided seed.
func (v *View) Reset(seed int64) { v.build(seed) }

// Step advances the simulation one tick and redraws the viewport.
func (v *View) Step() {
	v.sim.Step()
	v.render()
}

// WithImage calls fn with the most recently rendered RGBA frame.
func (v *View) WithImage(fn func(pix []byte)) { fn(v.img) }

// Sim exposes the underlying driver for between-tick configuration.
func (v *View) Sim() *Sim[float32] { return v.sim }

func (v *View) render() {
	w, h := v.cfg.Width, v.cfg.Height
	extent := float32(v.cfg.Extent)
	render.Clear(v.img)
	v.sim.WithPositions(func(pos []Vec3[float32]) {
		for _, p := range pos {
			x := int((p.X/extent*0.5 + 0.5) * float32(w))
			y := int((p.Y/extent*0.5 + 0.5) * float32(h))
			render.AddPixel(v.img, w, h, x, y, 90, 110, 140)
		}
	})
}

func init() {
	core.Register("nbody", func(cfg map[string]string) core.Sim {
		return NewView(FromMap(cfg), 0)
	})
}
