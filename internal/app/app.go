//go:build ebiten

package app

import (
	"time"

	"parsim/internal/core"
	"parsim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// clicker is implemented by sims accepting queued pointer events.
type clicker interface {
	Click(x, y int, primary bool)
}

// navigator is implemented by sims with a movable viewport.
type navigator interface {
	Pan(dx, dy float64)
	Zoom(factor float64)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.ImagePainter
	fixed   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, tps int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewImagePainter(size.W, size.H),
		fixed:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleClicks()
	g.handleNavigation()

	steps := g.fixed.Steps()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		start := time.Now()
		g.sim.Step()
		core.Logger().Debug("step", "sim", g.sim.Name(), "took", time.Since(start))
	}
	return nil
}

// handleClicks forwards mouse presses as queued cell events to sims that
// accept them.
func (g *Game) handleClicks() {
	c, ok := g.sim.(clicker)
	if !ok {
		return
	}
	primary := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	secondary := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !primary && !secondary {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	size := g.sim.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	c.Click(x, y, primary)
}

// handleNavigation applies keyboard pan/zoom to sims with a viewport.
func (g *Game) handleNavigation() {
	n, ok := g.sim.(navigator)
	if !ok {
		return
	}

	const panStep = 0.02
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		n.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		n.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		n.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		n.Pan(0, panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		n.Zoom(0.98)
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		n.Zoom(1.0 / 0.98)
	}
}

// Draw renders the current simulation image.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.WithImage(func(pix []byte) {
		g.painter.Blit(screen, pix, g.scale)
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
