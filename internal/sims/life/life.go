// Package life implements Conway's Game of Life on a toroidal grid with a
// decorative per-cell velocity field. The grid is double-buffered: each tick
// reads the previous generation in full while writing the next one, then
// swaps the two.
package life

import (
	"sync"

	"github.com/chewxy/math32"

	"parsim/internal/core"
	"parsim/internal/parallel"
	"parsim/pkg/doublebuf"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Live marks an occupied cell.
	Live Cell = 1
)

// velConsts assigns a unit-ish direction vector to each of the 8 neighbor
// directions, in gather order: top row left to right, then the middle row,
// then the bottom row. The exact values, including the repeated last entry,
// are part of the visual contract.
var velConsts = [8][2]float32{
	{-0.7, 0.7}, {0.0, 1.7}, {0.7, 0.7},
	{-1.0, 0.0}, {1.0, 0.0},
	{-0.7, -0.7}, {0.0, -1.0}, {0.7, 0.7},
}

// grid is one generation of simulation state. Cells and the velocity planes
// are stored column-major (index x*h+y); the image is row-major (y*w+x), the
// layout display consumers expect.
type grid struct {
	cells []Cell
	velX  []float32
	velY  []float32
	img   []byte
}

func newGrid(w, h int) *grid {
	n := w * h
	return &grid{
		cells: make([]Cell, n),
		velX:  make([]float32, n),
		velY:  make([]float32, n),
		img:   make([]byte, 4*n),
	}
}

type click struct {
	x, y  int
	state Cell
}

// Life is the Game of Life simulation driver.
type Life struct {
	w, h int

	game *doublebuf.DoubleBuf[*grid]
	pool *parallel.Pool

	mu     sync.Mutex
	clicks []click
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{
		w:    w,
		h:    h,
		game: doublebuf.New(func() *grid { return newGrid(w, h) }),
		pool: parallel.NewPool(0),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Reset randomizes the current generation using the provided seed.
func (l *Life) Reset(seed int64) {
	l.mu.Lock()
	l.clicks = l.clicks[:0]
	l.mu.Unlock()

	rng := core.NewRNG(seed)
	g := l.game.Read()
	for i := range g.cells {
		g.cells[i] = Cell(rng.Source().IntN(2))
		g.velX[i] = 0
		g.velY[i] = 0
	}
	for i := range g.img {
		g.img[i] = 0
	}
}

// AddClick enqueues an absolute cell overwrite to be applied at the start of
// the next tick. Coordinates are assumed in range; the input layer clamps.
func (l *Life) AddClick(x, y int, state Cell) {
	l.mu.Lock()
	l.clicks = append(l.clicks, click{x: x, y: y, state: state})
	l.mu.Unlock()
}

// Click adapts a pointer event to a queued cell overwrite: the primary
// button spawns a live cell, any other button clears one.
func (l *Life) Click(x, y int, primary bool) {
	state := Dead
	if primary {
		state = Live
	}
	l.AddClick(x, y, state)
}

// drainClicks applies queued overwrites, newest first. They land in the grid
// the kernel is about to read, not the one it is about to overwrite, so they
// are visible to the very next compute pass.
func (l *Life) drainClicks(g *grid) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for len(l.clicks) > 0 {
		c := l.clicks[len(l.clicks)-1]
		l.clicks = l.clicks[:len(l.clicks)-1]
		g.cells[c.x*l.h+c.y] = c.state
	}
}

// Step advances the simulation by one generation: queued clicks are applied,
// every cell is advanced in parallel against the previous generation, and
// the generations swap.
func (l *Life) Step() {
	r := l.game.Read()
	next := l.game.Write()
	l.drainClicks(r)

	w, h := l.w, l.h
	l.pool.For2D(w, h, func(x, y int) {
		var live [8]bool
		n := 0
		for offY := 1; offY >= -1; offY-- {
			for offX := -1; offX <= 1; offX++ {
				if offY == 0 && offX == 0 {
					continue
				}
				xi := core.Wrap(x, offX, w)
				yi := core.Wrap(y, offY, h)
				live[n] = r.cells[xi*h+yi] == Live
				n++
			}
		}

		var velX, velY float32
		liveNeighbours := 0
		for i := 0; i < 8; i++ {
			if live[i] {
				velX += velConsts[i][0]
				velY += velConsts[i][1]
				liveNeighbours++
			}
		}
		velX /= 8
		velY /= 8

		idx := x*h + y
		newState := Dead
		if r.cells[idx] == Live {
			if liveNeighbours == 2 || liveNeighbours == 3 {
				newState = Live
			}
		} else if liveNeighbours == 3 {
			newState = Live
		}
		next.cells[idx] = newState

		newVelX := (r.velX[idx] + velX) / 2
		newVelY := (r.velY[idx] + velY) / 2
		next.velX[idx] = newVelX
		next.velY[idx] = newVelY

		// Scale up for brighter colors; dead cells multiply to black.
		dispX := math32.Abs(newVelX)*5 + 0.2
		dispY := math32.Abs(newVelY)*5 + 0.2

		p := 4 * (y*w + x)
		s := float32(newState)
		next.img[p+0] = clamp8(s * dispX * 255)
		next.img[p+1] = 0
		next.img[p+2] = clamp8(s * dispY * 255)
		next.img[p+3] = 255
	})

	l.game.Swap()
}

// WithImage calls fn with the current generation's RGBA image. The slice must
// not be retained past the call.
func (l *Life) WithImage(fn func(pix []byte)) {
	fn(l.game.Read().img)
}

// Cells exposes the current generation's cell grid, column-major.
func (l *Life) Cells() []Cell { return l.game.Read().cells }

func clamp8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
