// Package nbody simulates gravitational or Lennard-Jones interaction between
// n bodies with an all-pairs force evaluation per tick. Velocity and position
// arrays are double-buffered: every body's new state is computed in parallel
// against the full previous generation, then the generations swap.
package nbody

import (
	"golang.org/x/exp/constraints"

	"parsim/internal/core"
	"parsim/internal/parallel"
	"parsim/pkg/doublebuf"
)

// Force selects the pairwise interaction law.
type Force int

const (
	// Gravity is pairwise inverse-square attraction.
	Gravity Force = iota
	// LennardJones is the repulsive-attractive potential gradient.
	LennardJones
)

// StepSize is the fixed simulation time step.
const StepSize = 0.5

// selfExclusion, added to a body's distance to itself, makes its own
// contribution to a pairwise sum numerically negligible without branching.
const selfExclusion = 1e24

// bodies holds one generation of state: parallel velocity and position
// arrays indexed by body id.
type bodies[F constraints.Float] struct {
	vel []Vec3[F]
	pos []Vec3[F]
}

func newBodies[F constraints.Float](n int) *bodies[F] {
	return &bodies[F]{vel: make([]Vec3[F], n), pos: make([]Vec3[F], n)}
}

// Sim is the n-body simulation driver, generic over float precision.
type Sim[F constraints.Float] struct {
	n    int
	bufs *doublebuf.DoubleBuf[*bodies[F]]
	pool *parallel.Pool

	time       F
	force      Force
	integrator Integrator

	gravG       F
	gravDamping F
	ljEps       F
	ljSigma     F
}

func newSim[F constraints.Float](n int) *Sim[F] {
	return &Sim[F]{
		n:           n,
		bufs:        doublebuf.New(func() *bodies[F] { return newBodies[F](n) }),
		pool:        parallel.NewPool(0),
		gravG:       1e-5,
		gravDamping: 1e-5,
		ljEps:       1,
		ljSigma:     1e-3,
	}
}

// NewCylinder creates a simulation of n bodies initially distributed in a
// cylinder. Generation 0 is written and published before returning.
func NewCylinder[F constraints.Float](n int, d Cylinder[F], seed int64) *Sim[F] {
	s := newSim[F](n)
	d.fill(core.NewRNG(seed), s.bufs.Write())
	s.bufs.Swap()
	s.time = 0
	return s
}

// NewSphere creates a simulation of n bodies initially distributed in a
// sphere with zero initial velocity.
func NewSphere[F constraints.Float](n int, d Sphere[F], seed int64) *Sim[F] {
	s := newSim[F](n)
	d.fill(core.NewRNG(seed), s.bufs.Write())
	s.bufs.Swap()
	s.time = 0
	return s
}

// SetForce selects the interaction law for subsequent steps.
func (s *Sim[F]) SetForce(f Force) { s.force = f }

// SetIntegrator selects the stepping method for subsequent steps.
func (s *Sim[F]) SetIntegrator(i Integrator) { s.integrator = i }

// SetGravG sets the gravitational constant.
func (s *Sim[F]) SetGravG(g F) { s.gravG = g }

// SetGravDamping sets the gravity damping term.
func (s *Sim[F]) SetGravDamping(d F) { s.gravDamping = d }

// SetLJEps sets the Lennard-Jones potential well depth.
func (s *Sim[F]) SetLJEps(eps F) { s.ljEps = eps }

// SetLJSigma sets the Lennard-Jones zero-potential distance.
func (s *Sim[F]) SetLJSigma(sigma F) { s.ljSigma = sigma }

// Bodies returns the number of bodies.
func (s *Sim[F]) Bodies() int { return s.n }

// Time returns the current simulation time.
func (s *Sim[F]) Time() F { return s.time }

// Step advances the simulation by one tick: every body integrates against
// the previous generation of all positions in parallel, the generations
// swap, and the clock advances by StepSize.
func (s *Sim[F]) Step() {
	read := s.bufs.Read()
	write := s.bufs.Write()
	vel, pos := read.vel, read.pos

	n := s.n
	t := s.time
	integ := s.integrator

	switch s.force {
	case LennardJones:
		a := 24 * s.ljEps * s.ljSigma
		s.pool.For(n, func(id int) {
			// Sum of Lennard-Jones potential gradients between this
			// body and all others.
			force := func(_, x Vec3[F], _ F) Vec3[F] {
				var acc Vec3[F]
				for i := 0; i < n; i++ {
					diff := pos[i].Sub(x)
					r := diff.Len()
					if i == id {
						r += selfExclusion
					}
					acc = acc.Add(diff.Scale(pow(r, -8) - 2*pow(r, -14)))
				}
				return acc.Scale(a)
			}
			write.vel[id], write.pos[id], _ = integrate(integ, force, F(StepSize), vel[id], pos[id], t)
		})
	default:
		g := s.gravG
		damping := s.gravDamping
		s.pool.For(n, func(id int) {
			// Gravitational acceleration from all other bodies.
			grav := func(_, x Vec3[F], _ F) Vec3[F] {
				var acc Vec3[F]
				for i := 0; i < n; i++ {
					diff := pos[i].Sub(x)
					r := diff.Len()
					var excl F
					if i == id {
						excl = selfExclusion
					}
					acc = acc.Add(diff.Scale(1 / (r*r*r + excl + damping)))
				}
				return acc.Scale(g)
			}
			write.vel[id], write.pos[id], _ = integrate(integ, grav, F(StepSize), vel[id], pos[id], t)
		})
	}

	s.bufs.Swap()
	s.time += StepSize
}

// WithPositions calls fn with the current generation's positions. The slice
// must not be retained past the call.
func (s *Sim[F]) WithPositions(fn func(pos []Vec3[F])) {
	fn(s.bufs.Read().pos)
}

// WithVelocities calls fn with the current generation's velocities. The
// slice must not be retained past the call.
func (s *Sim[F]) WithVelocities(fn func(vel []Vec3[F])) {
	fn(s.bufs.Read().vel)
}
