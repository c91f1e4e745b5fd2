package nbody

import "golang.org/x/exp/constraints"

// Integrator selects the time-stepping method.
type Integrator int

const (
	// Euler is the explicit first-order method.
	Euler Integrator = iota
	// RK4 is the classical fourth-order Runge-Kutta method.
	RK4
)

// forceFunc evaluates the acceleration on one body given its velocity,
// position and the simulation time.
type forceFunc[F constraints.Float] func(vel, pos Vec3[F], t F) Vec3[F]

// integrate advances one body by a step of size h using the selected method.
// The third result is reserved for future state and currently always zero.
func integrate[F constraints.Float](
	method Integrator, f forceFunc[F], h F, vel, pos Vec3[F], t F,
) (Vec3[F], Vec3[F], Vec3[F]) {
	if method == RK4 {
		return stepRK4(f, h, vel, pos, t)
	}
	return stepEuler(f, h, vel, pos, t)
}

func stepEuler[F constraints.Float](
	f forceFunc[F], h F, vel, pos Vec3[F], t F,
) (Vec3[F], Vec3[F], Vec3[F]) {
	newVel := vel.Add(f(vel, pos, t).Scale(h))
	newPos := pos.Add(vel.Scale(h))
	return newVel, newPos, Vec3[F]{}
}

func stepRK4[F constraints.Float](
	f forceFunc[F], h F, vel, pos Vec3[F], t F,
) (Vec3[F], Vec3[F], Vec3[F]) {
	half := h / 2

	k1v := f(vel, pos, t)
	k1x := vel

	k2v := f(vel.Add(k1v.Scale(half)), pos.Add(k1x.Scale(half)), t+half)
	k2x := vel.Add(k1v.Scale(half))

	k3v := f(vel.Add(k2v.Scale(half)), pos.Add(k2x.Scale(half)), t+half)
	k3x := vel.Add(k2v.Scale(half))

	k4v := f(vel.Add(k3v.Scale(h)), pos.Add(k3x.Scale(h)), t+h)
	k4x := vel.Add(k3v.Scale(h))

	sixth := h / 6
	newVel := vel.Add(k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(sixth))
	newPos := pos.Add(k1x.Add(k2x.Scale(2)).Add(k3x.Scale(2)).Add(k4x).Scale(sixth))
	return newVel, newPos, Vec3[F]{}
}
