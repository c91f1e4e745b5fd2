package nbody

import (
	"golang.org/x/exp/constraints"

	"parsim/internal/core"
)

// Cylinder describes a uniform cylindrical body distribution: uniform in r²
// over [RMin, RMax], uniform in angle and height, with tangential velocity
// scaled so the outermost bodies move at Speed.
type Cylinder[F constraints.Float] struct {
	RMin, RMax           F
	AngleMin, AngleMax   F
	HeightMin, HeightMax F
	Speed                F
}

func (d Cylinder[F]) fill(rng *core.RNG, b *bodies[F]) {
	rmin, rmax := float64(d.RMin), float64(d.RMax)
	for i := range b.pos {
		r := sqrt(F(rng.Float64In(rmin*rmin, rmax*rmax)))
		phi := F(rng.Float64In(float64(d.AngleMin), float64(d.AngleMax)))
		y := F(rng.Float64In(float64(d.HeightMin), float64(d.HeightMax)))
		sinp, cosp := sincos(phi)

		// Tangential velocity: derivative of the circular slice position
		// w.r.t. phi, scaled so the outer edge moves at Speed.
		b.vel[i] = Vec3[F]{-r * sinp, 0, r * cosp}.Scale(d.Speed / d.RMax)
		b.pos[i] = Vec3[F]{r * cosp, y, r * sinp}
	}
}

// Sphere describes a uniform spherical body distribution: uniform in r³ over
// [RMin, RMax], isotropic in angle, with zero initial velocity.
type Sphere[F constraints.Float] struct {
	RMin, RMax F
}

func (d Sphere[F]) fill(rng *core.RNG, b *bodies[F]) {
	rmin, rmax := float64(d.RMin), float64(d.RMax)
	for i := range b.pos {
		r := pow(F(rng.Float64In(rmin*rmin*rmin, rmax*rmax*rmax)), F(1)/F(3))
		cost := F(rng.Float64In(-1, 1))
		sint := sqrt(1 - cost*cost)
		phi := F(rng.Float64In(0, 2*3.141592))
		sinp, cosp := sincos(phi)

		b.vel[i] = Vec3[F]{}
		b.pos[i] = Vec3[F]{r * sint * cosp, r * sint * sinp, r * cost}
	}
}
