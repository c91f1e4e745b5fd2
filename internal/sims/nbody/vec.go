package nbody

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec3 is a 3-component vector generic over the simulation's float precision.
type Vec3[F constraints.Float] struct {
	X, Y, Z F
}

// Add returns v + o.
func (v Vec3[F]) Add(o Vec3[F]) Vec3[F] {
	return Vec3[F]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3[F]) Sub(o Vec3[F]) Vec3[F] {
	return Vec3[F]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3[F]) Scale(s F) Vec3[F] {
	return Vec3[F]{v.X * s, v.Y * s, v.Z * s}
}

// LenSq returns the squared length of v.
func (v Vec3[F]) LenSq() F {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns the length of v.
func (v Vec3[F]) Len() F {
	return sqrt(v.LenSq())
}

func sqrt[F constraints.Float](v F) F {
	return F(math.Sqrt(float64(v)))
}

func pow[F constraints.Float](v, e F) F {
	return F(math.Pow(float64(v), float64(e)))
}

func sincos[F constraints.Float](v F) (F, F) {
	s, c := math.Sincos(float64(v))
	return F(s), F(c)
}
