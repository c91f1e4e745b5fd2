package nbody

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func zeroForce(_, _ Vec3[float64], _ float64) Vec3[float64] {
	return Vec3[float64]{}
}

func TestZeroForceFieldLeavesStateUnchanged(t *testing.T) {
	x := Vec3[float64]{1.5, -2, 0.25}
	var v Vec3[float64]

	for _, method := range []Integrator{Euler, RK4} {
		for _, h := range []float64{0.01, 0.5, 10} {
			nv, nx := v, x
			for i := 0; i < 20; i++ {
				nv, nx, _ = integrate(method, zeroForce, h, nv, nx, 0)
			}
			assert.Equal(t, v, nv, "velocity drifted (method %d, h %v)", method, h)
			assert.Equal(t, x, nx, "position drifted (method %d, h %v)", method, h)
		}
	}
}

func TestEulerConstantForce(t *testing.T) {
	a := Vec3[float64]{0, 0, 3}
	force := func(_, _ Vec3[float64], _ float64) Vec3[float64] { return a }

	v := Vec3[float64]{1, 0, 0}
	x := Vec3[float64]{0, 2, 0}
	h := 0.5

	nv, nx, rest := stepEuler(force, h, v, x, 0)

	assert.Equal(t, v.Add(a.Scale(h)), nv)
	assert.Equal(t, x.Add(v.Scale(h)), nx)
	assert.Equal(t, Vec3[float64]{}, rest, "third output is reserved and zero")
}

func TestRK4ConstantForce(t *testing.T) {
	a := Vec3[float64]{2, 0, -1}
	force := func(_, _ Vec3[float64], _ float64) Vec3[float64] { return a }

	v := Vec3[float64]{0, 1, 0}
	x := Vec3[float64]{1, 1, 1}
	h := 0.25

	nv, nx, _ := stepRK4(force, h, v, x, 0)

	// Constant acceleration is integrated exactly: v+ha and x+hv+h²a/2.
	wantV := v.Add(a.Scale(h))
	wantX := x.Add(v.Scale(h)).Add(a.Scale(h * h / 2))
	assert.InDelta(t, wantV.X, nv.X, 1e-12)
	assert.InDelta(t, wantV.Z, nv.Z, 1e-12)
	assert.InDelta(t, wantX.X, nx.X, 1e-12)
	assert.InDelta(t, wantX.Y, nx.Y, 1e-12)
	assert.InDelta(t, wantX.Z, nx.Z, 1e-12)
}

func TestRK4HarmonicOscillator(t *testing.T) {
	// dv/dt = -x with x(0)=1, v(0)=0 has solution x(t) = cos t. One half-unit
	// step should land within the method's fifth-order local error.
	spring := func(_, x Vec3[float64], _ float64) Vec3[float64] {
		return x.Scale(-1)
	}

	v := Vec3[float64]{}
	x := Vec3[float64]{X: 1}
	h := 0.5

	nv, nx, _ := stepRK4(spring, h, v, x, 0)

	assert.InDelta(t, math.Cos(h), nx.X, 1e-3)
	assert.InDelta(t, -math.Sin(h), nv.X, 1e-3)
}
