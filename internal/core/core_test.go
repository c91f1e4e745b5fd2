package core

import "testing"

func TestWrapTorus(t *testing.T) {
	cases := []struct {
		i, off, max int
		want        int
	}{
		{0, -1, 8, 7},
		{7, 1, 8, 0},
		{3, 0, 8, 3},
		{0, -9, 8, 7},
		{5, 2, 8, 7},
	}
	for _, c := range cases {
		if got := Wrap(c.i, c.off, c.max); got != c.want {
			t.Fatalf("Wrap(%d, %d, %d) = %d, want %d", c.i, c.off, c.max, got, c.want)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)
	for i := 0; i < 100; i++ {
		x := a.Float64In(-2, 2)
		y := b.Float64In(-2, 2)
		if x != y {
			t.Fatalf("same seed diverged at draw %d: %v vs %v", i, x, y)
		}
		if x < -2 || x >= 2 {
			t.Fatalf("draw %d out of range: %v", i, x)
		}
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("broken", nil)
	if len(Sims()) != before {
		t.Fatal("empty names and nil factories must not be registered")
	}
}
