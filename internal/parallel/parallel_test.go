package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversRange(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 1000
	hits := make([]int32, n)
	p.For(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d executed %d times", i, h)
		}
	}
}

func TestForCompletesBeforeReturn(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	var sum atomic.Int64
	p.For(257, func(i int) {
		sum.Add(int64(i))
	})

	want := int64(257 * 256 / 2)
	if got := sum.Load(); got != want {
		t.Fatalf("pass incomplete at return: sum = %d, want %d", got, want)
	}
}

func TestFor2DCoversGrid(t *testing.T) {
	p := NewPool(0)
	defer p.Close()

	const w, h = 33, 17
	hits := make([]int32, w*h)
	p.For2D(w, h, func(x, y int) {
		atomic.AddInt32(&hits[y*w+x], 1)
	})

	for i, c := range hits {
		if c != 1 {
			t.Fatalf("cell %d executed %d times", i, c)
		}
	}
}

func TestForEmptyDomain(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	ran := false
	p.For(0, func(int) { ran = true })
	p.For2D(0, 5, func(int, int) { ran = true })
	p.For2D(5, 0, func(int, int) { ran = true })
	if ran {
		t.Fatal("empty domains must not execute the kernel")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	p := NewPool(2)
	p.Close()

	var count atomic.Int32
	p.For(10, func(int) { count.Add(1) })
	if count.Load() != 10 {
		t.Fatalf("inline fallback ran %d of 10 items", count.Load())
	}
}
