// Package parallel provides the data-parallel dispatch layer used by the
// simulation kernels. A pass submits independent per-element work over a 1D
// index range or a 2D grid; items within a pass may run in any order, and the
// dispatch call returns only once every item has completed.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines executing simulation passes.
//
// Workers pull tasks from a shared queue. A pass (For, For2D) blocks the
// caller until the whole pass has completed, which is the only sequencing
// guarantee kernels rely on: all writes of a pass are visible before the
// caller swaps generations.
type Pool struct {
	workers int
	tasks   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers. If workers is 0 or
// negative, GOMAXPROCS is used. Workers start immediately.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case task := <-p.tasks:
			task()
		}
	}
}

// drain executes queued tasks left behind at shutdown so that an in-flight
// pass can still complete.
func (p *Pool) drain() {
	for {
		select {
		case task := <-p.tasks:
			task()
		default:
			return
		}
	}
}

// For runs fn(i) for every i in [0, n), splitting the range into one
// contiguous chunk per worker. It returns after all items have run.
func (p *Pool) For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n == 1 || p.workers == 1 || !p.running.Load() {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + p.workers - 1) / p.workers

	var passWG sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi

		passWG.Add(1)
		p.tasks <- func() {
			defer passWG.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}
	}
	passWG.Wait()
}

// For2D runs fn(x, y) for every cell of a w*h grid. Rows are partitioned
// across workers; within a row, x advances sequentially.
func (p *Pool) For2D(w, h int, fn func(x, y int)) {
	if w <= 0 || h <= 0 {
		return
	}
	p.For(h, func(y int) {
		for x := 0; x < w; x++ {
			fn(x, y)
		}
	})
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Close stops the workers after draining queued tasks. Passes started after
// Close run inline on the caller. Close is safe to call multiple times.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.running.Store(false)
		close(p.done)
		p.wg.Wait()
	})
}
