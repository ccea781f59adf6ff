// Package parallel distributes independent row ranges of a resampling
// pass across a fixed set of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of goroutines for parallel resampling passes.
//
// Work items are closures covering contiguous row ranges of one pass.
// Every range touches disjoint output memory, so the pool needs no
// coordination beyond completion tracking. Rows of one pass cost nearly
// the same, so a single shared queue balances well enough without
// work stealing.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// work is the shared queue all workers pull from.
	work chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		work:    make(chan func(), workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			for {
				select {
				case fn := <-p.work:
					if fn != nil {
						fn()
					}
				default:
					return
				}
			}
		case fn := <-p.work:
			if fn != nil {
				fn()
			}
		}
	}
}

// ExecuteAll runs every work item on the pool and waits for all of them
// to complete. If the pool is closed, items run on the calling goroutine
// instead so a pass never silently drops rows.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))

	for _, fn := range work {
		fn := fn
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.work <- wrapped:
		case <-p.done:
			// Pool is closing; run inline.
			fn()
			wg.Done()
		}
	}

	wg.Wait()
}

// Close gracefully shuts down the pool: it stops accepting new work,
// finishes everything queued, and stops all workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
