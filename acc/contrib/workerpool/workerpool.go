// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for running
// independent chunks of a launch in parallel. A pool is created once and
// reused across many operations, so repeated launches do not pay goroutine
// spawn and channel allocation costs per call.
//
// The launcher uses it to distribute block ranges over OS threads: each
// worker receives a contiguous range of block indices and hosts its own
// block engine for them. Anything else that needs a plain chunked
// parallel-for can use it the same way.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and persist until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one scheduled chunk of a parallel operation.
type workItem struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool with the given number of workers. If numWorkers <= 0,
// one worker per schedulable CPU is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first. Calling Close
// more than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker and blocks until every range completes. fn receives half-open
// (start, end) bounds. On a closed pool the whole range runs sequentially
// in the caller.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}

	wg.Wait()
}
