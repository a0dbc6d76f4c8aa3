// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-alpaka/alpaka/acc/contrib/workerpool"
)

// Option configures a Launcher.
type Option func(*Launcher)

// WithExternMem configures external block-shared memory: before each block
// executes, a zeroed buffer of size(blockThreads) bytes is made available
// to its threads via ExternShared. The buffer does not survive the block.
func WithExternMem(size func(blockThreads Vec3) int) Option {
	return func(l *Launcher) {
		l.externSize = size
	}
}

// WithWorkers sets how many blocks may execute concurrently. Each worker
// hosts an independent block engine that still runs its blocks strictly
// one at a time, so every within-block guarantee is unchanged; only the
// any-order independence of blocks is exercised. n <= 0 means one worker
// per schedulable CPU. The default is 1: the whole grid runs serially.
func WithWorkers(n int) Option {
	return func(l *Launcher) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		l.workers = n
	}
}

// Launcher executes kernels over a fixed work division. A Launcher is
// reusable: Run may be called any number of times, sequentially.
type Launcher struct {
	div        WorkDiv
	externSize func(Vec3) int
	workers    int

	// atomicMu backs all device atomics of this launcher's launches.
	atomicMu sync.Mutex
}

// NewLauncher validates the work division against the backend capacity and
// returns a launcher for it. A malformed extent and a block exceeding
// MaxThreadsPerBlock are both reported here, before anything executes.
func NewLauncher(div WorkDiv, opts ...Option) (*Launcher, error) {
	if err := div.Validate(); err != nil {
		return nil, err
	}
	if n := div.BlockLinear(); n > MaxThreadsPerBlock() {
		return nil, fmt.Errorf("acc: block of %d threads exceeds the backend maximum of %d",
			n, MaxThreadsPerBlock())
	}
	l := &Launcher{div: div, workers: 1}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Launch validates div and runs kernel over the whole grid, returning when
// every block has completed. Configuration errors are returned before any
// block executes.
func Launch(div WorkDiv, kernel Kernel, opts ...Option) error {
	l, err := NewLauncher(div, opts...)
	if err != nil {
		return err
	}
	l.Run(kernel)
	return nil
}

// Run executes kernel over the launcher's grid and returns when the last
// block has completed and its state is torn down.
func (l *Launcher) Run(kernel Kernel) {
	numBlocks := l.div.GridLinear()
	externBytes := 0
	if l.externSize != nil {
		externBytes = l.externSize(l.div.BlockThreads)
	}

	workers := min(l.workers, numBlocks)
	if workers <= 1 {
		engine := newBlockState(l.div, &l.atomicMu)
		l.runBlocks(kernel, engine, externBytes, 0, numBlocks)
		return
	}

	pool := workerpool.New(workers)
	defer pool.Close()
	pool.ParallelFor(numBlocks, func(start, end int) {
		// One engine per worker; within it, blocks stay strictly serial.
		engine := newBlockState(l.div, &l.atomicMu)
		l.runBlocks(kernel, engine, externBytes, start, end)
	})
}

// runBlocks executes the blocks with linear indices [start, end) on one
// engine, one block at a time, clearing all per-block state between them.
// Linear order is row-major over the grid, X fastest.
func (l *Launcher) runBlocks(kernel Kernel, engine *blockState, externBytes, start, end int) {
	for i := start; i < end; i++ {
		engine.beginBlock(linearTo3D(i, l.div.GridBlocks), externBytes)
		l.runBlock(kernel, engine)
		engine.clear()
	}
}

// runBlock spawns one goroutine per logical thread of the block, runs the
// kernel in each, and joins them all before returning.
//
// The wrapper around the kernel body pins down the block lifecycle: each
// thread registers its identity, then crosses a barrier so no thread can
// read the identity maps until they are complete, runs the body, and
// crosses a final barrier so no thread finishes (and frees its identity
// for reuse) while a sibling might still rely on it.
func (l *Launcher) runBlock(kernel Kernel, engine *blockState) {
	bt := l.div.BlockThreads
	var wg sync.WaitGroup
	for tz := 0; tz < bt.Z; tz++ {
		for ty := 0; ty < bt.Y; ty++ {
			for tx := 0; tx < bt.X; tx++ {
				u := &unit{idx: Vec3{X: tx, Y: ty, Z: tz}}
				wg.Add(1)
				go func() {
					defer wg.Done()
					engine.register(u)
					engine.sync(u)
					kernel(&Acc{state: engine, unit: u})
					engine.sync(u)
				}()
			}
		}
	}
	wg.Wait()
}
