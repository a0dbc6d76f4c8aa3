// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import (
	"sync"
	"unsafe"
)

// unit is the identity of one logical thread for the duration of one block
// execution. The engine allocates a fresh unit per spawned goroutine and
// hands it to the kernel wrapper; its pointer value keys the per-block
// bookkeeping maps. A unit must never be retained past its block.
type unit struct {
	idx Vec3
}

// blockState owns every piece of state shared by the threads of the block
// currently executing on one engine: the identity maps, the barrier pair,
// the master-thread designation and both shared-memory arenas. It is
// created once per engine and cleared between blocks; nothing in it
// survives from one block into the next.
type blockState struct {
	div      WorkDiv
	numUnits int

	// atomicMu serializes device atomics. It is shared across all engines
	// of a launch so that atomics hit by concurrently running blocks still
	// exclude each other.
	atomicMu *sync.Mutex

	// mu guards the fields below. Barrier waits happen outside mu; only
	// the round bookkeeping and the check-then-reset of a drained barrier
	// run under it, which is what makes first-arrival re-arming race-free.
	mu       sync.Mutex
	indices  map[*unit]Vec3
	rounds   map[*unit]int
	barriers [2]*barrier
	master   *unit
	shared   [][]byte
	extern   []byte
	blockIdx Vec3
}

func newBlockState(div WorkDiv, atomicMu *sync.Mutex) *blockState {
	return &blockState{
		div:      div,
		numUnits: div.BlockLinear(),
		atomicMu: atomicMu,
		indices:  make(map[*unit]Vec3, div.BlockLinear()),
		rounds:   make(map[*unit]int, div.BlockLinear()),
		barriers: [2]*barrier{newBarrier(), newBarrier()},
	}
}

// beginBlock prepares the state for the next block: publishes the block
// index every thread of the block will observe and sizes the external
// shared buffer. Called by the engine between joins, never concurrently
// with kernel code.
func (s *blockState) beginBlock(blockIdx Vec3, externBytes int) {
	s.blockIdx = blockIdx
	if externBytes > 0 {
		s.extern = alignedBytes(externBytes)
	} else {
		s.extern = nil
	}
}

// register records the calling thread's identity. Each thread calls it
// exactly once on entry, before the first synchronization point; the maps
// are complete only after every thread of the block has crossed that first
// barrier. The thread at index (0,0,0) becomes the block's master.
func (s *blockState) register(u *unit) {
	s.mu.Lock()
	s.indices[u] = u.idx
	s.rounds[u] = 0
	if u.idx == (Vec3{}) {
		s.master = u
	}
	s.mu.Unlock()
}

// threadIdx returns the logical 3-D index registered for u. Looking up an
// unregistered unit is a fatal precondition violation: it means a unit
// escaped the per-block lifecycle.
func (s *blockState) threadIdx(u *unit) Vec3 {
	s.mu.Lock()
	idx, ok := s.indices[u]
	s.mu.Unlock()
	if !ok {
		panic("acc: thread is not registered with the executing block")
	}
	return idx
}

// sync is the block-wide synchronization point. Each thread selects the
// barrier instance for its current round (round mod 2); the first arrival
// of a round finds the instance drained and re-arms it for the whole
// cohort. Check and reset run under mu, so two first arrivals cannot both
// observe the drained instance.
//
// The alternating pair is what makes back-to-back rounds safe: all threads
// must fully leave instance k's wait before any thread can complete round
// k+1 on the other instance, so by the time round k+2 re-arms instance k
// it is guaranteed drained.
func (s *blockState) sync(u *unit) {
	s.mu.Lock()
	round, ok := s.rounds[u]
	if !ok {
		s.mu.Unlock()
		panic("acc: thread is not registered with the executing block")
	}
	b := s.barriers[round%2]
	if b.pendingCount() == 0 {
		b.reset(s.numUnits)
	}
	s.mu.Unlock()

	b.wait()

	s.mu.Lock()
	s.rounds[u] = round + 1
	s.mu.Unlock()
}

// allocShared appends one zero-initialized buffer of size bytes to the
// block's dynamic arena and returns it to every thread of the block.
//
// The first sync drains any use of a previously returned buffer; the
// master then appends while everyone else does nothing; the second sync
// publishes the new buffer to all threads before any of them can touch it.
// Every thread of the block must call allocShared with the same size at
// the same point, or the block deadlocks.
func (s *blockState) allocShared(u *unit, size int) []byte {
	s.sync(u)

	s.mu.Lock()
	if s.master == u {
		s.shared = append(s.shared, alignedBytes(size))
	}
	s.mu.Unlock()

	s.sync(u)

	s.mu.Lock()
	buf := s.shared[len(s.shared)-1]
	s.mu.Unlock()
	return buf
}

// externShared returns the block's pre-sized external buffer. No
// synchronization is performed; callers coordinate access themselves.
func (s *blockState) externShared() []byte {
	return s.extern
}

// clear drops all per-block state after the block's threads have joined.
// Runs with no kernel goroutines alive.
func (s *blockState) clear() {
	clear(s.indices)
	clear(s.rounds)
	s.master = nil
	s.shared = nil
	s.extern = nil
	s.barriers[0].reset(0)
	s.barriers[1].reset(0)
}

// alignedBytes returns a zeroed byte buffer backed by a uint64 array, so
// any element type placed in it is at least 8-byte aligned and the backing
// memory is pointer-free as far as the garbage collector is concerned.
func alignedBytes(size int) []byte {
	if size <= 0 {
		return nil
	}
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
}
