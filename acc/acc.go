// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import "unsafe"

// Kernel is the body of a device kernel. The same function runs once per
// logical thread of every block in the grid; the handle identifies which
// thread the current invocation is.
type Kernel func(a *Acc)

// Acc is the device-side handle passed to every kernel invocation. It
// carries the invocation's thread identity and the state shared by its
// block. A handle is valid only for the duration of the kernel invocation
// it was created for; kernels must not store it or pass it to another
// goroutine.
type Acc struct {
	state *blockState
	unit  *unit
}

// ThreadIdx returns the calling thread's 3-D index within its block. The
// index is stable for the whole block execution.
func (a *Acc) ThreadIdx() Vec3 {
	return a.state.threadIdx(a.unit)
}

// BlockIdx returns the 3-D index of the executing block within the grid.
// All threads of a block observe the same value.
func (a *Acc) BlockIdx() Vec3 {
	return a.state.blockIdx
}

// BlockDim returns the thread extent of every block in the launch.
func (a *Acc) BlockDim() Vec3 {
	return a.state.div.BlockThreads
}

// GridDim returns the block extent of the grid.
func (a *Acc) GridDim() Vec3 {
	return a.state.div.GridBlocks
}

// GlobalIdx returns the thread's grid-wide 3-D index:
// BlockIdx*BlockDim + ThreadIdx per component.
func (a *Acc) GlobalIdx() Vec3 {
	b, t, d := a.BlockIdx(), a.ThreadIdx(), a.BlockDim()
	return Vec3{
		X: b.X*d.X + t.X,
		Y: b.Y*d.Y + t.Y,
		Z: b.Z*d.Z + t.Z,
	}
}

// GlobalLinear returns the thread's grid-wide linear index in row-major
// order (X fastest). The usual element index for 1-D data kernels.
func (a *Acc) GlobalLinear() int {
	d := a.BlockDim()
	global := Vec3{
		X: a.GridDim().X * d.X,
		Y: a.GridDim().Y * d.Y,
		Z: a.GridDim().Z * d.Z,
	}
	return a.GlobalIdx().linearIn(global)
}

// SyncBlockThreads blocks until every thread of the block has called it.
// This is the only synchronization point a kernel body may invoke
// directly. Calls must not diverge: either all threads of the block reach
// a given call or none do.
func (a *Acc) SyncBlockThreads() {
	a.state.sync(a.unit)
}

// AllocShared allocates a zero-initialized block-shared buffer of count
// elements of type T and returns it to every thread of the block. All
// threads must call it together with the same count (SPMD discipline);
// only the block's master thread actually allocates, and two implicit
// SyncBlockThreads rounds bracket the allocation so every thread observes
// the buffer before any thread uses it.
//
// The returned slice is valid until the block ends; kernels must not
// retain it across block boundaries. A count < 1 panics: zero-sized
// shared allocations are a kernel defect.
func AllocShared[T Elem](a *Acc, count int) []T {
	if count < 1 {
		panic("acc: AllocShared requires a count of at least 1")
	}
	var zero T
	buf := a.state.allocShared(a.unit, count*int(unsafe.Sizeof(zero)))
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), count)
}

// ExternShared returns the block's external shared buffer as elements of
// type T. The buffer is sized once per block by the launcher's
// WithExternMem option and shared read/write by all threads with no
// implicit synchronization; kernels coordinate with SyncBlockThreads
// themselves. Returns nil when the launch configured no external memory.
func ExternShared[T Elem](a *Acc) []T {
	buf := a.state.externShared()
	if len(buf) == 0 {
		return nil
	}
	var zero T
	n := len(buf) / int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n)
}
