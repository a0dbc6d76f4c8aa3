// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

// Package acc executes GPU-style kernels on the CPU.
//
// A kernel is an ordinary Go function written once against an abstract
// index/synchronization/shared-memory interface (the *Acc handle). A launch
// runs the kernel over a grid of blocks, each block holding a fixed 3-D
// arrangement of logical threads. Within a block, threads are backed by
// goroutines that may synchronize through a barrier and exchange data
// through block-shared memory; blocks themselves are independent and are
// executed one at a time per engine.
//
// The execution model mirrors the CUDA contract: thread blocks must be
// executable in any order, including fully serially, so a single-CPU engine
// that runs them back to back is a correct device. The point is correctness
// rather than throughput: kernels debugged here behave identically on
// hardware with thousands of physical lanes.
//
// Basic usage:
//
//	div := acc.WorkDiv{
//		GridBlocks:   acc.Vec3{X: 16, Y: 1, Z: 1},
//		BlockThreads: acc.Vec3{X: 64, Y: 1, Z: 1},
//	}
//	err := acc.Launch(div, func(a *acc.Acc) {
//		i := a.GlobalLinear()
//		if i < len(dst) {
//			dst[i] = src[i] * 2
//		}
//	})
//
// Kernels follow SPMD discipline: every thread of a block runs the same
// body, and control flow must not diverge around SyncBlockThreads or
// AllocShared. A kernel that lets only a subset of a block reach a
// synchronization point deadlocks that block; this is a programming error
// in the kernel, not a runtime condition the engine detects or recovers
// from.
package acc
