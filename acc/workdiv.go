// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import "fmt"

// WorkDiv describes the shape of one launch: a grid of blocks and the
// thread arrangement inside each block. Both extents must be at least 1 in
// every dimension.
type WorkDiv struct {
	// GridBlocks is the number of blocks along each grid axis.
	GridBlocks Vec3

	// BlockThreads is the number of threads along each block axis.
	BlockThreads Vec3
}

// Validate reports whether the work division is usable. It rejects any
// zero or negative extent component; device capacity is checked separately
// by the launcher.
func (w WorkDiv) Validate() error {
	if w.GridBlocks.X < 1 || w.GridBlocks.Y < 1 || w.GridBlocks.Z < 1 {
		return fmt.Errorf("acc: grid extent %s has a dimension < 1", w.GridBlocks)
	}
	if w.BlockThreads.X < 1 || w.BlockThreads.Y < 1 || w.BlockThreads.Z < 1 {
		return fmt.Errorf("acc: block extent %s has a dimension < 1", w.BlockThreads)
	}
	return nil
}

// GridLinear returns the total number of blocks in the grid.
func (w WorkDiv) GridLinear() int {
	return w.GridBlocks.Linear()
}

// BlockLinear returns the number of threads in one block.
func (w WorkDiv) BlockLinear() int {
	return w.BlockThreads.Linear()
}

// WorkDiv1D builds a one-dimensional work division that covers at least n
// elements with the given block size: ceil(n/blockThreads) blocks of
// blockThreads threads each. Kernels must still bounds-check their global
// index since the last block may overhang n.
func WorkDiv1D(n, blockThreads int) WorkDiv {
	if blockThreads < 1 {
		blockThreads = 1
	}
	blocks := (n + blockThreads - 1) / blockThreads
	if blocks < 1 {
		blocks = 1
	}
	return WorkDiv{
		GridBlocks:   Vec3{X: blocks, Y: 1, Z: 1},
		BlockThreads: Vec3{X: blockThreads, Y: 1, Z: 1},
	}
}
