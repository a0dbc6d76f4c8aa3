// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

// Package algo provides slice algorithms written as device kernels.
//
// Each function builds a 1-D work division over its input and launches a
// kernel through the acc engine, so these double as reference kernels for
// the device API: Fill and Transform use global indexing, Sum uses
// block-shared memory, block synchronization and atomics together.
//
// The launch options variadic on every function forwards to acc.Launch,
// so callers can e.g. run blocks on multiple workers with
// acc.WithWorkers(n).
package algo
