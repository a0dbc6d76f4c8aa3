// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import (
	"fmt"
	"runtime"
)

// maxThreadsPerBlockLinear is the capacity limit of this backend: the
// largest number of logical threads one block may hold. 1024 matches the
// per-block limit of the hardware accelerators this engine emulates, so a
// work division accepted here is accepted there too.
const maxThreadsPerBlockLinear = 1024

// MaxThreadsPerBlock returns the largest linear thread count per block the
// backend accepts. Launch configuration exceeding it is rejected before
// any block executes.
func MaxThreadsPerBlock() int {
	return maxThreadsPerBlockLinear
}

// Device describes the CPU backend as an accelerator device.
type Device struct {
	// Name identifies the backend, e.g. "cpu-goroutines (amd64)".
	Name string

	// MaxThreadsPerBlock is the per-block thread capacity.
	MaxThreadsPerBlock int

	// LogicalCPUs is the number of OS-schedulable CPUs available.
	LogicalCPUs int

	// Features lists CPU capabilities relevant to kernel performance,
	// detected at startup. Informational only; the engine's semantics do
	// not depend on any of them.
	Features []string
}

// CPUDevice returns the properties of the CPU backend.
func CPUDevice() Device {
	return Device{
		Name:               fmt.Sprintf("cpu-goroutines (%s)", runtime.GOARCH),
		MaxThreadsPerBlock: maxThreadsPerBlockLinear,
		LogicalCPUs:        runtime.NumCPU(),
		Features:           cpuFeatures(),
	}
}
