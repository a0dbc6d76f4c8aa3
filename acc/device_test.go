// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import "testing"

func TestMaxThreadsPerBlock(t *testing.T) {
	if MaxThreadsPerBlock() != 1024 {
		t.Errorf("MaxThreadsPerBlock() = %d, want 1024", MaxThreadsPerBlock())
	}
}

func TestCPUDevice(t *testing.T) {
	d := CPUDevice()
	if d.Name == "" {
		t.Error("Name is empty")
	}
	if d.MaxThreadsPerBlock != MaxThreadsPerBlock() {
		t.Errorf("MaxThreadsPerBlock = %d, want %d", d.MaxThreadsPerBlock, MaxThreadsPerBlock())
	}
	if d.LogicalCPUs < 1 {
		t.Errorf("LogicalCPUs = %d, want >= 1", d.LogicalCPUs)
	}
}

func TestDimsVisibleToKernel(t *testing.T) {
	div := WorkDiv{
		GridBlocks:   Vec3{X: 2, Y: 1, Z: 3},
		BlockThreads: Vec3{X: 4, Y: 2, Z: 1},
	}
	err := Launch(div, func(a *Acc) {
		if a.GridDim() != div.GridBlocks {
			t.Errorf("GridDim = %s, want %s", a.GridDim(), div.GridBlocks)
		}
		if a.BlockDim() != div.BlockThreads {
			t.Errorf("BlockDim = %s, want %s", a.BlockDim(), div.BlockThreads)
		}
	})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
}
