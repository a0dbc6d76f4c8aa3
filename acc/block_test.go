// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import (
	"sync"
	"testing"
)

func testDiv(threads int) WorkDiv {
	return WorkDiv{
		GridBlocks:   Vec3{X: 1, Y: 1, Z: 1},
		BlockThreads: Vec3{X: threads, Y: 1, Z: 1},
	}
}

func TestRegisterDesignatesMaster(t *testing.T) {
	var mu sync.Mutex
	s := newBlockState(testDiv(2), &mu)

	u0 := &unit{idx: Vec3{}}
	u1 := &unit{idx: Vec3{X: 1}}
	s.register(u1)
	if s.master != nil {
		t.Fatal("master designated before thread (0,0,0) registered")
	}
	s.register(u0)
	if s.master != u0 {
		t.Fatal("thread (0,0,0) was not designated master")
	}

	if got := s.threadIdx(u1); got != (Vec3{X: 1}) {
		t.Errorf("threadIdx(u1) = %s, want (1,0,0)", got)
	}
}

func TestThreadIdxUnregisteredPanics(t *testing.T) {
	var mu sync.Mutex
	s := newBlockState(testDiv(1), &mu)

	defer func() {
		if recover() == nil {
			t.Error("threadIdx of an unregistered unit did not panic")
		}
	}()
	s.threadIdx(&unit{})
}

func TestSyncUnregisteredPanics(t *testing.T) {
	var mu sync.Mutex
	s := newBlockState(testDiv(1), &mu)

	defer func() {
		if recover() == nil {
			t.Error("sync of an unregistered unit did not panic")
		}
	}()
	s.sync(&unit{})
}

// TestAllocSharedBroadcast verifies the single-allocator protocol: all
// threads of the block receive the same zeroed buffer.
func TestAllocSharedBroadcast(t *testing.T) {
	const n = 4
	var mu sync.Mutex
	s := newBlockState(testDiv(n), &mu)
	s.beginBlock(Vec3{}, 0)

	bufs := make([][]byte, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &unit{idx: Vec3{X: i}}
			s.register(u)
			s.sync(u)
			bufs[i] = s.allocShared(u, 32)
			s.sync(u)
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if &bufs[i][0] != &bufs[0][0] {
			t.Fatalf("thread %d received a different buffer than thread 0", i)
		}
	}
	if len(bufs[0]) != 32 {
		t.Errorf("buffer length = %d, want 32", len(bufs[0]))
	}
	for i, b := range bufs[0] {
		if b != 0 {
			t.Fatalf("buffer byte %d = %d, want 0", i, b)
		}
	}
}

func TestClearDropsBlockState(t *testing.T) {
	var mu sync.Mutex
	s := newBlockState(testDiv(1), &mu)
	s.beginBlock(Vec3{X: 1}, 64)

	u := &unit{}
	s.register(u)
	s.sync(u)
	s.allocShared(u, 8)
	s.sync(u)

	s.clear()
	if len(s.indices) != 0 || len(s.rounds) != 0 {
		t.Error("identity maps survived clear")
	}
	if s.master != nil {
		t.Error("master designation survived clear")
	}
	if s.shared != nil {
		t.Error("shared arena survived clear")
	}
	if s.extern != nil {
		t.Error("external buffer survived clear")
	}
}

func TestAlignedBytes(t *testing.T) {
	for _, size := range []int{1, 7, 8, 9, 64, 1000} {
		buf := alignedBytes(size)
		if len(buf) != size {
			t.Fatalf("alignedBytes(%d) length = %d", size, len(buf))
		}
	}
	if alignedBytes(0) != nil {
		t.Error("alignedBytes(0) != nil")
	}
}
