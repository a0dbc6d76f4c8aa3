// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

// Device atomics. Every operation applies a read-modify-write to *addr and
// returns the value *addr held before the operation, the usual device
// convention.
//
// Threads of a block run on real OS threads and may also run concurrently
// with threads of other blocks when the launcher uses multiple workers, so
// unlike a purely cooperative scheduler the read-modify-write cannot rely
// on non-preemption. All atomics of a launch serialize on one launch-wide
// mutex instead; within the ordering guarantees of a launch that is
// indistinguishable from hardware atomics.

// AtomicAdd adds v to *addr and returns the previous value.
func AtomicAdd[T Elem](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	*addr = old + v
	a.state.atomicMu.Unlock()
	return old
}

// AtomicSub subtracts v from *addr and returns the previous value.
func AtomicSub[T Elem](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	*addr = old - v
	a.state.atomicMu.Unlock()
	return old
}

// AtomicExch stores v into *addr and returns the previous value.
func AtomicExch[T Elem](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	*addr = v
	a.state.atomicMu.Unlock()
	return old
}

// AtomicCas stores v into *addr only if *addr equals compare, and returns
// the previous value either way.
func AtomicCas[T Elem](a *Acc, addr *T, compare, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	if old == compare {
		*addr = v
	}
	a.state.atomicMu.Unlock()
	return old
}

// AtomicMin stores min(*addr, v) into *addr and returns the previous value.
func AtomicMin[T Elem](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	if v < old {
		*addr = v
	}
	a.state.atomicMu.Unlock()
	return old
}

// AtomicMax stores max(*addr, v) into *addr and returns the previous value.
func AtomicMax[T Elem](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	if v > old {
		*addr = v
	}
	a.state.atomicMu.Unlock()
	return old
}

// AtomicAnd stores *addr & v into *addr and returns the previous value.
func AtomicAnd[T Integers](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	*addr = old & v
	a.state.atomicMu.Unlock()
	return old
}

// AtomicOr stores *addr | v into *addr and returns the previous value.
func AtomicOr[T Integers](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	*addr = old | v
	a.state.atomicMu.Unlock()
	return old
}

// AtomicXor stores *addr ^ v into *addr and returns the previous value.
func AtomicXor[T Integers](a *Acc, addr *T, v T) T {
	a.state.atomicMu.Lock()
	old := *addr
	*addr = old ^ v
	a.state.atomicMu.Unlock()
	return old
}
