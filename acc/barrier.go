// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package acc

import "sync"

// barrier is a counting barrier that can be reused round after round by a
// fixed cohort of threads without reconstruction.
//
// A barrier starts drained (pending == 0). One thread arms it with reset
// before the cohort arrives; every arrival then consumes one slot in wait,
// and the final arrival releases all waiters. Once released the barrier is
// drained again and may be re-armed for a later round.
//
// Callers never use a single instance for two rounds in flight at once:
// the block engine keeps a pair of barriers selected by round mod 2, so a
// thread arriving at round k+1 cannot interfere with stragglers still
// leaving round k's instance.
type barrier struct {
	mu      sync.Mutex
	cond    sync.Cond
	pending int
}

func newBarrier() *barrier {
	b := &barrier{}
	b.cond.L = &b.mu
	return b
}

// reset arms the barrier for its next round. Exactly one thread per round
// may call reset, and only while the barrier is drained: no thread may be
// suspended in wait with a stale expectation.
func (b *barrier) reset(expected int) {
	b.mu.Lock()
	b.pending = expected
	b.mu.Unlock()
}

// wait consumes one arrival slot. The final arrival releases all waiters;
// every other caller blocks until that release.
func (b *barrier) wait() {
	b.mu.Lock()
	b.pending--
	if b.pending == 0 {
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for b.pending > 0 {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// pendingCount returns the number of arrivals still outstanding. The value
// may be stale by the time the caller sees it; it is for diagnostics only,
// except under the block engine's serialized check-then-reset where the
// engine lock makes the read authoritative.
func (b *barrier) pendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}
