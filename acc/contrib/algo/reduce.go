// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package algo

import (
	"errors"

	"github.com/go-alpaka/alpaka/acc"
)

// ErrEmpty is returned by Min and Max over empty input. Sum of an empty
// slice is zero, not an error.
var ErrEmpty = errors.New("algo: reduction over empty slice")

// Sum returns the sum of src, computed as the classic two-stage device
// reduction: each block loads its elements into shared memory, folds them
// with a synchronized halving tree, and the block's master thread combines
// the partial sum into the result with an atomic add.
func Sum[T acc.Elem](src []T, opts ...acc.Option) (T, error) {
	var total T
	n := len(src)
	if n == 0 {
		return total, nil
	}

	err := acc.Launch(acc.WorkDiv1D(n, defaultBlockThreads), func(a *acc.Acc) {
		partial := acc.AllocShared[T](a, defaultBlockThreads)

		t := a.ThreadIdx().X
		if g := a.GlobalLinear(); g < n {
			partial[t] = src[g]
		}
		a.SyncBlockThreads()

		for stride := defaultBlockThreads / 2; stride > 0; stride /= 2 {
			if t < stride {
				partial[t] += partial[t+stride]
			}
			a.SyncBlockThreads()
		}

		if t == 0 {
			acc.AtomicAdd(a, &total, partial[0])
		}
	}, opts...)
	return total, err
}

// Min returns the smallest element of src. Errors on empty input.
func Min[T acc.Elem](src []T, opts ...acc.Option) (T, error) {
	return extremum(src, acc.AtomicMin[T], opts...)
}

// Max returns the largest element of src. Errors on empty input.
func Max[T acc.Elem](src []T, opts ...acc.Option) (T, error) {
	return extremum(src, acc.AtomicMax[T], opts...)
}

func extremum[T acc.Elem](src []T, combine func(*acc.Acc, *T, T) T, opts ...acc.Option) (T, error) {
	var zero T
	n := len(src)
	if n == 0 {
		return zero, ErrEmpty
	}

	best := src[0]
	err := acc.Launch(acc.WorkDiv1D(n, defaultBlockThreads), func(a *acc.Acc) {
		if g := a.GlobalLinear(); g < n {
			combine(a, &best, src[g])
		}
	}, opts...)
	if err != nil {
		return zero, err
	}
	return best, nil
}
