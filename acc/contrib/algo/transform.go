// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

package algo

import "github.com/go-alpaka/alpaka/acc"

// defaultBlockThreads is the block size used by the 1-D launches in this
// package. Power of two so Sum's halving loop stays exact.
const defaultBlockThreads = 64

// Fill sets every element of dst to v.
func Fill[T acc.Elem](dst []T, v T, opts ...acc.Option) error {
	n := len(dst)
	return acc.Launch(acc.WorkDiv1D(n, defaultBlockThreads), func(a *acc.Acc) {
		if i := a.GlobalLinear(); i < n {
			dst[i] = v
		}
	}, opts...)
}

// Transform applies op elementwise: dst[i] = op(src[i]) for
// i < min(len(dst), len(src)).
func Transform[T acc.Elem](dst, src []T, op func(T) T, opts ...acc.Option) error {
	n := min(len(dst), len(src))
	return acc.Launch(acc.WorkDiv1D(n, defaultBlockThreads), func(a *acc.Acc) {
		if i := a.GlobalLinear(); i < n {
			dst[i] = op(src[i])
		}
	}, opts...)
}

// Iota writes 0, 1, 2, ... into dst.
func Iota[T acc.Elem](dst []T, opts ...acc.Option) error {
	n := len(dst)
	return acc.Launch(acc.WorkDiv1D(n, defaultBlockThreads), func(a *acc.Acc) {
		if i := a.GlobalLinear(); i < n {
			dst[i] = T(i)
		}
	}, opts...)
}
