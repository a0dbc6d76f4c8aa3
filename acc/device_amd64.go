// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package acc

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	var fs []string
	if cpu.X86.HasSSE2 {
		fs = append(fs, "sse2")
	}
	if cpu.X86.HasAVX {
		fs = append(fs, "avx")
	}
	if cpu.X86.HasAVX2 {
		fs = append(fs, "avx2")
	}
	if cpu.X86.HasFMA {
		fs = append(fs, "fma")
	}
	if cpu.X86.HasAVX512 {
		fs = append(fs, "avx512")
	}
	return fs
}
