// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package acc

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	// ASIMD is mandatory on ARMv8; the others depend on the core.
	var fs []string
	if cpu.ARM64.HasASIMD {
		fs = append(fs, "asimd")
	}
	if cpu.ARM64.HasFP {
		fs = append(fs, "fp")
	}
	if cpu.ARM64.HasATOMICS {
		fs = append(fs, "atomics")
	}
	if cpu.ARM64.HasSVE {
		fs = append(fs, "sve")
	}
	return fs
}
