// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package acc

func cpuFeatures() []string {
	return nil
}
