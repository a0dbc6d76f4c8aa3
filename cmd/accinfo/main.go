// Copyright 2026 The go-alpaka Authors. SPDX-License-Identifier: Apache-2.0

// Command accinfo prints the properties of the CPU accelerator backend and
// can time a sample reduction launch.
//
// Usage:
//
//	accinfo                        # print device properties
//	accinfo -sum 1000000           # additionally time a Sum over n float32 values
//	accinfo -sum 1000000 -workers 4
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-alpaka/alpaka/acc"
	"github.com/go-alpaka/alpaka/acc/contrib/algo"
)

var (
	sumN    = flag.Int("sum", 0, "run a sample Sum reduction over this many float32 elements")
	workers = flag.Int("workers", defaultWorkers(), "number of concurrent block workers for the sample launch (0 = all CPUs)")
)

// defaultWorkers reads the ALPAKA_WORKERS environment variable, so scripts
// can set the worker count without touching flags. The -workers flag still
// wins when given.
func defaultWorkers() int {
	if s := os.Getenv("ALPAKA_WORKERS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return 1
}

func main() {
	flag.Parse()

	d := acc.CPUDevice()
	fmt.Printf("Device:               %s\n", d.Name)
	fmt.Printf("Max threads / block:  %d\n", d.MaxThreadsPerBlock)
	fmt.Printf("Logical CPUs:         %d\n", d.LogicalCPUs)
	features := "none detected"
	if len(d.Features) > 0 {
		features = strings.Join(d.Features, ", ")
	}
	fmt.Printf("CPU features:         %s\n", features)

	if *sumN <= 0 {
		return
	}

	src := make([]float32, *sumN)
	for i := range src {
		src[i] = 1
	}

	start := time.Now()
	got, err := algo.Sum(src, acc.WithWorkers(*workers))
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "accinfo: sum launch failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSum of %d ones:       %.0f (workers=%d, %v)\n", *sumN, got, *workers, elapsed)
}
