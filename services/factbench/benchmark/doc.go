// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package benchmark implements the interpreted-baseline side of the JIT
// wall-clock comparison harness.
//
// # Overview
//
// The package times a deterministic, optimization-resistant workload: an
// iterative computation of 18! repeated a configurable number of times, with
// a mod-997 checksum accumulated across repetitions. The checksum is the
// loop's only externally visible effect besides timing, which keeps the
// inner computation observable and prevents a compiler from discarding it.
// The companion JIT-compiled harness runs the identical algorithm and emits
// the identical report, so the two outputs can be diffed line by line.
//
// # Usage
//
//	driver := benchmark.NewDriver()
//	result, err := driver.Run(ctx, benchmark.WithReps(10_000_000))
//	if err != nil {
//	    return fmt.Errorf("running benchmark: %w", err)
//	}
//	reporter := benchmark.NewConsoleReporter(os.Stdout)
//	if err := reporter.Report(result); err != nil {
//	    return fmt.Errorf("reporting result: %w", err)
//	}
//
// # Timing
//
// Elapsed time is measured with the Go runtime's monotonic clock
// (time.Now/time.Since) strictly around the repetition loop. Parsing,
// logging, tracing, and report printing all sit outside the timed region.
// There is deliberately no warmup, no repeated trials, and no variance
// reporting: the comparison methodology is a single timed run on each side.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use unless documented
// otherwise. A single Run is fully synchronous and single-threaded.
package benchmark
