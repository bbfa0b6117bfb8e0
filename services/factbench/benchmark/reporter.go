// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package benchmark

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ConsoleReporter writes benchmark results in the fixed comparison format.
//
// Description:
//
//	The report is exactly four lines with fixed prefixes and spacing so
//	that the output of this harness and of the JIT-compiled counterpart
//	can be diffed directly. Do not reorder, restyle, or colorize.
//
// Thread Safety: Safe for concurrent use if the underlying writer is.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a reporter writing to w.
//
// Inputs:
//   - w: Destination writer. If nil, os.Stdout is used.
//
// Outputs:
//   - *ConsoleReporter: The new reporter. Never nil.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleReporter{w: w}
}

// Report writes the four-line report for a completed run.
//
// Description:
//
//	Emits, in order: the repetition count, the 18! value produced by the
//	final inner pass (0 for an empty run), the accumulated checksum, and
//	the elapsed wall-clock time in milliseconds with three decimal
//	places.
//
// Inputs:
//   - result: The run result. Must not be nil.
//
// Outputs:
//   - error: ErrNoResult for a nil result; otherwise any write error,
//     wrapped.
//
// Example output:
//
//	Repetitions: 10000000
//	18! = 2432902008176640000
//	Checksum:    7650000000
//	Elapsed:     1234.567 ms
func (r *ConsoleReporter) Report(result *Result) error {
	if result == nil {
		return ErrNoResult
	}

	elapsedMS := float64(result.Elapsed) / float64(time.Millisecond)
	_, err := fmt.Fprintf(r.w,
		"Repetitions: %d\n18! = %d\nChecksum:    %d\nElapsed:     %.3f ms\n",
		result.Reps, result.Factorial, result.Checksum, elapsedMS)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
