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
	"errors"
	"fmt"
	"strconv"
	"time"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidArgument indicates that the repetition-count argument could
	// not be parsed as a non-negative integer.
	ErrInvalidArgument = errors.New("invalid repetition count")

	// ErrNoResult indicates that a nil result was passed to a reporter.
	ErrNoResult = errors.New("no benchmark result")
)

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// Config holds benchmark configuration.
//
// Description:
//
//	Config controls the single tunable of a run: the outer repetition
//	count. Use DefaultConfig() to get the standard comparison default,
//	then override via RunOptions as needed.
//
// Thread Safety: Safe for concurrent read access after initialization.
type Config struct {
	// Reps is the number of outer-loop repetitions.
	// Default: 10,000,000. Zero is valid and runs no iterations.
	Reps uint64
}

// DefaultConfig returns a configuration with default values.
//
// Outputs:
//   - *Config: Configuration with Reps set to DefaultReps. Never nil.
func DefaultConfig() *Config {
	return &Config{
		Reps: DefaultReps,
	}
}

// -----------------------------------------------------------------------------
// Results
// -----------------------------------------------------------------------------

// Result holds the outcome of a single benchmark run.
//
// Description:
//
//	Result carries everything the fixed report needs plus identity fields
//	for log correlation. Factorial is the value produced by the final
//	inner-loop pass; it is zero when Reps is zero because the inner loop
//	never executed.
//
// Thread Safety: Safe for concurrent read access after creation.
type Result struct {
	// RunID uniquely identifies this run in logs and traces.
	RunID string

	// Reps is the repetition count the run was executed with.
	Reps uint64

	// Factorial is 18! as recomputed by the last inner-loop pass,
	// or 0 if no iteration ran.
	Factorial uint64

	// Checksum is the accumulated sum of (18! mod 997) over all
	// repetitions. Plain addition; never re-reduced.
	Checksum uint64

	// Elapsed is the wall-clock time of the repetition loop, measured
	// with the monotonic clock.
	Elapsed time.Duration

	// Timestamp is when the run completed (Unix milliseconds UTC).
	Timestamp int64
}

// -----------------------------------------------------------------------------
// Argument parsing
// -----------------------------------------------------------------------------

// ParseReps parses a repetition count from its decimal string form.
//
// Description:
//
//	Accepts any base-10 non-negative integer that fits in uint64,
//	including zero. Anything else (signs, fractions, hex, empty string,
//	overflow) fails with ErrInvalidArgument.
//
// Inputs:
//   - s: The raw argument string.
//
// Outputs:
//   - uint64: The parsed repetition count.
//   - error: Non-nil on parse failure. Wraps ErrInvalidArgument.
//
// Example:
//
//	reps, err := benchmark.ParseReps(os.Args[1])
//	if err != nil {
//	    return err // "parsing repetition count "abc": invalid repetition count"
//	}
func ParseReps(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing repetition count %q: %w", s, ErrInvalidArgument)
	}
	return n, nil
}
