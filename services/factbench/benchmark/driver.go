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
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "factbench.benchmark"

// -----------------------------------------------------------------------------
// Run Options
// -----------------------------------------------------------------------------

// RunOption configures a benchmark run.
//
// Description:
//
//	RunOption functions modify the benchmark Config. They are applied
//	in order, so later options override earlier ones.
type RunOption func(*Config)

// WithReps sets the outer repetition count.
//
// Description:
//
//	Configures how many times the inner factorial computation is repeated.
//	Zero is accepted and produces an empty run (checksum 0, factorial 0).
//
// Inputs:
//   - n: Number of repetitions.
//
// Example:
//
//	driver.Run(ctx, benchmark.WithReps(500_000_000))
func WithReps(n uint64) RunOption {
	return func(c *Config) {
		c.Reps = n
	}
}

// -----------------------------------------------------------------------------
// Driver
// -----------------------------------------------------------------------------

// Driver executes the repetition loop and produces timed results.
//
// Description:
//
//	Driver owns the entire workload: it repeats the inner factorial
//	computation, accumulates the mod-997 checksum, and measures the
//	wall-clock time of the loop with the monotonic clock. One Driver can
//	serve any number of runs.
//
// Thread Safety: Safe for concurrent use.
type Driver struct {
	logger *slog.Logger
}

// NewDriver creates a new benchmark driver.
//
// Description:
//
//	Creates a driver using slog.Default() for logging; use SetLogger to
//	override.
//
// Outputs:
//   - *Driver: The new driver. Never nil.
func NewDriver() *Driver {
	return &Driver{
		logger: slog.Default(),
	}
}

// SetLogger sets the logger for the driver.
//
// Description:
//
//	Replaces the driver's logger. Nil values are ignored.
//
// Inputs:
//   - logger: The logger to use. If nil, the current logger is retained.
func (d *Driver) SetLogger(logger *slog.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

// Run executes a single timed benchmark run.
//
// Description:
//
//	Performs exactly Config.Reps outer iterations. Each iteration
//	recomputes 18! from scratch with the inner counting loop and adds
//	(18! mod 997) to the running checksum. Elapsed time covers the
//	repetition loop and nothing else: tracing, logging, and result
//	construction happen outside the timed region.
//
// Inputs:
//   - ctx: Context for trace propagation. Must not be nil. The run is a
//     pure in-memory computation with no suspension points, so the context
//     is not consulted for cancellation once the loop starts.
//   - opts: Optional configuration options.
//
// Outputs:
//   - *Result: The run result. Never nil on success.
//   - error: Non-nil only for a nil context; there is no transient
//     failure mode in a pure in-memory computation.
//
// Thread Safety: Safe for concurrent use.
//
// Example:
//
//	result, err := driver.Run(ctx, benchmark.WithReps(1))
//	if err != nil {
//	    return fmt.Errorf("running benchmark: %w", err)
//	}
//	fmt.Printf("checksum=%d elapsed=%v\n", result.Checksum, result.Elapsed)
func (d *Driver) Run(ctx context.Context, opts ...RunOption) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("context must not be nil")
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	tracer := otel.Tracer(tracerName)
	_, span := tracer.Start(ctx, "benchmark.Driver.Run",
		trace.WithAttributes(
			attribute.Int64("benchmark.reps", int64(config.Reps)),
		),
	)
	defer span.End()

	// fact survives the loop so the report can state what the final
	// inner pass actually computed; it stays 0 for an empty run.
	var fact, total uint64

	start := time.Now()
	for outer := uint64(0); outer < config.Reps; outer++ {
		fact = computeFactorial()
		total += fact % ChecksumModulus
	}
	elapsed := time.Since(start)

	result := d.buildResult(config, fact, total, elapsed)

	span.SetAttributes(
		attribute.String("benchmark.run_id", result.RunID),
		attribute.Int64("benchmark.checksum", int64(result.Checksum)),
		attribute.Float64("benchmark.elapsed_ms", float64(result.Elapsed)/float64(time.Millisecond)),
	)
	span.SetStatus(codes.Ok, "benchmark completed")

	d.logger.Debug("benchmark run completed",
		slog.String("run_id", result.RunID),
		slog.Uint64("reps", result.Reps),
		slog.Uint64("checksum", result.Checksum),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

// buildResult constructs the Result from collected data.
func (d *Driver) buildResult(config *Config, fact, total uint64, elapsed time.Duration) *Result {
	return &Result{
		RunID:     uuid.NewString(),
		Reps:      config.Reps,
		Factorial: fact,
		Checksum:  total,
		Elapsed:   elapsed,
		Timestamp: time.Now().UnixMilli(),
	}
}
