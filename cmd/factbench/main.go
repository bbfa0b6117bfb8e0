// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command factbench runs the interpreted-baseline side of the JIT
// wall-clock comparison: the iterative 18! workload repeated reps times
// with a mod-997 checksum, timed around the repetition loop.
//
// Usage:
//
//	go run ./cmd/factbench              # default 10M reps
//	go run ./cmd/factbench 500000000    # 500M reps (slow!)
//
// The four report lines on stdout are byte-comparable with the output of
// the JIT-compiled counterpart running the identical algorithm:
//
//	Repetitions: 10000000
//	18! = 2432902008176640000
//	Checksum:    7650000000
//	Elapsed:     1234.567 ms
//
// Diagnostics go to stderr; an unparsable repetition count exits non-zero
// before any timed work begins.
package main

import (
	"log/slog"
	"os"

	"github.com/AleutianAI/factbench/services/factbench/benchmark"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factbench [reps]",
		Short: "Wall-clock baseline for the iterative 18! workload",
		Long: `factbench times the iterative 18! workload repeated [reps] times
(default 10,000,000) and prints the fixed four-line comparison report.
The checksum line accumulates (18! mod 997) per repetition so the inner
computation stays observable on both sides of the comparison.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	reps := benchmark.DefaultReps
	if len(args) == 1 {
		n, err := benchmark.ParseReps(args[0])
		if err != nil {
			return err
		}
		reps = n
	}

	driver := benchmark.NewDriver()
	result, err := driver.Run(cmd.Context(), benchmark.WithReps(reps))
	if err != nil {
		return err
	}

	reporter := benchmark.NewConsoleReporter(cmd.OutOrStdout())
	return reporter.Report(result)
}

func main() {
	// Keep stdout clean for the report; all logging goes to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
