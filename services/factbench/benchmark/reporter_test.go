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
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestNewConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter(&buf)

	if reporter == nil {
		t.Fatal("NewConsoleReporter returned nil")
	}
	if reporter.w != &buf {
		t.Error("Reporter output not set correctly")
	}
}

func TestNewConsoleReporter_NilWriter(t *testing.T) {
	reporter := NewConsoleReporter(nil)
	if reporter.w == nil {
		t.Error("Reporter writer is nil, want os.Stdout fallback")
	}
}

func TestConsoleReporter_Report(t *testing.T) {
	t.Run("exact format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf)

		result := &Result{
			Reps:      1,
			Factorial: Factorial18,
			Checksum:  765,
			Elapsed:   1234567 * time.Nanosecond,
		}
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		want := "Repetitions: 1\n" +
			"18! = 2432902008176640000\n" +
			"Checksum:    765\n" +
			"Elapsed:     1.235 ms\n"
		if got := buf.String(); got != want {
			t.Errorf("Report output:\n%q\nwant:\n%q", got, want)
		}
	})

	t.Run("four lines", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf)

		result := &Result{
			Reps:      10_000_000,
			Factorial: Factorial18,
			Checksum:  7_650_000_000,
			Elapsed:   1500 * time.Millisecond,
		}
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("Report wrote %d lines, want 4: %q", len(lines), lines)
		}
		if lines[0] != "Repetitions: 10000000" {
			t.Errorf("line 1 = %q", lines[0])
		}
		if lines[1] != "18! = 2432902008176640000" {
			t.Errorf("line 2 = %q", lines[1])
		}
		if lines[2] != "Checksum:    7650000000" {
			t.Errorf("line 3 = %q", lines[2])
		}
		if lines[3] != "Elapsed:     1500.000 ms" {
			t.Errorf("line 4 = %q", lines[3])
		}
	})

	t.Run("zero reps", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf)

		result := &Result{Reps: 0, Factorial: 0, Checksum: 0, Elapsed: 0}
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		want := "Repetitions: 0\n" +
			"18! = 0\n" +
			"Checksum:    0\n" +
			"Elapsed:     0.000 ms\n"
		if got := buf.String(); got != want {
			t.Errorf("Report output:\n%q\nwant:\n%q", got, want)
		}
	})

	t.Run("sub-millisecond precision", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf)

		result := &Result{Reps: 1, Factorial: Factorial18, Checksum: 765, Elapsed: 42 * time.Microsecond}
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report failed: %v", err)
		}

		re := regexp.MustCompile(`(?m)^Elapsed:     0\.042 ms$`)
		if !re.MatchString(buf.String()) {
			t.Errorf("Report output missing fractional elapsed line:\n%s", buf.String())
		}
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewConsoleReporter(&buf)

		err := reporter.Report(nil)
		if !errors.Is(err, ErrNoResult) {
			t.Errorf("Report(nil) error = %v, want ErrNoResult", err)
		}
		if buf.Len() != 0 {
			t.Errorf("Report(nil) wrote output: %q", buf.String())
		}
	})
}

func TestConsoleReporter_Report_WriteError(t *testing.T) {
	reporter := NewConsoleReporter(failingWriter{})

	err := reporter.Report(&Result{Reps: 1, Factorial: Factorial18, Checksum: 765})
	if err == nil {
		t.Fatal("Report succeeded with failing writer, want error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
