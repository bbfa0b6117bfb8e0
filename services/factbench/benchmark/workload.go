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

// Workload constants. These are part of the comparison contract with the
// JIT-compiled harness and must not change independently of it.
const (
	// FactorialArg is the fixed operand of the inner computation.
	FactorialArg = 18

	// ChecksumModulus bounds the per-iteration checksum contribution.
	// Prime, so the contribution stays sensitive to the exact factorial
	// value rather than collapsing on shared factors.
	ChecksumModulus uint64 = 997

	// Factorial18 is the true value of 18!. The inner loop must reproduce
	// it on every iteration; uint64 holds it without overflow.
	Factorial18 uint64 = 2432902008176640000

	// DefaultReps is the repetition count used when none is supplied.
	DefaultReps uint64 = 10_000_000
)

// computeFactorial recomputes FactorialArg! from scratch with a counting
// loop from 2 through FactorialArg over an accumulator initialized to 1.
// The redundant recomputation per outer iteration is the whole point of the
// workload: both harnesses pay the identical per-iteration cost.
func computeFactorial() uint64 {
	fact := uint64(1)
	for i := uint64(2); i <= FactorialArg; i++ {
		fact *= i
	}
	return fact
}
