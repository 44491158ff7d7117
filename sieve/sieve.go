package sieve

import (
	"fmt"

	"github.com/katalvlaran/primefun/guard"
)

const (
	// Method names prefix wrapped validation errors.
	MethodTable   = "Table"
	MethodPrimes  = "Primes"
	MethodIsPrime = "IsPrime"
)

// Table returns the primality flags for 0..bound.
//
// Algorithm:
//  1. Validate bound (guard.CheckBound); fail before allocating.
//  2. Allocate bound+1 flags, all true except indices 0 and 1.
//  3. For i = 2..⌊√bound⌋ with flags[i] still true,
//     mark i·i, i·i+i, … ≤ bound as composite.
//
// Errors: guard.ErrNegative, guard.ErrOverflow (wrapped).
//
// Complexity: O(n·log log n) time, O(n) memory.
func Table(bound int) ([]bool, error) {
	if err := guard.CheckBound(bound); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodTable, err)
	}

	return table(bound), nil
}

// Primes returns the ascending primes ≤ bound.
// An empty (non-nil) slice is returned for bound < 2.
//
// Complexity: O(n·log log n) time, O(n) memory.
func Primes(bound int) ([]int, error) {
	if err := guard.CheckBound(bound); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodPrimes, err)
	}

	return Compact(table(bound)), nil
}

// Compact collects the indices ≥ 2 whose flag is true, in ascending order.
// Indices 0 and 1 are skipped regardless of their flag.
//
// Complexity: O(len(flags)).
func Compact(flags []bool) []int {
	primes := make([]int, 0)
	for k := 2; k < len(flags); k++ {
		if flags[k] {
			primes = append(primes, k)
		}
	}

	return primes
}

// table is the unchecked sieve; bound must already be valid.
func table(bound int) []bool {
	flags := make([]bool, bound+1)
	for k := 2; k <= bound; k++ {
		flags[k] = true
	}

	// i ≤ bound/i is i·i ≤ bound without the overflow risk near MaxBound.
	for i := 2; i <= bound/i; i++ {
		if !flags[i] {
			continue
		}
		// j > bound-i is j+i > bound, tested before the add can overflow.
		for j := i * i; ; j += i {
			flags[j] = false
			if j > bound-i {
				break
			}
		}
	}

	return flags
}
