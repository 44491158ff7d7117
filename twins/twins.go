// Package twins finds twin primes: consecutive primes p, p+2.
//
// Scan walks an ascending Prime List once, keeping the previous prime and
// emitting (previous, p) whenever the gap is exactly 2. The previous prime
// is seeded with 2, so the first comparison against the list's own leading
// 2 is a no-op.
//
// Complexity: O(π(n)) for Scan, O(n·log log n) for Find (dominated by the sieve).
package twins

import (
	"fmt"

	"github.com/katalvlaran/primefun/sieve"
)

// MethodFind prefixes wrapped validation errors.
const MethodFind = "twins.Find"

// twinGap is the defining difference between the two members.
const twinGap = 2

// seedPrevious is the "previous prime" before the first list entry.
const seedPrevious = 2

// Pair is a twin prime pair; Pair[1]-Pair[0] == 2.
type Pair [2]int

// Scan returns the twin pairs in an ascending Prime List, ordered by first member.
// The input is read-only.
func Scan(primes []int) []Pair {
	pairs := make([]Pair, 0)
	previous := seedPrevious
	for _, p := range primes {
		if p-previous == twinGap {
			pairs = append(pairs, Pair{previous, p})
		}
		previous = p
	}

	return pairs
}

// Find returns every twin pair whose larger member is ≤ bound.
//
// Errors: guard.ErrNegative, guard.ErrOverflow (wrapped).
func Find(bound int) ([]Pair, error) {
	primes, err := sieve.Primes(bound)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodFind, err)
	}

	return Scan(primes), nil
}
