package ktuple

import (
	"fmt"

	"github.com/katalvlaran/primefun/sieve"
)

// MethodFind prefixes wrapped errors.
const MethodFind = "ktuple.Find"

// Scan returns the tuples of pattern p in an ascending Prime List,
// ordered by first member. A pattern with a non-positive Distance
// matches nothing. The input is read-only.
//
// Algorithm (two pointers, i = last member, prev = first member):
//  1. For i = 1..len-1:
//  2. If matches(prev, i): emit, prev++, next i.
//  3. Else, while primes[i]-primes[prev] > Distance:
//     prev++; if matches(prev, i) { emit; prev++; break }.
//
// prev never passes i: a gap larger than Distance > 0 implies prev < i,
// and a match implies primes[i] > primes[prev].
//
// Complexity: O(len(primes)·k) time including tuple construction.
func Scan(primes []int, p Pattern) []Tuple {
	tuples := make([]Tuple, 0)
	if !p.valid() {
		return tuples
	}

	prev := 0
	for i := 1; i < len(primes); i++ {
		if matches(primes, prev, i, p) {
			tuples = append(tuples, build(primes, prev, i, p))
			prev++
			continue
		}

		// Resynchronize: the first member has fallen too far behind.
		for primes[i]-primes[prev] > p.Distance {
			prev++
			if matches(primes, prev, i, p) {
				tuples = append(tuples, build(primes, prev, i, p))
				prev++
				break
			}
		}
	}

	return tuples
}

// Find sieves up to bound and scans for p.
//
// Errors: guard.ErrNegative, guard.ErrOverflow, ErrUnknownPattern (wrapped).
func Find(bound int, p Pattern) ([]Tuple, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%s: %w: %+v", MethodFind, ErrUnknownPattern, p)
	}
	primes, err := sieve.Primes(bound)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodFind, err)
	}

	return Scan(primes, p), nil
}

// matches tests the width and, if constrained, the position gap.
func matches(primes []int, prev, i int, p Pattern) bool {
	if primes[i]-primes[prev] != p.Distance {
		return false
	}

	return !p.HasIndexDistance() || i-prev == p.IndexDistance
}

// build assembles [primes[prev], primes[i-w], …, primes[i]] where w is the
// number of members between the anchors (0 for named pairs).
func build(primes []int, prev, i int, p Pattern) Tuple {
	w := 0
	if p.HasIndexDistance() {
		w = p.IndexDistance - 1
	}

	t := make(Tuple, 0, w+2)
	t = append(t, primes[prev])
	for k := w; k >= 0; k-- {
		t = append(t, primes[i-k])
	}

	return t
}
