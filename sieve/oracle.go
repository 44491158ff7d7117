package sieve

import (
	"fmt"

	"github.com/katalvlaran/primefun/guard"
)

// IsPrime reports whether n is prime.
//
// 0 and 1 are never prime and 2 and 3 always are; those answers skip the
// sieve. Otherwise a table for bound n+1 is built and entry n is read.
//
// Errors: guard.ErrNegative, guard.ErrOverflow (wrapped).
//
// Complexity: O(n·log log n) time, O(n) memory.
func IsPrime(n int) (bool, error) {
	if err := guard.CheckBound(n); err != nil {
		return false, fmt.Errorf("%s: %w", MethodIsPrime, err)
	}
	switch n {
	case 0, 1:
		return false, nil
	case 2, 3:
		return true, nil
	}

	return table(n + 1)[n], nil
}
