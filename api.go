package primefun

import (
	"github.com/katalvlaran/primefun/ktuple"
	"github.com/katalvlaran/primefun/sieve"
	"github.com/katalvlaran/primefun/twins"
)

// Sieve returns the ascending primes ≤ bound.
func Sieve(bound int) ([]int, error) {
	return sieve.Primes(bound)
}

// SieveTable returns the primality flags for 0..bound (length bound+1).
func SieveTable(bound int) ([]bool, error) {
	return sieve.Table(bound)
}

// IsPrime reports whether n is prime.
func IsPrime(n int) (bool, error) {
	return sieve.IsPrime(n)
}

// TwinPrimes returns the twin pairs whose larger member is ≤ bound.
func TwinPrimes(bound int) ([]twins.Pair, error) {
	return twins.Find(bound)
}

// TupleTemplate returns the tuples ≤ bound matching key, which is
// "cousin", "sexy" or a tuple size "3".."13".
//
// Errors: ktuple.ErrUnknownPattern, guard.ErrNegative, guard.ErrOverflow.
func TupleTemplate(bound int, key string) ([]ktuple.Tuple, error) {
	p, err := ktuple.Lookup(key)
	if err != nil {
		return nil, err
	}

	return ktuple.Find(bound, p)
}

// KTuples is TupleTemplate for a numeric tuple size k ∈ [3, 13].
func KTuples(bound, k int) ([]ktuple.Tuple, error) {
	p, err := ktuple.ForSize(k)
	if err != nil {
		return nil, err
	}

	return ktuple.Find(bound, p)
}
