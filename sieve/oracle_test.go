package sieve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primefun/guard"
	"github.com/katalvlaran/primefun/sieve"
)

var compositesTo38 = []int{4, 6, 8, 9, 10, 12, 14, 15, 16, 18, 20, 21, 22, 24, 25, 26, 27, 28, 30, 32, 33, 34, 35, 36, 38}

func TestIsPrime_FastPaths(t *testing.T) {
	want := map[int]bool{0: false, 1: false, 2: true, 3: true}
	for n, w := range want {
		got, err := sieve.IsPrime(n)
		require.NoError(t, err)
		assert.Equal(t, w, got, "IsPrime(%d)", n)
	}
}

func TestIsPrime_Known(t *testing.T) {
	for _, p := range primesTo100 {
		got, err := sieve.IsPrime(p)
		require.NoError(t, err)
		assert.True(t, got, "IsPrime(%d)", p)
	}
	for _, c := range compositesTo38 {
		got, err := sieve.IsPrime(c)
		require.NoError(t, err)
		assert.False(t, got, "IsPrime(%d)", c)
	}
}

// TestIsPrime_TrialDivision compares against the naive reference for 0..2000.
func TestIsPrime_TrialDivision(t *testing.T) {
	for n := 0; n <= 2000; n++ {
		got, err := sieve.IsPrime(n)
		require.NoError(t, err)
		require.Equal(t, isPrimeNaive(n), got, "IsPrime(%d)", n)
	}
}

func TestIsPrime_Negative(t *testing.T) {
	got, err := sieve.IsPrime(-7)
	assert.False(t, got)
	assert.ErrorIs(t, err, guard.ErrNegative)
	assert.Contains(t, err.Error(), sieve.MethodIsPrime)
}
