package ktuple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primefun/guard"
	"github.com/katalvlaran/primefun/ktuple"
	"github.com/katalvlaran/primefun/sieve"
)

func find(t *testing.T, bound int, key string) []ktuple.Tuple {
	t.Helper()
	p, err := ktuple.Lookup(key)
	require.NoError(t, err)
	got, err := ktuple.Find(bound, p)
	require.NoError(t, err)

	return got
}

// TestFind_Hundred pins the known lists up to 100.
func TestFind_Hundred(t *testing.T) {
	cases := []struct {
		key  string
		want []ktuple.Tuple
	}{
		{"cousin", []ktuple.Tuple{{3, 7}, {7, 11}, {13, 17}, {19, 23}, {37, 41}, {43, 47}, {67, 71}, {79, 83}}},
		{"sexy", []ktuple.Tuple{{5, 11}, {7, 13}, {11, 17}, {13, 19}, {17, 23}, {23, 29}, {31, 37}, {37, 43}, {41, 47}, {47, 53}, {53, 59}, {61, 67}, {67, 73}, {73, 79}, {83, 89}}},
		{"3", []ktuple.Tuple{{5, 7, 11}, {7, 11, 13}, {11, 13, 17}, {13, 17, 19}, {17, 19, 23}, {37, 41, 43}, {41, 43, 47}, {67, 71, 73}}},
		{"4", []ktuple.Tuple{{3, 5, 7, 11}, {5, 7, 11, 13}, {11, 13, 17, 19}}},
		{"5", []ktuple.Tuple{{5, 7, 11, 13, 17}, {7, 11, 13, 17, 19}, {11, 13, 17, 19, 23}}},
		{"6", []ktuple.Tuple{{7, 11, 13, 17, 19, 23}}},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, find(t, 100, tc.key))
		})
	}
}

// TestFind_Larger covers wider patterns that need bigger bounds.
func TestFind_Larger(t *testing.T) {
	assert.Equal(t,
		[]ktuple.Tuple{{7, 11, 13, 17, 19, 23}, {97, 101, 103, 107, 109, 113}},
		find(t, 1000, "6")[:2])
	assert.Equal(t,
		[]ktuple.Tuple{{11, 13, 17, 19, 23, 29, 31}},
		find(t, 1000, "7")[:1])
	assert.Equal(t,
		[]ktuple.Tuple{{11, 13, 17, 19, 23, 29, 31, 37}, {17, 19, 23, 29, 31, 37, 41, 43}},
		find(t, 1000, "8")[:2])
}

func TestFind_SmallBounds(t *testing.T) {
	assert.Equal(t, []ktuple.Tuple{}, find(t, 0, "3"))
	assert.Equal(t, []ktuple.Tuple{}, find(t, 2, "cousin"))
	assert.Equal(t, []ktuple.Tuple{{3, 7}}, find(t, 10, "cousin"))
	assert.Equal(t, []ktuple.Tuple{}, find(t, 10, "13"))
}

// TestFind_Properties checks every emitted tuple against the pattern rules
// and, for named pairs, that no pair is omitted.
func TestFind_Properties(t *testing.T) {
	const bound = 3000
	primes, err := sieve.Primes(bound)
	require.NoError(t, err)
	flags, err := sieve.Table(bound)
	require.NoError(t, err)
	index := make(map[int]int, len(primes))
	for i, p := range primes {
		index[p] = i
	}

	for _, p := range ktuple.Patterns() {
		got, err := ktuple.Find(bound, p)
		require.NoError(t, err)

		for j, tp := range got {
			require.Len(t, tp, p.Size(), "%s tuple %v", p.Key, tp)
			assert.Equal(t, p.Distance, tp.Last()-tp.First(), "%s tuple %v", p.Key, tp)
			for _, v := range tp {
				assert.True(t, flags[v], "%s tuple %v member %d", p.Key, tp, v)
			}
			if p.HasIndexDistance() {
				assert.Equal(t, p.IndexDistance, index[tp.Last()]-index[tp.First()])
				for m := 1; m < len(tp); m++ {
					assert.Equal(t, index[tp[m-1]]+1, index[tp[m]], "consecutive members")
				}
			}
			if j > 0 {
				assert.Less(t, got[j-1].First(), tp.First(), "ascending, one tuple per start")
			}
		}

		if !p.HasIndexDistance() {
			want := []ktuple.Tuple{}
			for _, q := range primes {
				if q+p.Distance <= bound && flags[q+p.Distance] {
					want = append(want, ktuple.Tuple{q, q + p.Distance})
				}
			}
			assert.Equal(t, want, got, "complete %s pairs", p.Key)
		}
	}
}

func TestScan_CallerList(t *testing.T) {
	p, err := ktuple.ForSize(3)
	require.NoError(t, err)
	assert.Equal(t, []ktuple.Tuple{{5, 7, 11}, {7, 11, 13}}, ktuple.Scan([]int{2, 3, 5, 7, 11, 13}, p))
	assert.Equal(t, []ktuple.Tuple{}, ktuple.Scan(nil, p))
	assert.Equal(t, []ktuple.Tuple{}, ktuple.Scan([]int{5}, p))
}

// TestScan_InvalidPattern ensures a zero Pattern never matches equal anchors.
func TestScan_InvalidPattern(t *testing.T) {
	assert.Equal(t, []ktuple.Tuple{}, ktuple.Scan([]int{2, 3, 5, 7}, ktuple.Pattern{}))

	_, err := ktuple.Find(100, ktuple.Pattern{Key: "zero"})
	assert.ErrorIs(t, err, ktuple.ErrUnknownPattern)
}

func TestFind_Negative(t *testing.T) {
	p, err := ktuple.Lookup(ktuple.Sexy)
	require.NoError(t, err)
	got, err := ktuple.Find(-5, p)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, guard.ErrNegative)
}
