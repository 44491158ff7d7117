package ktuple

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownPattern indicates a key that does not resolve to a Pattern.
var ErrUnknownPattern = errors.New("ktuple: unknown pattern")

// Named pair keys.
const (
	Cousin = "cousin"
	Sexy   = "sexy"
)

// Tuple sizes covered by the canonical table.
const (
	MinSize = 3
	MaxSize = 13
)

// Pattern describes one tuple shape.
//
//   - Key           — "cousin", "sexy" or the decimal tuple size ("3".."13").
//   - Distance      — required difference between last and first prime.
//   - IndexDistance — required difference between their positions in the
//     Prime List; 0 means the pattern places no constraint on positions.
type Pattern struct {
	Key           string
	Distance      int
	IndexDistance int
}

// Size reports k, the number of primes in a matching tuple.
func (p Pattern) Size() int {
	if p.IndexDistance == 0 {
		return 2
	}

	return p.IndexDistance + 1
}

// HasIndexDistance reports whether list positions are constrained.
func (p Pattern) HasIndexDistance() bool {
	return p.IndexDistance > 0
}

// valid rejects zero-value or hand-built patterns that Scan cannot honour.
func (p Pattern) valid() bool {
	return p.Distance > 0 && p.IndexDistance >= 0
}

// Tuple is one match, ascending.
type Tuple []int

// First returns the smallest member.
func (t Tuple) First() int { return t[0] }

// Last returns the largest member.
func (t Tuple) Last() int { return t[len(t)-1] }

// canonical is the fixed descriptor table (OEIS A257124 widths).
var canonical = [...]Pattern{
	{Key: Cousin, Distance: 4},
	{Key: Sexy, Distance: 6},
	{Key: "3", Distance: 6, IndexDistance: 2},
	{Key: "4", Distance: 8, IndexDistance: 3},
	{Key: "5", Distance: 12, IndexDistance: 4},
	{Key: "6", Distance: 16, IndexDistance: 5},
	{Key: "7", Distance: 20, IndexDistance: 6},
	{Key: "8", Distance: 26, IndexDistance: 7},
	{Key: "9", Distance: 30, IndexDistance: 8},
	{Key: "10", Distance: 32, IndexDistance: 9},
	{Key: "11", Distance: 36, IndexDistance: 10},
	{Key: "12", Distance: 42, IndexDistance: 11},
	{Key: "13", Distance: 48, IndexDistance: 12},
}

// namedCount is the number of named pairs at the head of canonical.
const namedCount = 2

// Patterns returns a copy of the canonical table in key order.
func Patterns() []Pattern {
	out := make([]Pattern, len(canonical))
	copy(out, canonical[:])

	return out
}

// ForSize resolves a tuple size k ∈ [MinSize, MaxSize].
//
// Errors: ErrUnknownPattern (wrapped with k).
func ForSize(k int) (Pattern, error) {
	if k < MinSize || k > MaxSize {
		return Pattern{}, fmt.Errorf("%w: size %d", ErrUnknownPattern, k)
	}

	return canonical[namedCount+k-MinSize], nil
}

// Lookup resolves a textual key: "cousin", "sexy" or a decimal size.
// Surrounding whitespace and letter case are ignored; "4" and " 4 " both
// resolve to the quadruplet pattern, "4x" does not.
//
// Errors: ErrUnknownPattern (wrapped with the key).
func Lookup(key string) (Pattern, error) {
	norm := strings.ToLower(strings.TrimSpace(key))
	for _, p := range canonical[:namedCount] {
		if p.Key == norm {
			return p, nil
		}
	}

	k, err := strconv.Atoi(norm)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, key)
	}

	return ForSize(k)
}
