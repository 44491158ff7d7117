// Package guard validates candidate bounds before they reach the sieve.
//
// A Bound is a non-negative integer that the host can represent exactly.
// Anything else is rejected with one of four sentinel errors, checked in
// this order:
//
//   - ErrType       — the value is not a number at all (string, bool, nil…)
//   - ErrNotInteger — the value has a fractional part, or is NaN / ±Inf
//   - ErrOverflow   — the value lies outside the exact-integer range
//   - ErrNegative   — the value is below zero
//
// Integer kinds are accepted up to MaxBound (math.MaxInt-1, so n+1 stays
// representable). Floating values are accepted up to MaxSafeFloat (2^53-1),
// the largest float64 below which every integer is exact.
//
// Usage:
//
//	n, err := guard.Validate(v)   // v of any numeric kind
//	n, err := guard.Parse("1e6")  // textual input, e.g. CLI args
//	if errors.Is(err, guard.ErrNegative) { ... }
//
// All functions are pure: no allocation beyond the returned error.
package guard
