package guard

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxBound is the largest integer Bound. One below math.MaxInt so that
	// callers may safely index a table of length n+1.
	MaxBound = math.MaxInt - 1

	// MaxSafeFloat is 2^53-1, the largest float64 with exact integer neighbours.
	MaxSafeFloat = 1<<53 - 1
)

// Validate checks x and returns it as a Bound.
//
// Accepted kinds: int, int8..int64, uint, uint8..uint64, uintptr,
// float32, float64 and json.Number. Every other dynamic type yields ErrType.
//
// Complexity: O(1).
func Validate(x interface{}) (int, error) {
	switch v := x.(type) {
	case int:
		return checkSigned(int64(v))
	case int8:
		return checkSigned(int64(v))
	case int16:
		return checkSigned(int64(v))
	case int32:
		return checkSigned(int64(v))
	case int64:
		return checkSigned(v)
	case uint:
		return checkUnsigned(uint64(v))
	case uint8:
		return checkUnsigned(uint64(v))
	case uint16:
		return checkUnsigned(uint64(v))
	case uint32:
		return checkUnsigned(uint64(v))
	case uint64:
		return checkUnsigned(v)
	case uintptr:
		return checkUnsigned(uint64(v))
	case float32:
		return checkFloat(float64(v))
	case float64:
		return checkFloat(v)
	case json.Number:
		return Parse(v.String())
	default:
		return 0, rejectf(ErrType, "%T", x)
	}
}

// Parse converts decimal text into a Bound. Integer literals are parsed
// exactly; anything else numeric ("1e6", "2.5", "NaN") goes through the
// floating rules. Text that is not a number at all yields ErrType.
//
// Complexity: O(len(s)).
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return checkSigned(i)
	} else if errors.Is(err, strconv.ErrRange) {
		return 0, rejectf(ErrOverflow, "%q", s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, rejectf(ErrOverflow, "%q", s)
		}

		return 0, rejectf(ErrType, "%q", s)
	}

	return checkFloat(f)
}

// CheckBound reports whether an already-typed int is a valid Bound.
// Used by the sieve entry points so that every operation re-validates.
//
// Complexity: O(1).
func CheckBound(n int) error {
	_, err := checkSigned(int64(n))

	return err
}

func checkSigned(v int64) (int, error) {
	if v > int64(MaxBound) {
		return 0, rejectf(ErrOverflow, "%d", v)
	}
	if v < 0 {
		return 0, rejectf(ErrNegative, "%d", v)
	}

	return int(v), nil
}

func checkUnsigned(v uint64) (int, error) {
	if v > uint64(MaxBound) {
		return 0, rejectf(ErrOverflow, "%d", v)
	}

	return int(v), nil
}

// checkFloat applies the integral → range → sign order.
func checkFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, rejectf(ErrNotInteger, "%v", f)
	}
	if math.Abs(f) > MaxSafeFloat || f > float64(MaxBound) {
		return 0, rejectf(ErrOverflow, "%v", f)
	}
	if f < 0 {
		return 0, rejectf(ErrNegative, "%v", f)
	}

	return int(f), nil
}
