// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int converts wire-decoded counts and sizes to int with range validation.
func Int[T ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (int, error) {
	switch value := any(v).(type) {
	case int32:
		return int(value), nil
	case int64:
		if value < math.MinInt || value > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	case uint:
		if value > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	case uint32:
		if uint64(value) > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	case uint64:
		if value > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return int(v), nil
}

// NonNegativeInt64 rejects negative amounts read from chain payloads.
func NonNegativeInt64[T ~int64 | ~int32 | ~int](v T) (int64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d is negative", v)
	}
	return int64(v), nil
}
