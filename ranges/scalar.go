// Copyright (c) 2025 Confrange and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ranges

import (
	"fmt"
	"math"

	"github.com/confrange/confrange/key"

	"github.com/spf13/cast"
)

// Any returns a Range accepting every value. Nil completes to def,
// everything else passes through unchanged.
func Any(def any) Range {
	return Func(fmt.Sprintf("any value (default %v)", def), func(path key.Chain, value any) (any, *RangeError) {
		if value == nil {
			return def, nil
		}
		return value, nil
	})
}

// NonNil returns a Range rejecting nil and accepting everything else.
func NonNil() Range {
	var r Range
	r = Func("a non-nil value", func(path key.Chain, value any) (any, *RangeError) {
		if value == nil {
			return nil, &RangeError{Range: r, Path: path, Value: value}
		}
		return value, nil
	})
	return r
}

// Predicate returns a Range completing nil to def and accepting any
// other value for which pred holds.
func Predicate(desc string, pred func(any) bool, def any) Range {
	var r Range
	r = Func(desc, func(path key.Chain, value any) (any, *RangeError) {
		if value == nil {
			return def, nil
		}
		if pred(value) {
			return value, nil
		}
		return nil, &RangeError{Range: r, Path: path, Value: value}
	})
	return r
}

// Bool returns a Range accepting boolean values, with nil completing to def.
func Bool(def bool) Range {
	return Predicate("a boolean", func(v any) bool {
		_, ok := v.(bool)
		return ok
	}, def)
}

// String returns a Range accepting string values, with nil completing to def.
func String(def string) Range {
	return Predicate("a string", func(v any) bool {
		_, ok := v.(string)
		return ok
	}, def)
}

// Int returns a Range accepting integers between min and max,
// inclusive, with nil completing to def. Numeric values are coerced
// to int64 so JSON-decoded float64s and YAML-decoded ints are treated
// alike; fractional floats are rejected.
func Int(min, max, def int64) Range {
	var r Range
	r = Func(fmt.Sprintf("an integer between %d and %d", min, max), func(path key.Chain, value any) (any, *RangeError) {
		if value == nil {
			return def, nil
		}
		if !isNumeric(value) || hasFraction(value) {
			return nil, &RangeError{Range: r, Path: path, Value: value}
		}
		n, err := cast.ToInt64E(value)
		if err != nil || n < min || n > max {
			return nil, &RangeError{Range: r, Path: path, Value: value}
		}
		return n, nil
	})
	return r
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

func hasFraction(v any) bool {
	switch x := v.(type) {
	case float32:
		return float64(x) != math.Trunc(float64(x))
	case float64:
		return x != math.Trunc(x)
	default:
		return false
	}
}
