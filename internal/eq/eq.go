// Package eq provides default equality and ordering for generic element
// types whose type parameters are not constrained to comparable or ordered.
package eq

import "reflect"

// Equal reports whether two values are equal.
// Uses == for the common comparable kinds and reflect.DeepEqual for
// slices, maps, structs, etc.
func Equal[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Compare returns a three-way comparison of a and b for the built-in
// ordered kinds. The second result is false when T has no default order,
// in which case callers must supply their own comparison function.
func Compare[T any](a, b T) (int, bool) {
	switch av := any(a).(type) {
	case int:
		return cmp(av, any(b).(int)), true
	case int8:
		return cmp(av, any(b).(int8)), true
	case int16:
		return cmp(av, any(b).(int16)), true
	case int32:
		return cmp(av, any(b).(int32)), true
	case int64:
		return cmp(av, any(b).(int64)), true
	case uint:
		return cmp(av, any(b).(uint)), true
	case uint8:
		return cmp(av, any(b).(uint8)), true
	case uint16:
		return cmp(av, any(b).(uint16)), true
	case uint32:
		return cmp(av, any(b).(uint32)), true
	case uint64:
		return cmp(av, any(b).(uint64)), true
	case float32:
		return cmp(av, any(b).(float32)), true
	case float64:
		return cmp(av, any(b).(float64)), true
	case string:
		return cmp(av, any(b).(string)), true
	default:
		return 0, false
	}
}

// Orderable reports whether T has a default order usable by Compare.
func Orderable[T any]() bool {
	var zero T
	_, ok := Compare(zero, zero)
	return ok
}

func cmp[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
