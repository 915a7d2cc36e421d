// Package pred is the stateless type-predicate layer consumed by the
// primitive struct constructors under dsl. Every predicate is a total
// boolean function over an untyped value; none of them mutate the input.
package pred

import (
	"math"
	"reflect"
	"time"

	strukt "github.com/reoring/strukt"
)

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsNumber reports whether v is a finite real number. NaN and ±Inf are
// rejected: "number" here means a value meaningful in arithmetic, not
// merely the numeric runtime type.
func IsNumber(v any) bool {
	_, ok := AsNumber(v)
	return ok
}

// AsNumber widens any accepted numeric value to float64. It returns false
// for non-numeric values and for non-finite floats.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AsInt narrows an accepted numeric value to int64. Fractional floats are
// rejected.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	f, ok := AsNumber(v)
	if !ok || math.Trunc(f) != f {
		return 0, false
	}
	return int64(f), true
}

// IsBool reports whether v is a boolean.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNull reports whether v is the null sentinel (untyped nil).
func IsNull(v any) bool { return v == nil }

// IsAbsent reports whether v is the "not supplied" sentinel.
func IsAbsent(v any) bool { return strukt.IsAbsentValue(v) }

// IsDefined is the negation of IsAbsent.
func IsDefined(v any) bool { return !IsAbsent(v) }

// IsObject reports whether v is a plain object: a non-nil map keyed by
// strings. nil and arrays are rejected even though they are loosely
// object-like elsewhere.
func IsObject(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m != nil
}

// IsArray reports whether v is an array-shaped value. The decoded-value
// domain uses []any; other slice and array kinds are recognized via
// reflection for callers validating in-process values.
func IsArray(v any) bool {
	if _, ok := v.([]any); ok {
		return true
	}
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsFunc reports whether v is a function value.
func IsFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// IsDate reports whether v carries a representable instant: a time.Time or
// a non-nil *time.Time.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}
