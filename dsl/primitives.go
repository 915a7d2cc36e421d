package dsl

import (
	"time"

	strukt "github.com/reoring/strukt"
	"github.com/reoring/strukt/i18n"
	"github.com/reoring/strukt/pred"
)

// failMessage resolves the message for a failed check: the caller-supplied
// label when present, otherwise the translated default for the kind. It is
// evaluated at failure time so translator changes take effect immediately.
func failMessage(kind string, label []string) string {
	if len(label) > 0 && label[0] != "" {
		return label[0]
	}
	return i18n.T(kind)
}

// String validates that the input is a string and passes it through
// unchanged.
func String(label ...string) strukt.Struct[string] {
	return func(v any) strukt.Result[string] {
		if s, ok := v.(string); ok {
			return strukt.Ok(s)
		}
		return strukt.Err[string](strukt.NewError(failMessage(i18n.KindString, label), v))
	}
}

// Number validates that the input is a finite real number. NaN and ±Inf
// fail. Accepted Go numeric kinds are widened to float64.
func Number(label ...string) strukt.Struct[float64] {
	return func(v any) strukt.Result[float64] {
		if f, ok := pred.AsNumber(v); ok {
			return strukt.Ok(f)
		}
		return strukt.Err[float64](strukt.NewError(failMessage(i18n.KindNumber, label), v))
	}
}

// Int validates that the input is an integral number; fractional floats
// fail.
func Int(label ...string) strukt.Struct[int64] {
	return func(v any) strukt.Result[int64] {
		if n, ok := pred.AsInt(v); ok {
			return strukt.Ok(n)
		}
		return strukt.Err[int64](strukt.NewError(failMessage(i18n.KindInteger, label), v))
	}
}

// Bool validates that the input is a boolean.
func Bool(label ...string) strukt.Struct[bool] {
	return func(v any) strukt.Result[bool] {
		if b, ok := v.(bool); ok {
			return strukt.Ok(b)
		}
		return strukt.Err[bool](strukt.NewError(failMessage(i18n.KindBoolean, label), v))
	}
}

// Date validates that the input carries a representable instant
// (time.Time or non-nil *time.Time).
func Date(label ...string) strukt.Struct[time.Time] {
	return func(v any) strukt.Result[time.Time] {
		switch t := v.(type) {
		case time.Time:
			return strukt.Ok(t)
		case *time.Time:
			if t != nil {
				return strukt.Ok(*t)
			}
		}
		return strukt.Err[time.Time](strukt.NewError(failMessage(i18n.KindDate, label), v))
	}
}

// Func validates that the input is a function value. The value keeps its
// dynamic type, so the result is any-typed.
func Func(label ...string) strukt.Struct[any] {
	return func(v any) strukt.Result[any] {
		if pred.IsFunc(v) {
			return strukt.Ok(v)
		}
		return strukt.Err[any](strukt.NewError(failMessage(i18n.KindFunction, label), v))
	}
}

// Any accepts every input unchanged. Useful as a placeholder field while a
// shape is being carved out.
func Any() strukt.Struct[any] {
	return func(v any) strukt.Result[any] { return strukt.Ok(v) }
}

// Of erases a Struct[T] to Struct[any] so heterogeneous structs can share
// an object shape. Errors pass through untouched.
func Of[T any](s strukt.Struct[T]) strukt.Struct[any] {
	return func(v any) strukt.Result[any] {
		r := s(v)
		if r.IsErr() {
			return strukt.Err[any](r.Fail())
		}
		val, _ := r.Get()
		return strukt.Ok[any](val)
	}
}
