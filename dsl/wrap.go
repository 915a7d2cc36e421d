package dsl

import (
	strukt "github.com/reoring/strukt"
	"github.com/reoring/strukt/pred"
)

// Optional wraps inner so the absent sentinel succeeds immediately with
// the zero value, without invoking inner. Every other input delegates to
// inner and the result passes through verbatim, error path included.
// No path segment is added here.
func Optional[T any](inner strukt.Struct[T]) strukt.Struct[T] {
	return func(v any) strukt.Result[T] {
		if pred.IsAbsent(v) {
			var zero T
			return strukt.Ok(zero)
		}
		return inner(v)
	}
}

// Nullable is structurally identical to Optional but special-cases null
// (nil) instead of absent.
func Nullable[T any](inner strukt.Struct[T]) strukt.Struct[T] {
	return func(v any) strukt.Result[T] {
		if pred.IsNull(v) {
			var zero T
			return strukt.Ok(zero)
		}
		return inner(v)
	}
}
