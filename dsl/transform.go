package dsl

import (
	strukt "github.com/reoring/strukt"
)

// Map runs s and, on success, threads the value through fn. fn may itself
// fail; whatever it returns is the final result. On failure of s the
// original error is returned unchanged and fn is never invoked.
func Map[T, O any](s strukt.Struct[T], fn func(T) strukt.Result[O]) strukt.Struct[O] {
	return func(v any) strukt.Result[O] {
		r := s(v)
		if r.IsErr() {
			return strukt.Err[O](r.Fail())
		}
		val, _ := r.Get()
		return fn(val)
	}
}

// Chain runs s and, on success, folds the value left-to-right through the
// supplied total transforms, in the order given. Transforms cannot fail;
// fallibility belongs in s or in Map. On failure of s the error
// short-circuits and no transform runs.
func Chain[T any](s strukt.Struct[T], fns ...func(T) T) strukt.Struct[T] {
	return func(v any) strukt.Result[T] {
		r := s(v)
		if r.IsErr() {
			return r
		}
		val, _ := r.Get()
		for _, fn := range fns {
			val = fn(val)
		}
		return strukt.Ok(val)
	}
}
