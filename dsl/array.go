package dsl

import (
	strukt "github.com/reoring/strukt"
	"github.com/reoring/strukt/i18n"
)

// Slice validates an array of decoded values element-wise. Each element
// runs through elem; the first failure stops the walk and returns the
// child error with the element index prepended to its path. Elements past
// the failing one are never inspected.
func Slice[T any](elem strukt.Struct[T], label ...string) strukt.Struct[[]T] {
	return func(v any) strukt.Result[[]T] {
		arr, ok := v.([]any)
		if !ok {
			return strukt.Err[[]T](strukt.NewError(failMessage(i18n.KindArray, label), v))
		}
		out := make([]T, 0, len(arr))
		for i, el := range arr {
			r := elem(el)
			if r.IsErr() {
				return strukt.Err[[]T](r.Fail().Prefixed(strukt.Index(i)))
			}
			val, _ := r.Get()
			out = append(out, val)
		}
		return strukt.Ok(out)
	}
}
