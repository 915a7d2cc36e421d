package dsl

import (
	"github.com/mitchellh/mapstructure"

	strukt "github.com/reoring/strukt"
)

// Bind projects a validated object onto a Go struct T. The object struct
// runs first; its output map is then decoded into T with json tag
// resolution, so one shape declaration serves both the wire check and the
// typed domain value. Decode failures surface as a top-level StructError
// carrying the validated map as the offending input.
func Bind[T any](obj strukt.Struct[map[string]any]) strukt.Struct[T] {
	return func(v any) strukt.Result[T] {
		r := obj(v)
		if r.IsErr() {
			return strukt.Err[T](r.Fail())
		}
		m, _ := r.Get()
		var out T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  &out,
			TagName: "json",
		})
		if err != nil {
			return strukt.Err[T](strukt.NewError(err.Error(), m))
		}
		if err := dec.Decode(m); err != nil {
			return strukt.Err[T](strukt.NewError(err.Error(), m))
		}
		return strukt.Ok(out)
	}
}

// MustBind is Bind plus Unwrap: it panics on validation failure. Intended
// for trusted inputs such as embedded fixtures.
func MustBind[T any](obj strukt.Struct[map[string]any], v any) T {
	return strukt.Unwrap(Bind[T](obj)(v))
}
