package strukt

// Result is the outcome of applying a Struct to a value: exactly one of
// Ok (carrying the typed value) or Err (carrying a *StructError). The
// discriminant is the sole basis for branching; the payload of the inactive
// variant is never inspected. A Result is immutable once constructed.
type Result[T any] struct {
	ok    bool
	value T
	err   *StructError
}

// Ok constructs a success Result.
func Ok[T any](v T) Result[T] { return Result[T]{ok: true, value: v} }

// Err constructs a failure Result.
func Err[T any](e *StructError) Result[T] { return Result[T]{err: e} }

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool { return r.ok }

// IsErr reports whether the result holds an error.
func (r Result[T]) IsErr() bool { return !r.ok }

// Get unpacks the result into the idiomatic (value, error) pair. The error
// is nil exactly when IsOk.
func (r Result[T]) Get() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// Fail returns the carried *StructError, or nil for Ok results.
func (r Result[T]) Fail() *StructError { return r.err }

// Unwrap returns the success value. On Err it panics with the carried
// *StructError, aborting the current call stack; use Get or UnwrapOr when
// the caller wants to handle failure.
func Unwrap[T any](r Result[T]) T {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// UnwrapOr returns the success value, or def when the result is Err.
func UnwrapOr[T any](r Result[T], def T) T {
	if !r.ok {
		return def
	}
	return r.value
}
