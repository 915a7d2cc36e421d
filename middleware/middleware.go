// Package middleware validates HTTP request bodies at the boundary and
// hands the validated value to downstream handlers through the request
// context.
package middleware

import (
	"context"
	"net/http"

	j "github.com/goccy/go-json"

	strukt "github.com/reoring/strukt"
)

// ctxKeyValidated is a typed context key for storing a validated T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValidated[T any] struct{}

// ContextWithValidated attaches a validated value to the context.
func ContextWithValidated[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValidated[T]{}, v)
}

// ValidatedFromContext retrieves a validated value from the context.
func ValidatedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValidated[T]{}).(T)
	return v, ok
}

// ErrorPayload shapes a StructError for JSON responses. The absent
// sentinel renders as null since it has no JSON representation.
func ErrorPayload(se *strukt.StructError) map[string]any {
	input := se.Input
	if strukt.IsAbsentValue(input) {
		input = nil
	}
	return map[string]any{
		"error": map[string]any{
			"message": se.Message,
			"path":    se.Path.Pointer(),
			"input":   input,
		},
	}
}

// ValidateJSON returns middleware that decodes the request body as JSON,
// applies s, and stores the validated value in the request context under
// the per-type key. Decode and validation failures short-circuit with a
// 400 response; the handler never sees an invalid body.
func ValidateJSON[T any](s strukt.Struct[T]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := strukt.ParseJSONReader(s, r.Body)
			if err != nil {
				writeError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValidated(r.Context(), v)))
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	var payload map[string]any
	if se, ok := strukt.AsStructError(err); ok {
		payload = ErrorPayload(se)
	} else {
		payload = map[string]any{"error": map[string]any{"message": err.Error()}}
	}
	_ = j.NewEncoder(w).Encode(payload)
}
