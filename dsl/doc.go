// Package dsl provides the constructors that build strukt validators.
//
// Overview
//   - Primitives: String()/Number()/Int()/Bool()/Date()/Func()/Any(), each
//     accepting an optional label that replaces the default failure message.
//   - Builder API: declare object shapes with Object().Field(...).Build();
//     fields validate in declaration order and failures stop at the first
//     offending field with its key prepended to the error path.
//   - Wrappers: Optional(s)/Nullable(s) special-case the absent and null
//     sentinels and otherwise delegate verbatim.
//   - Composition: Map(s, fn) threads the success value through a fallible
//     transform, Chain(s, fns...) through total same-type transforms.
//   - Slice(elem): element-wise array validation with index path segments.
//   - Bind[T]: project a validated object onto a Go struct via json tags.
//
// Entry points
//   - Object(): create an object builder; chain Field then Build().
//   - Of(s): erase a Struct[T] to Struct[any] so it can sit in a shape.
package dsl
