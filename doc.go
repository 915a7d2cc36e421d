// Package strukt provides:
//
// - Composable runtime validators ("structs") over untrusted values (Struct[T])
// - A two-variant result algebra (Result[T]: Ok/Err) with unwrap helpers
// - A stable error model via StructError (message, offending input, path)
// - Boundary decoding for JSON/YAML payloads (ParseJSON/ParseYAML)
//
// Design policy:
// - Keep only public APIs in the root package; construction lives under dsl/.
// - Place the predicate layer under pred/, shape descriptors under shape/,
//   HTTP helpers under middleware/, and the CLI under cmd/strukt.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object().
//		Field("name", dsl.Of(dsl.String())).
//		Field("age", dsl.Of(dsl.Number())).
//		Build()
//
//	v, err := strukt.ParseJSON(user, payload)
package strukt
