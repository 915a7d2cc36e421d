package strukt

// Struct is a composable validator: a pure function from an untyped input
// value to a Result. Structs hold no per-call state and read no mutable
// shared state, so a built Struct is safe to store, pass around, and apply
// concurrently from independent goroutines.
type Struct[T any] func(v any) Result[T]

// absentValue is the type of the Absent sentinel.
type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent is the sentinel meaning "key/argument not supplied". Object
// combinators feed it to field structs when the input lacks the key, and
// dsl.Optional treats it as an immediate success. It is distinct from nil,
// which models JSON null.
var Absent = absentValue{}

// IsAbsentValue reports whether v is the Absent sentinel.
func IsAbsentValue(v any) bool {
	_, ok := v.(absentValue)
	return ok
}
