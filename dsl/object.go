package dsl

import (
	strukt "github.com/reoring/strukt"
	"github.com/reoring/strukt/i18n"
	"github.com/reoring/strukt/pred"
)

// ObjectBuilder accumulates an object shape: a fixed mapping from field
// name to struct, in declaration order. The shape is sealed by Build and
// never mutated afterwards.
type ObjectBuilder struct {
	label  []string
	keys   []string
	fields map[string]strukt.Struct[any]
}

// Object starts an object shape. The optional label becomes the message of
// the top-level "not an object" error.
func Object(label ...string) *ObjectBuilder {
	return &ObjectBuilder{label: label, fields: map[string]strukt.Struct[any]{}}
}

// Field declares a field. Redeclaring a name replaces its struct but keeps
// the original position.
func (b *ObjectBuilder) Field(name string, s strukt.Struct[any]) *ObjectBuilder {
	if _, exists := b.fields[name]; !exists {
		b.keys = append(b.keys, name)
	}
	b.fields[name] = s
	return b
}

// Build seals the shape into a Struct. Validation walks the declared
// fields in order, feeds the absent sentinel to structs whose key is
// missing, and stops at the first failing field with that field's key
// prepended to the child error's path. The output map is built fresh per
// call and holds exactly the declared keys; unknown input keys are
// ignored and dropped.
func (b *ObjectBuilder) Build() strukt.Struct[map[string]any] {
	keys := append([]string(nil), b.keys...)
	fields := make(map[string]strukt.Struct[any], len(b.fields))
	for k, s := range b.fields {
		fields[k] = s
	}
	label := append([]string(nil), b.label...)

	return func(v any) strukt.Result[map[string]any] {
		if !pred.IsObject(v) {
			return strukt.Err[map[string]any](strukt.NewError(failMessage(i18n.KindObject, label), v))
		}
		src := v.(map[string]any)
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			fv, exists := src[k]
			if !exists {
				fv = strukt.Absent
			}
			r := fields[k](fv)
			if r.IsErr() {
				return strukt.Err[map[string]any](r.Fail().Prefixed(strukt.Field(k)))
			}
			val, _ := r.Get()
			out[k] = val
		}
		return strukt.Ok(out)
	}
}
