package strukt

import (
	"strconv"
	"strings"
)

// Key is a single path segment: a field name for objects or an index for
// arrays. Exactly one of the two is meaningful, discriminated by isIndex.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// Field returns a Key addressing an object field.
func Field(name string) Key { return Key{name: name} }

// Index returns a Key addressing an array element.
func Index(i int) Key { return Key{index: i, isIndex: true} }

// IsIndex reports whether the key addresses an array element.
func (k Key) IsIndex() bool { return k.isIndex }

// Name returns the field name; empty for index keys.
func (k Key) Name() string { return k.name }

// Int returns the array index; zero for field keys.
func (k Key) Int() int { return k.index }

// String renders the segment as it appears inside a JSON Pointer,
// escaping '~' -> '~0' and '/' -> '~1' per RFC 6901.
func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return strings.ReplaceAll(strings.ReplaceAll(k.name, "~", "~0"), "/", "~1")
}

// Path locates a validation failure within nested input, root to leaf.
// An empty Path means the failure happened at the top level. Paths grow by
// prepending: each enclosing combinator contributes exactly one leading
// segment while the child's tail is carried unchanged.
type Path []Key

// Prepend returns a new Path with k ahead of the existing segments. The
// receiver is never mutated; nested calls must not alias each other's
// backing arrays.
func (p Path) Prepend(k Key) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, k)
	out = append(out, p...)
	return out
}

// Pointer renders the path as a JSON Pointer ("/" for the root).
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, k := range p {
		b.WriteByte('/')
		b.WriteString(k.String())
	}
	return b.String()
}

// String is an alias for Pointer so paths print naturally in logs and tests.
func (p Path) String() string { return p.Pointer() }
