// Package shape compiles declarative shape descriptors into strukt
// validators. A descriptor is a small YAML document naming the expected
// type of each node, so tools (notably cmd/strukt) can validate documents
// without compiling Go code.
//
// Example descriptor:
//
//	type: object
//	label: config
//	fields:
//	  name: {type: string}
//	  port: {type: integer}
//	  tags: {type: array, of: {type: string}}
//	  note: {type: string, optional: true, nullable: true}
package shape

import (
	"fmt"

	"gopkg.in/yaml.v3"

	strukt "github.com/reoring/strukt"
	"github.com/reoring/strukt/dsl"
)

// Descriptor node types.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
	TypeAny     = "any"
)

// Def describes one node of the expected shape.
type Def struct {
	Type     string
	Label    string
	Optional bool
	Nullable bool
	Of       *Def    // array element shape
	Fields   []Field // object fields, declaration order
}

// Field pairs a field name with its shape.
type Field struct {
	Name string
	Def  *Def
}

// UnmarshalYAML decodes a Def from a mapping node. Decoding walks the raw
// node instead of a map so object fields keep their declaration order.
func (d *Def) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("shape: expected a mapping at line %d", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "type":
			if err := val.Decode(&d.Type); err != nil {
				return err
			}
		case "label":
			if err := val.Decode(&d.Label); err != nil {
				return err
			}
		case "optional":
			if err := val.Decode(&d.Optional); err != nil {
				return err
			}
		case "nullable":
			if err := val.Decode(&d.Nullable); err != nil {
				return err
			}
		case "of":
			d.Of = &Def{}
			if err := val.Decode(d.Of); err != nil {
				return err
			}
		case "fields":
			if val.Kind != yaml.MappingNode {
				return fmt.Errorf("shape: fields must be a mapping at line %d", val.Line)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				fd := &Def{}
				if err := val.Content[j+1].Decode(fd); err != nil {
					return err
				}
				d.Fields = append(d.Fields, Field{Name: val.Content[j].Value, Def: fd})
			}
		default:
			return fmt.Errorf("shape: unknown key %q at line %d", key, node.Content[i].Line)
		}
	}
	return nil
}

// Load parses a YAML shape descriptor.
func Load(data []byte) (*Def, error) {
	d := &Def{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, err
	}
	if d.Type == "" {
		return nil, fmt.Errorf("shape: missing type")
	}
	return d, nil
}

func labelArgs(d *Def) []string {
	if d.Label != "" {
		return []string{d.Label}
	}
	return nil
}

// Compile turns a descriptor into a validator. The mapping mirrors the dsl
// constructors: primitives by type name, object via the builder in field
// declaration order, array via Slice over the element shape. nullable
// wraps the node first, optional wraps outermost so an absent key never
// reaches the inner check.
func Compile(d *Def) (strukt.Struct[any], error) {
	if d == nil {
		return nil, fmt.Errorf("shape: nil def")
	}
	var s strukt.Struct[any]
	switch d.Type {
	case TypeString:
		s = dsl.Of(dsl.String(labelArgs(d)...))
	case TypeNumber:
		s = dsl.Of(dsl.Number(labelArgs(d)...))
	case TypeInteger:
		s = dsl.Of(dsl.Int(labelArgs(d)...))
	case TypeBoolean:
		s = dsl.Of(dsl.Bool(labelArgs(d)...))
	case TypeAny:
		s = dsl.Any()
	case TypeArray:
		if d.Of == nil {
			return nil, fmt.Errorf("shape: array requires of")
		}
		elem, err := Compile(d.Of)
		if err != nil {
			return nil, err
		}
		s = dsl.Of(dsl.Slice(elem, labelArgs(d)...))
	case TypeObject:
		b := dsl.Object(labelArgs(d)...)
		for _, f := range d.Fields {
			fs, err := Compile(f.Def)
			if err != nil {
				return nil, fmt.Errorf("shape: field %q: %w", f.Name, err)
			}
			b.Field(f.Name, fs)
		}
		s = dsl.Of(b.Build())
	default:
		return nil, fmt.Errorf("shape: unknown type %q", d.Type)
	}
	if d.Nullable {
		s = dsl.Nullable(s)
	}
	if d.Optional {
		s = dsl.Optional(s)
	}
	return s, nil
}
