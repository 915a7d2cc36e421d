package strukt

import (
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a JSON document and applies s to the decoded value.
// It is the primary entry point for boundary validation: decode failures
// and validation failures both surface as an error, validation failures
// specifically as *StructError.
func ParseJSON[T any](s Struct[T], data []byte) (T, error) {
	var zero T
	if s == nil {
		return zero, NewError("nil struct", nil)
	}
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return zero, err
	}
	return s(v).Get()
}

// ParseJSONReader is ParseJSON over a stream.
func ParseJSONReader[T any](s Struct[T], r io.Reader) (T, error) {
	var zero T
	if s == nil {
		return zero, NewError("nil struct", nil)
	}
	var v any
	if err := j.NewDecoder(r).Decode(&v); err != nil {
		return zero, err
	}
	return s(v).Get()
}

// ParseYAML decodes a YAML document and applies s to the decoded value.
// Mappings with string keys decode to map[string]any, so the same structs
// validate JSON and YAML payloads.
func ParseYAML[T any](s Struct[T], data []byte) (T, error) {
	var zero T
	if s == nil {
		return zero, NewError("nil struct", nil)
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return zero, err
	}
	return s(v).Get()
}

// ParseYAMLReader is ParseYAML over a stream.
func ParseYAMLReader[T any](s Struct[T], r io.Reader) (T, error) {
	var zero T
	if s == nil {
		return zero, NewError("nil struct", nil)
	}
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return zero, err
	}
	return s(v).Get()
}
