package pred

// DeepClone copies a decoded value recursively. Maps and slices are
// rebuilt; scalars are returned as-is. The clone shares no mutable state
// with the original.
func DeepClone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = DeepClone(val)
		}
		return out
	case []any:
		if t == nil {
			return []any(nil)
		}
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = DeepClone(val)
		}
		return out
	default:
		return v
	}
}

// ShallowClone copies only the top-level container. Nested values are
// shared with the original.
func ShallowClone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = val
		}
		return out
	case []any:
		if t == nil {
			return []any(nil)
		}
		out := make([]any, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}
