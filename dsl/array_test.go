package dsl_test

import (
	"testing"

	strukt "github.com/reoring/strukt"
	g "github.com/reoring/strukt/dsl"
)

// countingString counts invocations of an inner string check.
func countingString(calls *int) strukt.Struct[string] {
	inner := g.String()
	return func(v any) strukt.Result[string] {
		*calls++
		return inner(v)
	}
}

func TestSlice_Valid(t *testing.T) {
	s := g.Slice(g.String())
	v, err := s([]any{"a", "b"}).Get()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(v) != 2 || v[0] != "a" || v[1] != "b" {
		t.Fatalf("unexpected output: %#v", v)
	}
}

func TestSlice_NonArrayInput(t *testing.T) {
	se := g.Slice(g.String(), "tags")(map[string]any{}).Fail()
	if se == nil || se.Message != "tags" || len(se.Path) != 0 {
		t.Fatalf("unexpected error shape: %+v", se)
	}
}

func TestSlice_IndexPathSegment(t *testing.T) {
	s := g.Slice(g.String("elem"))
	se := s([]any{"ok", 5, "never-checked"}).Fail()
	if se == nil {
		t.Fatalf("expected element failure")
	}
	if se.Path.Pointer() != "/1" || se.Input != 5 || se.Message != "elem" {
		t.Fatalf("unexpected error shape: %+v", se)
	}
}

func TestSlice_FailFastSkipsLaterElements(t *testing.T) {
	calls := 0
	s := g.Slice(countingString(&calls))
	if r := s([]any{1, "x", "y"}); !r.IsErr() {
		t.Fatalf("expected failure at index 0")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one element check, got %d", calls)
	}
}

func TestSlice_NestedInObject(t *testing.T) {
	s := g.Object().
		Field("items", g.Of(g.Slice(g.Number("price")))).
		Build()
	se := s(map[string]any{"items": []any{float64(1), "x"}}).Fail()
	if se == nil || se.Path.Pointer() != "/items/1" {
		t.Fatalf("expected /items/1, got %+v", se)
	}
}
