package dsl_test

import (
	"testing"

	strukt "github.com/reoring/strukt"
	g "github.com/reoring/strukt/dsl"
)

// tracked wraps a struct and records whether it was invoked.
func tracked[T any](inner strukt.Struct[T], called *bool) strukt.Struct[T] {
	return func(v any) strukt.Result[T] {
		*called = true
		return inner(v)
	}
}

func TestOptional_AbsentShortCircuits(t *testing.T) {
	called := false
	s := g.Optional(tracked(g.Of(g.String()), &called))

	v, err := s(strukt.Absent).Get()
	if err != nil || v != nil {
		t.Fatalf("absent must succeed with zero value, v=%v err=%v", v, err)
	}
	if called {
		t.Fatalf("inner struct must not run for absent input")
	}
}

func TestOptional_DelegatesOtherwise(t *testing.T) {
	s := g.Optional(g.Of(g.String("lbl")))
	if v, err := s("x").Get(); err != nil || v != "x" {
		t.Fatalf("delegation broken, v=%v err=%v", v, err)
	}
	// null is NOT the optional sentinel; the inner error passes through verbatim
	se := s(nil).Fail()
	if se == nil || se.Message != "lbl" || len(se.Path) != 0 {
		t.Fatalf("inner error modified: %+v", se)
	}
}

func TestNullable_NullShortCircuits(t *testing.T) {
	called := false
	s := g.Nullable(tracked(g.Of(g.String()), &called))

	v, err := s(nil).Get()
	if err != nil || v != nil {
		t.Fatalf("null must succeed with zero value, v=%v err=%v", v, err)
	}
	if called {
		t.Fatalf("inner struct must not run for null input")
	}
}

func TestNullable_DelegatesOtherwise(t *testing.T) {
	s := g.Nullable(g.Of(g.Number("num")))
	if v, err := s(2.5).Get(); err != nil || v != 2.5 {
		t.Fatalf("delegation broken, v=%v err=%v", v, err)
	}
	// absent is NOT the nullable sentinel
	se := s(strukt.Absent).Fail()
	if se == nil || se.Message != "num" {
		t.Fatalf("inner error modified: %+v", se)
	}
}

func TestOptionalNullable_Compose(t *testing.T) {
	s := g.Optional(g.Nullable(g.Of(g.String())))
	if r := s(strukt.Absent); !r.IsOk() {
		t.Fatalf("absent must pass the composed wrapper")
	}
	if r := s(nil); !r.IsOk() {
		t.Fatalf("null must pass the composed wrapper")
	}
	if r := s(1); !r.IsErr() {
		t.Fatalf("non-sentinel still validates")
	}
}
