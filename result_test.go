package strukt_test

import (
	"testing"

	strukt "github.com/reoring/strukt"
)

func TestResult_Discriminant(t *testing.T) {
	r := strukt.Ok(42)
	if !r.IsOk() || r.IsErr() {
		t.Fatalf("Ok result misclassified: ok=%v err=%v", r.IsOk(), r.IsErr())
	}
	e := strukt.Err[int](strukt.NewError("number", "nope"))
	if e.IsOk() || !e.IsErr() {
		t.Fatalf("Err result misclassified: ok=%v err=%v", e.IsOk(), e.IsErr())
	}
}

func TestResult_Get(t *testing.T) {
	v, err := strukt.Ok("hello").Get()
	if err != nil || v != "hello" {
		t.Fatalf("expected hello, got v=%v err=%v", v, err)
	}

	se := strukt.NewError("string", 1)
	_, err = strukt.Err[string](se).Get()
	if err == nil {
		t.Fatalf("expected error from Err result")
	}
	got, ok := strukt.AsStructError(err)
	if !ok || got != se {
		t.Fatalf("expected the carried StructError, got %v", err)
	}
}

func TestUnwrap_OkReturnsValue(t *testing.T) {
	if v := strukt.Unwrap(strukt.Ok(7)); v != 7 {
		t.Fatalf("expected 7, got %v", v)
	}
}

func TestUnwrap_ErrPanicsWithCarriedError(t *testing.T) {
	se := strukt.NewError("boom", nil)
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatalf("expected panic from Unwrap on Err")
		}
		if rec != se {
			t.Fatalf("expected the carried error, got %v", rec)
		}
	}()
	strukt.Unwrap(strukt.Err[int](se))
}

func TestUnwrapOr(t *testing.T) {
	if v := strukt.UnwrapOr(strukt.Ok(1), 9); v != 1 {
		t.Fatalf("expected 1, got %v", v)
	}
	if v := strukt.UnwrapOr(strukt.Err[int](strukt.NewError("e", nil)), 9); v != 9 {
		t.Fatalf("expected default 9, got %v", v)
	}
}
