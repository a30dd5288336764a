package outcome

import (
	"testing"

	"github.com/google/uuid"
)

type testErr int

const (
	errA testErr = iota
	errB
)

func TestSuccess_HoldsValue(t *testing.T) {
	t.Parallel()
	r := Success[int, testErr](123)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success discriminant, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Value() != 123 {
		t.Fatalf("expected value 123, got: %v", r.Value())
	}
}

func TestFail_HoldsError(t *testing.T) {
	t.Parallel()
	r := Fail[int, testErr](errB)

	if !r.IsFailure() || r.IsSuccess() {
		t.Fatalf("expected failure discriminant, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Failure() != errB {
		t.Fatalf("expected error %v, got: %v", errB, r.Failure())
	}
}

func TestAccessors_GuardInactivePayload(t *testing.T) {
	t.Parallel()
	s := Success[int, testErr](7)
	f := Fail[int, testErr](errA)

	if s.Failure() != 0 {
		t.Fatalf("reading error of a success must yield zero value, got: %v", s.Failure())
	}
	if f.Value() != 0 {
		t.Fatalf("reading value of a failure must yield zero value, got: %v", f.Value())
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	if v, ok := Success[int, testErr](5).Get(); !ok || v != 5 {
		t.Fatalf("expected (5, true), got: (%v, %v)", v, ok)
	}
	if v, ok := Fail[int, testErr](errA).Get(); ok || v != 0 {
		t.Fatalf("expected (0, false), got: (%v, %v)", v, ok)
	}
}

func TestDone_EmptySuccess(t *testing.T) {
	t.Parallel()
	r := Done[testErr]()
	if !r.IsSuccess() {
		t.Fatalf("expected empty success, got failure: %v", r.Failure())
	}

	f := Fail[Unit, testErr](errA)
	if !f.IsFailure() || f.Failure() != errA {
		t.Fatalf("expected empty-form failure %v, got: success=%v, err=%v", errA, f.IsSuccess(), f.Failure())
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()
	x := 10
	r := FromPtr(&x, errA)
	if !r.IsSuccess() || *r.Value() != 10 {
		t.Fatalf("expected success with pointer to 10, got: success=%v", r.IsSuccess())
	}

	var nilPtr *int
	f := FromPtr(nilPtr, errB)
	if !f.IsFailure() || f.Failure() != errB {
		t.Fatalf("expected failure %v for nil pointer, got: success=%v, err=%v", errB, f.IsSuccess(), f.Failure())
	}
}

func TestFromNillable(t *testing.T) {
	t.Parallel()
	var m map[string]int
	f := FromNillable(m, errA)
	if !f.IsFailure() {
		t.Fatalf("expected failure for nil map")
	}

	r := FromNillable(map[string]int{"a": 1}, errA)
	if !r.IsSuccess() {
		t.Fatalf("expected success for non-nil map, got err: %v", r.Failure())
	}
}

func TestFromCall(t *testing.T) {
	t.Parallel()
	r := FromCall(42, nil)
	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v", r.IsSuccess(), r.Value())
	}
}

func TestStamp_SetOnConstruction(t *testing.T) {
	t.Parallel()
	r := Success[int, testErr](1)
	if r.ID() == uuid.Nil {
		t.Fatalf("expected a non-nil id")
	}
	if r.CreatedAt().IsZero() {
		t.Fatalf("expected a non-zero creation time")
	}
}

func TestStamp_PreservedAcrossPassThrough(t *testing.T) {
	t.Parallel()
	f := Fail[int, testErr](errA)

	mapped := Map(f, func(i int) string { return "x" })
	if mapped.ID() != f.ID() || !mapped.CreatedAt().Equal(f.CreatedAt()) {
		t.Fatalf("failure pass-through must keep the original stamp")
	}
}
