package outcome

import (
	"time"

	"github.com/google/uuid"
)

type state uint8

const (
	stateSuccess state = iota + 1
	stateFailure
)

// Result holds exactly one of a success value T or a failure value E.
// The discriminant is set once by a constructor and never changes; the
// inactive payload is unreachable through the exported surface.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	state     state
}

// Unit is the payload of operations that succeed without a value.
type Unit struct{}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		state:     stateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		state:     stateFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Done builds the empty success for operations with no meaningful payload.
// The failed empty form is Fail[Unit, E].
func Done[E any]() Result[Unit, E] {
	return Success[Unit, E](Unit{})
}

// FromPtr is the sanctioned bridge from a nullable pointer into the algebra:
// nil becomes Fail(e), anything else Success(p).
func FromPtr[T, E any](p *T, e E) Result[*T, E] {
	if p == nil {
		return Fail[*T, E](e)
	}
	return Success[*T, E](p)
}

// FromNillable is FromPtr for values whose type hides its nilability
// (interfaces, maps, slices, functions, channels).
func FromNillable[T, E any](v T, e E) Result[T, E] {
	if IsNil(v) {
		return Fail[T, E](e)
	}
	return Success[T, E](v)
}

// FromCall bridges Go's (T, error) convention into the algebra.
func FromCall[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Fail[T, error](err)
	}
	return Success[T, error](v)
}

// failFrom carries a failure across a success-type change, keeping the
// original stamp.
func failFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		state:     stateFailure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// successFrom carries a success across a failure-type change, keeping the
// original stamp.
func successFrom[T, E, F any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		state:     stateSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success payload, or the zero value of T when the result
// is not a success.
func (r Result[T, E]) Value() T {
	if r.state != stateSuccess {
		var zero T
		return zero
	}
	return r.value
}

// Failure returns the failure payload, or the zero value of E when the
// result is not a failure.
func (r Result[T, E]) Failure() E {
	if r.state != stateFailure {
		var zero E
		return zero
	}
	return r.err
}

// Get returns the success payload together with the discriminant.
func (r Result[T, E]) Get() (T, bool) {
	return r.Value(), r.IsSuccess()
}

func (r Result[T, E]) IsSuccess() bool {
	return r.state == stateSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return r.state == stateFailure
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}
