package valued

import (
	"github.com/google/uuid"

	"github.com/ib-77/resultof/pkg/outcome"
)

// Value is an outcome that also carries a payload. The success flag and
// description live in the wrapped *outcome.Outcome; the payload may be kept on
// failure when it helps the caller diagnose the problem.
type Value[T any] struct {
	state *outcome.Outcome
	value T
}

func Success[T any](value T) *Value[T] {
	return &Value[T]{
		state: outcome.Success(),
		value: value,
	}
}

// Fail returns a failed Value holding the zero value of T.
func Fail[T any](errorDescription string) *Value[T] {
	var zero T
	return FailWith(errorDescription, zero)
}

// FailWith returns a failed Value that still holds value.
func FailWith[T any](errorDescription string, value T) *Value[T] {
	return &Value[T]{
		state: outcome.Fail(errorDescription),
		value: value,
	}
}

// SuccessIf calls predicate(value) once. On false the payload is kept only if
// includeValueOnFailure is set.
func SuccessIf[T any](predicate func(T) bool, value T, errorDescription string,
	includeValueOnFailure bool) *Value[T] {

	if predicate(value) {
		return Success(value)
	}
	return failure(value, errorDescription, includeValueOnFailure)
}

// FailIf is the inverse of SuccessIf.
func FailIf[T any](predicate func(T) bool, value T, errorDescription string,
	includeValueOnFailure bool) *Value[T] {

	if predicate(value) {
		return failure(value, errorDescription, includeValueOnFailure)
	}
	return Success(value)
}

func failure[T any](value T, errorDescription string, includeValue bool) *Value[T] {
	if includeValue {
		return FailWith(errorDescription, value)
	}
	return Fail[T](errorDescription)
}

func (v *Value[T]) Value() T {
	return v.value
}

func (v *Value[T]) IsSuccess() bool {
	return v.state.IsSuccess()
}

func (v *Value[T]) IsFailure() bool {
	return v.state.IsFailure()
}

func (v *Value[T]) ErrorDescription() (string, bool) {
	return v.state.ErrorDescription()
}

func (v *Value[T]) Id() uuid.UUID {
	return v.state.Id()
}

func (v *Value[T]) Err() error {
	return v.state.Err()
}

func (v *Value[T]) String() string {
	return v.state.String()
}

// And returns v if it failed, otherwise other, payload included.
func (v *Value[T]) And(other *Value[T]) *Value[T] {
	return outcome.And(v, other)
}

// AndAlso is And with other produced only when v succeeded.
func (v *Value[T]) AndAlso(other func() *Value[T]) *Value[T] {
	return outcome.AndAlso(v, other)
}

// Or returns v if it succeeded, otherwise other.
func (v *Value[T]) Or(other *Value[T]) *Value[T] {
	return outcome.Or(v, other)
}

// OrElse is Or with other produced only when v failed.
func (v *Value[T]) OrElse(other func() *Value[T]) *Value[T] {
	return outcome.OrElse(v, other)
}

var (
	_ outcome.Described = (*Value[int])(nil)
)
