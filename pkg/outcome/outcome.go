package outcome

import (
	"errors"

	"github.com/google/uuid"
)

// Outcome reports success or failure of an operation. A failed Outcome always
// carries an error description, a successful one never does.
//
// Outcomes are immutable and handled by pointer; combinators return one of
// their operands, so the pointer (or Id) tells which one was selected.
type Outcome struct {
	id               uuid.UUID
	isSuccess        bool
	errorDescription *string
}

func Success() *Outcome {
	return &Outcome{
		id:        uuid.New(),
		isSuccess: true,
	}
}

// Fail returns a failed Outcome. The description is kept as given, an empty
// string is still a present description.
func Fail(errorDescription string) *Outcome {
	return &Outcome{
		id:               uuid.New(),
		isSuccess:        false,
		errorDescription: &errorDescription,
	}
}

// SuccessIf calls predicate once and returns Success if it holds, Fail otherwise.
func SuccessIf(predicate func() bool, errorDescription string) *Outcome {
	if predicate() {
		return Success()
	}
	return Fail(errorDescription)
}

// FailIf calls predicate once and returns Fail if it holds, Success otherwise.
func FailIf(predicate func() bool, errorDescription string) *Outcome {
	if predicate() {
		return Fail(errorDescription)
	}
	return Success()
}

func (o *Outcome) IsSuccess() bool {
	return o.isSuccess
}

func (o *Outcome) IsFailure() bool {
	return !o.isSuccess
}

func (o *Outcome) ErrorDescription() (string, bool) {
	if o.errorDescription == nil {
		return "", false
	}
	return *o.errorDescription, true
}

func (o *Outcome) Id() uuid.UUID {
	return o.id
}

// Err returns nil on success and an error with the description otherwise.
func (o *Outcome) Err() error {
	if desc, ok := o.ErrorDescription(); ok {
		return errors.New(desc)
	}
	return nil
}

func (o *Outcome) String() string {
	if desc, ok := o.ErrorDescription(); ok {
		return "fail: " + desc
	}
	return "success"
}

// And returns o if it failed, otherwise other.
func (o *Outcome) And(other *Outcome) *Outcome {
	return And(o, other)
}

// AndAlso is And with other produced only when o succeeded.
//
//	if v := a.AndAlso(checkB).AndAlso(checkC); v.IsFailure() {
//		// v is the first failed outcome
//	}
func (o *Outcome) AndAlso(other func() *Outcome) *Outcome {
	return AndAlso(o, other)
}

// Or returns o if it succeeded, otherwise other.
func (o *Outcome) Or(other *Outcome) *Outcome {
	return Or(o, other)
}

// OrElse is Or with other produced only when o failed.
func (o *Outcome) OrElse(other func() *Outcome) *Outcome {
	return OrElse(o, other)
}
