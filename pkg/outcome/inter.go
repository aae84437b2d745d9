package outcome

import "github.com/google/uuid"

// Truthy is the boolean view of an outcome: true exactly when it succeeded.
// Short-circuit combinators use it to decide whether the second operand is needed.
type Truthy interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Described defines an interface for outcomes that expose their failure details
type Described interface {
	Truthy
	// ErrorDescription returns the description and true on failure, "" and false on success
	ErrorDescription() (string, bool)
	// Id identifies the instance
	Id() uuid.UUID
}

var (
	_ Described = (*Outcome)(nil)
)
