package outcome

import "github.com/zeebo/errs"

// ArgumentError is the class of the panic value raised when a combinator or a
// fold receives an absent operand. It marks a programming error, never a
// business failure.
var ArgumentError = errs.Class("invalid argument")

func panicIfNil(v any, name string) {
	if IsNil(v) {
		panic(ArgumentError.New("%s is nil", name))
	}
}
