// Package outcome provides Outcome, a value that reports success or failure of
// an operation together with an error description, and the combinators used to
// fold several outcomes into one pass/fail decision.
//
// Highlights:
// - Success/Fail/SuccessIf/FailIf: construct *Outcome
// - And/Or: eager selection, returns one of the operands
// - AndAlso/OrElse: short-circuit selection, the second operand is produced lazily
// - All/Any/AllLazy/AnyLazy: left folds over a sequence
//
// Combinators never build a new outcome. And selects the first failed operand
// (or the last one), Or selects the first successful operand (or the last one).
// Passing a nil operand is a programming error and panics with an
// ArgumentError.
//
// The generic combinators accept any Truthy type, so the payload-carrying
// outcomes of package valued use the same plumbing.
package outcome
