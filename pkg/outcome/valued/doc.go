// Package valued contains Value[T], the payload-carrying outcome. It shares
// the success/description state and the combinator plumbing of package
// outcome, and keeps the payload of whichever operand a combinator selects.
package valued
