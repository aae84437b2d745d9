package outcome

// And returns self if it failed, otherwise other. Both operands are already
// evaluated. Folding And left to right yields the first failed operand, or the
// last one when all succeeded.
//
// R is usually *Outcome or *valued.Value[T]; with R = Truthy outcomes of
// different kinds can be combined and the selected operand is returned as is.
func And[R Truthy](self, other R) R {
	panicIfNil(self, "self")
	panicIfNil(other, "other")

	if self.IsSuccess() {
		return other
	}
	return self
}

// Or returns self if it succeeded, otherwise other.
func Or[R Truthy](self, other R) R {
	panicIfNil(self, "self")
	panicIfNil(other, "other")

	if self.IsSuccess() {
		return self
	}
	return other
}

// AndAlso is the short-circuit And: other is called only when self succeeded.
func AndAlso[R Truthy](self R, other func() R) R {
	panicIfNil(self, "self")
	panicIfNil(other, "other")

	if !self.IsSuccess() {
		return self
	}

	next := other()
	panicIfNil(next, "other")
	return next
}

// OrElse is the short-circuit Or: other is called only when self failed.
func OrElse[R Truthy](self R, other func() R) R {
	panicIfNil(self, "self")
	panicIfNil(other, "other")

	if self.IsSuccess() {
		return self
	}

	next := other()
	panicIfNil(next, "other")
	return next
}

// All folds outcomes with And: the first failed one, or the last one.
func All[R Truthy](outcomes ...R) R {
	checkAll(outcomes)

	res := outcomes[0]
	for _, o := range outcomes[1:] {
		res = And(res, o)
	}
	return res
}

// Any folds outcomes with Or: the first successful one, or the last one.
func Any[R Truthy](outcomes ...R) R {
	checkAll(outcomes)

	res := outcomes[0]
	for _, o := range outcomes[1:] {
		res = Or(res, o)
	}
	return res
}

// AllLazy folds producers with AndAlso. Producers after the first failure are
// not called.
func AllLazy[R Truthy](producers ...func() R) R {
	checkAll(producers)

	res := first(producers[0])
	for _, p := range producers[1:] {
		if !res.IsSuccess() {
			break
		}
		res = AndAlso(res, p)
	}
	return res
}

// AnyLazy folds producers with OrElse. Producers after the first success are
// not called.
func AnyLazy[R Truthy](producers ...func() R) R {
	checkAll(producers)

	res := first(producers[0])
	for _, p := range producers[1:] {
		if res.IsSuccess() {
			break
		}
		res = OrElse(res, p)
	}
	return res
}

func first[R Truthy](p func() R) R {
	res := p()
	if IsNil(res) {
		panic(ArgumentError.New("outcome 0 is nil"))
	}
	return res
}

// checkAll rejects an empty sequence and nil elements before anything is
// selected or called.
func checkAll[E any](items []E) {
	if len(items) == 0 {
		panic(ArgumentError.New("empty sequence"))
	}
	for i, item := range items {
		if IsNil(item) {
			panic(ArgumentError.New("outcome %d is nil", i))
		}
	}
}
