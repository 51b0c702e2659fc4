package validation

// SequenceValues combines any number of independently evaluated validations into one.
// All of them need to be successful for the result to be successful, in which case the
// result holds each value in its original position (an empty input yields Success of an
// empty slice). Otherwise the result is a Failure holding the problems of every failing
// element concatenated in original order; successful elements contribute nothing.
//
// This generalises And to N independent checks, e.g. checking every file in a
// directory and reporting the union of all problems found rather than stopping at the
// first.
func SequenceValues[A any](vs ...Validation[A]) Validation[[]A] {
	anyFailed := false
	problemCount := 0
	for i := range vs {
		if vs[i].failed {
			anyFailed = true
			problemCount += len(vs[i].problems)
		}
	}

	if anyFailed {
		// Failures are expected to be rare, so a single pre-sized destination keeps
		// the common path allocation-light.
		problems := make(Problems, 0, problemCount)
		for i := range vs {
			if vs[i].failed {
				problems = append(problems, vs[i].problems...)
			}
		}
		return Validation[[]A]{problems: problems, failed: true}
	}

	values := make([]A, len(vs))
	for i := range vs {
		values[i] = vs[i].value
	}
	return Success(values)
}

// Sequence is SequenceValues for value-free validations: every problem of every failing
// element is kept, in order, and the success payload is discarded.
func Sequence(vs ...Validation[Unit]) Validation[Unit] {
	return Map(SequenceValues(vs...), func([]Unit) Unit { return Unit{} })
}

// Collect applies fn to every item in order and materialises the results into a slice.
// Unlike the Validation combinators it is not accumulating: the first fatal error aborts
// collection and is returned immediately, because a fatal error means the checking
// process itself is broken and running the remaining work serves no purpose.
func Collect[T, A any](items []T, fn func(T) (A, error)) ([]A, error) {
	values := make([]A, len(items))
	for i := range items {
		value, err := fn(items[i])
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}
