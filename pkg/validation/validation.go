package validation

// Unit is the value type of validations that carry no useful success value, such as a
// check that either passes or reports problems.
type Unit struct{}

// Validation is the accumulating result of a check. It is in exactly one of two states:
//
//   - Failure: an ordered, non-empty collection of Problems. Further independent checks
//     can still run and their problems can be merged with And, AndThen, Sequence and
//     SequenceValues.
//   - Success: exactly one value of type A, meaning no validation problems have been
//     found so far.
//
// The zero value is Success of A's zero value. Validation values are immutable; every
// combinator returns a new value. A fatal failure of the checking process itself is not
// a Validation state — it travels as an ordinary error next to the Validation, see
// ResultMap and Collect.
//
// This leans on the Haskell validation package's Validation type.
type Validation[A any] struct {
	value    A
	problems Problems
	failed   bool
}

// Success creates a successful validation holding value.
func Success[A any](value A) Validation[A] {
	return Validation[A]{value: value}
}

// Valid is shorthand for Success of Unit, for checks without a useful value.
func Valid() Validation[Unit] {
	return Success(Unit{})
}

// Failure creates a failed validation from the given problems. By convention at least
// one problem must be supplied; no combinator ever produces a Failure with an empty
// problem list.
func Failure[A any](problems ...Problem) Validation[A] {
	return Validation[A]{problems: problems, failed: true}
}

// Fail creates a failed validation from a single failure-describing value, converted
// with AsProblem. This is the standard way for a single check to report a failure
// without knowing the surrounding value type:
//
//	return validation.Fail[Header]("missing required field 'name'")
func Fail[A any](cause any) Validation[A] {
	return Failure[A](AsProblem(cause))
}

// IsSuccess reports whether the validation holds a value.
func (v Validation[A]) IsSuccess() bool {
	return !v.failed
}

// IsFailure reports whether the validation holds problems.
func (v Validation[A]) IsFailure() bool {
	return v.failed
}

// Value returns the success value and true, or the zero value and false if the
// validation is a Failure.
func (v Validation[A]) Value() (A, bool) {
	if v.failed {
		var zero A
		return zero, false
	}
	return v.value, true
}

// Problems returns the accumulated problems, or nil if the validation is a Success.
func (v Validation[A]) Problems() Problems {
	if !v.failed {
		return nil
	}
	return v.problems
}

// Err bridges into ordinary Go error handling: it returns nil on Success and the
// accumulated Problems as an error on Failure.
func (v Validation[A]) Err() error {
	if !v.failed {
		return nil
	}
	return v.problems
}

// Map transforms the success value with fn, producing a Validation of the new type. A
// Failure passes through with its problems untouched and fn is never invoked.
func Map[A, B any](v Validation[A], fn func(A) B) Validation[B] {
	if v.failed {
		return Validation[B]{problems: v.problems, failed: true}
	}
	return Success(fn(v.value))
}

// ResultMap chains a validation into further fallible work. The returned error is the
// fatal layer: a non-nil error means the checking process itself broke, independent of
// the input's correctness.
//
// On Failure the same problems are returned without invoking fn, since fn requires a
// valid A. On Success, fn is invoked exactly once and its result is returned verbatim,
// fatal error included. This is how later checks depend on values produced by earlier
// ones while remaining skippable when the earlier checks already failed.
func ResultMap[A, B any](v Validation[A], fn func(A) (Validation[B], error)) (Validation[B], error) {
	if v.failed {
		return Validation[B]{problems: v.problems, failed: true}, nil
	}
	return fn(v.value)
}

// And combines two independently evaluated validations, both of which need to be
// successful for the result to be successful:
//
//   - both Success: Success of combine(left, right)
//   - both Failure: Failure of left's problems followed by right's
//   - one Failure: that side's problems, unchanged
//
// And never short-circuits; both operands have already been fully evaluated by the
// caller. Use it to check two independent conditions and hear about both when both fail.
func And[A, B, C any](left Validation[A], right Validation[B], combine func(A, B) C) Validation[C] {
	switch {
	case left.failed && right.failed:
		merged := make(Problems, 0, len(left.problems)+len(right.problems))
		merged = append(merged, left.problems...)
		merged = append(merged, right.problems...)
		return Validation[C]{problems: merged, failed: true}
	case left.failed:
		return Validation[C]{problems: left.problems, failed: true}
	case right.failed:
		return Validation[C]{problems: right.problems, failed: true}
	default:
		return Success(combine(left.value, right.value))
	}
}

// AndThen is And for a value-free left side: both validations must succeed, the right
// value is kept, and problems accumulate left-then-right. Like And, it never
// short-circuits.
func AndThen[B any](left Validation[Unit], right Validation[B]) Validation[B] {
	return And(left, right, func(_ Unit, b B) B { return b })
}
