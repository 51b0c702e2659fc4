// Package validation provides an accumulating validation result type and the combinators
// needed to run many independent checks against an input and report every problem found,
// instead of stopping at the first one.
//
// The package is centred around the generic type Validation that is in exactly one of two
// states: Success, holding the (possibly intermediate) value of a check that found nothing
// wrong, or Failure, holding an ordered list of Problems. Combinators such as And,
// Sequence and SequenceValues merge independent validations so that the problems of every
// failing operand are preserved in order, which is what makes the type accumulating.
//
// A second, disjoint error taxonomy covers fatal failures: errors unrelated to the
// correctness of the input being validated, such as inability to read a required resource.
// Fatal failures are ordinary Go errors. They are never folded into a Validation; they
// short-circuit through ResultMap and Collect, while validation problems never
// short-circuit independent checks.
//
// # Architecture
//
// Validation is an immutable two-state container with an explicit discriminant, so a
// value can never hold problems and a success value at the same time. All combinators
// consume their operands and return a new value; nothing is mutated in place. Because Go
// methods cannot introduce type parameters, the transforming combinators (Map, ResultMap,
// And, AndThen, Sequence, SequenceValues) are package-level generic functions. The
// package holds no global state and is safe for concurrent use: independent checks may
// run on separate goroutines and hand their results to a combinator afterwards.
//
// Core building blocks:
//   - Problem    – opaque unit describing one way the input failed a check
//   - Problems   – ordered slice of Problem that implements the error interface
//   - Validation – accumulating Success/Failure result of a check
//   - Unit       – empty value type for validations that carry no useful value
//
// # Usage
//
//	import "github.com/dmitrymomot/validation/pkg/validation"
//
//	func checkName(name string) validation.Validation[validation.Unit] {
//	    if strings.ContainsRune(name, ' ') {
//	        return validation.Fail[validation.Unit]("name must not contain spaces")
//	    }
//	    return validation.Valid()
//	}
//
//	result := validation.Sequence(
//	    checkName(pkg.Name),
//	    checkExtension(pkg.File),
//	    checkOwner(pkg.Owner),
//	)
//	if err := result.Err(); err != nil {
//	    // err lists every problem found, not just the first
//	    return err
//	}
//
// Checks that depend on a value produced by an earlier check chain through ResultMap,
// which skips the dependent check when the earlier one already failed and propagates
// fatal errors unchanged:
//
//	parsed := parseHeader(input) // Validation[Header]
//	outcome, err := validation.ResultMap(parsed, func(h Header) (validation.Validation[Report], error) {
//	    return checkBody(h) // may also fail fatally, e.g. on I/O
//	})
//	if err != nil {
//	    return err // fatal: the checking process itself is broken
//	}
//
// # Error Handling
//
// Validation problems and fatal failures never mix. Problems implements the error
// interface so an accumulated Failure can be returned up an ordinary Go call stack via
// Err, but individual problems are values, not errors, and are always collected rather
// than surfaced singly. Fatal failures are plain error values returned alongside a
// Validation; Collect aborts at the first one because accumulating broken-process errors
// serves no purpose.
//
// # Performance Considerations
//
// All combinators are simple value transformations. Problem slices are only copied when
// two failing operands are concatenated; a passed-through Failure shares its slice with
// the input. SequenceValues sizes its destination slice up front, so combining N checks
// costs at most one allocation for the problems and one for the values.
package validation
