package validation

import (
	"fmt"
	"strings"
)

// Problem is an opaque, immutable unit describing one way the validated input failed a
// check. The package imposes no structure beyond a human-readable message; the domain
// that produces problems decides what goes into it.
type Problem struct {
	message string
}

// NewProblem creates a Problem from a plain message.
func NewProblem(message string) Problem {
	return Problem{message: message}
}

// Problemf creates a Problem from a format string, fmt.Sprintf style.
func Problemf(format string, args ...any) Problem {
	return Problem{message: fmt.Sprintf(format, args...)}
}

// ProblemFromError creates a Problem carrying the error's message. The error must be
// non-nil.
func ProblemFromError(err error) Problem {
	return Problem{message: err.Error()}
}

// String returns the problem's message.
func (p Problem) String() string {
	return p.message
}

// AsProblem converts any failure-describing value into a Problem. Problems pass through
// unchanged; errors and fmt.Stringers contribute their message; anything else is
// formatted with the %v verb.
func AsProblem(cause any) Problem {
	switch c := cause.(type) {
	case Problem:
		return c
	case error:
		return ProblemFromError(c)
	case fmt.Stringer:
		return Problem{message: c.String()}
	case string:
		return NewProblem(c)
	default:
		return Problemf("%v", c)
	}
}

// Problems is an ordered collection of validation problems. Order is always the order in
// which problems were accumulated; duplicates are kept.
type Problems []Problem

// Error implements the error interface with a single joined message.
func (ps Problems) Error() string {
	if len(ps) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(ps.Strings(), "; ")
}

// Strings returns the message of each problem, preserving order.
func (ps Problems) Strings() []string {
	messages := make([]string, len(ps))
	for i, p := range ps {
		messages[i] = p.message
	}
	return messages
}
