package engine

import "errors"

var (
	// ErrSyntax is returned for malformed input: empty expressions,
	// unbalanced parentheses, unknown tokens or names.
	ErrSyntax = errors.New("syntax error")
	// ErrDivideByZero is returned when a division has an exactly-zero
	// divisor. The evaluator never yields ±Inf for it.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrDomain is returned when a function argument is outside the
	// function's domain (log of a non-positive value, sqrt of a negative,
	// asin/acos outside [-1,1], factorial of a non-integer).
	ErrDomain = errors.New("domain error")
	// ErrOverflow is returned when a finite computation produces a value
	// outside the representable range.
	ErrOverflow = errors.New("overflow")
)

// ErrorText converts an evaluation error into the TI-84 style message shown
// on the display surface.
func ErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDivideByZero):
		return "ERROR: DIVIDE BY 0"
	case errors.Is(err, ErrDomain):
		return "ERROR: MATH"
	case errors.Is(err, ErrOverflow):
		return "ERROR: OVERFLOW"
	default:
		return "ERROR: SYNTAX"
	}
}
