package field

import "errors"

var (
	// ErrDivisionByZero is returned by Inv and Div when the operand's
	// relevant invariant (numerator, field norm, or value) is exactly zero.
	ErrDivisionByZero = errors.New("field: division by zero")
)
