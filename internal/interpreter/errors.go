package interpreter

import (
	"errors"
	"fmt"
)

// Errors reported for a single command. Execute wraps exactly one of them,
// so callers can classify a failure with errors.Is. None of them ends a session.
var (
	ErrInvalidIdentifier   = errors.New("invalid variable name")
	ErrUndefinedReference  = errors.New("undefined variable or invalid literal")
	ErrTypeMismatch        = errors.New("operands must be of the same type in an arithmetic operation")
	ErrInvalidOperator     = errors.New("invalid operator")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrMalformedAssignment = errors.New("malformed assignment")
	ErrUnknownCommand      = errors.New("unknown command")
)

// ReadError indicates that the line source failed for a reason other than end of input.
// Besides a cancelled context it is the only failure that stops Run.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
