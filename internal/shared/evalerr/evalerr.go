// Package evalerr defines the error taxonomy shared by the calculator and
// formatter evaluators.
//
// Every evaluation failure is an *Error carrying a Code. Callers match on the
// code with errors.Is against the exported sentinels:
//
//	if errors.Is(err, evalerr.ErrDivisionByZero) {
//	    ...
//	}
//
// Error() returns only the human-readable message so it can be shown to end
// users as-is.
package evalerr

import (
	"errors"
	"fmt"
)

// Code categorizes evaluation errors.
type Code string

const (
	// CodeInvalidOperation indicates an unknown operation name.
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// CodeInvalidArgument indicates wrong arity or a malformed operand.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeDivisionByZero indicates a zero divisor or percentage total.
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// CodeNegativeDomain indicates a square root of a negative number.
	CodeNegativeDomain Code = "NEGATIVE_DOMAIN"

	// CodeEmptyInput indicates an operation that needs at least one operand.
	CodeEmptyInput Code = "EMPTY_INPUT"
)

// Sentinels for errors.Is matching. They carry no message.
var (
	ErrInvalidOperation = &Error{Code: CodeInvalidOperation}
	ErrInvalidArgument  = &Error{Code: CodeInvalidArgument}
	ErrDivisionByZero   = &Error{Code: CodeDivisionByZero}
	ErrNegativeDomain   = &Error{Code: CodeNegativeDomain}
	ErrEmptyInput       = &Error{Code: CodeEmptyInput}
)

// Error is a deterministic rejection of a single evaluation.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Op is the operation that failed, as given by the caller.
	Op string

	// Message is a human-readable description.
	Message string
}

// New creates an error with a formatted message.
func New(code Code, op, format string, args ...interface{}) *Error {
	return &Error{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf extracts the code from err. Returns an empty code when err is not
// an evaluation error.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UnknownOperation builds the error returned for an unrecognized operation.
func UnknownOperation(op string) *Error {
	return New(CodeInvalidOperation, op, "Unknown operation: %s", op)
}
