// Package errz defines the error kinds used across funcbox.
//
// Two classes of outcome are distinguished everywhere in this module: a
// normal miss (a lookup that finds nothing) is signaled by a nil result and
// is never an error, while a contract violation (a caller breaking a stated
// precondition) is a distinct error kind that must never be silently ignored.
package errz

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrContract indicates a caller precondition failure, such as deleting
	// a pinned function or subscribing on a name that is already cached.
	ErrContract ErrorKind = iota
	// ErrIllegalParams indicates malformed input supplied to a binding
	// surface, such as a URI table of the wrong shape.
	ErrIllegalParams
	// ErrType indicates a type mismatch or invalid operation on a type.
	ErrType
	// ErrValue indicates an invalid value for an operation.
	ErrValue
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrContract:
		return "contract violation"
	case ErrIllegalParams:
		return "illegal params"
	case ErrType:
		return "type error"
	case ErrValue:
		return "value error"
	default:
		return "error"
	}
}

// Error is a categorized error with an optional underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error of the given kind.
func New(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind that wraps a cause.
func Wrap(kind ErrorKind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Contractf creates a contract violation error.
func Contractf(format string, args ...interface{}) *Error {
	return Newf(ErrContract, format, args...)
}

// IllegalParamsf creates an illegal params error.
func IllegalParamsf(format string, args ...interface{}) *Error {
	return Newf(ErrIllegalParams, format, args...)
}

// TypeErrorf creates a type error.
func TypeErrorf(format string, args ...interface{}) *Error {
	return Newf(ErrType, format, args...)
}

// ValueErrorf creates a value error.
func ValueErrorf(format string, args ...interface{}) *Error {
	return Newf(ErrValue, format, args...)
}

// Kind returns the kind of err if it is (or wraps) an *Error. The second
// return value reports whether a kind was found.
func Kind(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsContract returns true if err is (or wraps) a contract violation.
func IsContract(err error) bool {
	k, ok := Kind(err)
	return ok && k == ErrContract
}

// IsIllegalParams returns true if err is (or wraps) an illegal params error.
func IsIllegalParams(err error) bool {
	k, ok := Kind(err)
	return ok && k == ErrIllegalParams
}
