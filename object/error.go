package object

import "fmt"

// Error wraps a Go error and implements Object. It is how binding surfaces
// hand a failure back to the scripting side as a value.
type Error struct {
	err error
}

func (e *Error) Type() Type {
	return ERROR
}

func (e *Error) Value() error {
	return e.err
}

func (e *Error) Inspect() string {
	return fmt.Sprintf("error(%s)", e.err.Error())
}

func (e *Error) Interface() interface{} {
	return e.err
}

func (e *Error) String() string {
	return e.Inspect()
}

func (e *Error) IsTruthy() bool {
	return false
}

func (e *Error) Equals(other Object) bool {
	o, ok := other.(*Error)
	return ok && o == e
}

func NewError(err error) *Error {
	return &Error{err: err}
}

func Errorf(format string, args ...interface{}) *Error {
	return &Error{err: fmt.Errorf(format, args...)}
}
