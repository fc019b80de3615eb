package object

import "fmt"

// String wraps string and implements Object.
type String struct {
	value string
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Inspect() string {
	return fmt.Sprintf("%q", s.value)
}

func (s *String) Interface() interface{} {
	return s.value
}

func (s *String) String() string {
	return s.value
}

func (s *String) IsTruthy() bool {
	return s.value != ""
}

func (s *String) Equals(other Object) bool {
	o, ok := other.(*String)
	return ok && s.value == o.value
}

func NewString(s string) *String {
	return &String{value: s}
}
