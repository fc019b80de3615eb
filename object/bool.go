package object

import "fmt"

// Bool wraps bool and implements Object. Use the True and False singletons
// via NewBool rather than constructing new values.
type Bool struct {
	value bool
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Inspect() string {
	return fmt.Sprintf("%t", b.value)
}

func (b *Bool) Interface() interface{} {
	return b.value
}

func (b *Bool) String() string {
	return b.Inspect()
}

func (b *Bool) IsTruthy() bool {
	return b.value
}

func (b *Bool) Equals(other Object) bool {
	o, ok := other.(*Bool)
	return ok && b.value == o.value
}

func NewBool(v bool) *Bool {
	if v {
		return True
	}
	return False
}
