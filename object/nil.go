package object

// NilType is the nil singleton's type. Use the object.Nil variable rather
// than constructing a NilType.
type NilType struct{}

func (n *NilType) Type() Type {
	return NIL
}

func (n *NilType) Inspect() string {
	return "nil"
}

func (n *NilType) Interface() interface{} {
	return nil
}

func (n *NilType) String() string {
	return "nil"
}

func (n *NilType) IsTruthy() bool {
	return false
}

func (n *NilType) Equals(other Object) bool {
	_, ok := other.(*NilType)
	return ok
}
