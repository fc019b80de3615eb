// Package object provides the value types that cross the funcbox binding
// surfaces.
//
// External users will often type assert an object.Object to a specific type:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Int:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string name of
// the object type, such as "string" or "int".
package object

import "context"

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL    Type = "bool"
	BUILTIN Type = "builtin"
	BYTES   Type = "bytes"
	ERROR   Type = "error"
	FLOAT   Type = "float"
	INT     Type = "int"
	LIST    Type = "list"
	MAP     Type = "map"
	NIL     Type = "nil"
	STRING  Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all value types in funcbox implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Returns true if the given object is equal to this object.
	Equals(other Object) bool

	// IsTruthy returns true if the object is considered "truthy".
	IsTruthy() bool
}

// Callable is implemented by objects that may be invoked as a function.
type Callable interface {
	// Call invokes the object with the given arguments.
	Call(ctx context.Context, args ...Object) (Object, error)
}

// Equals reports whether a and b are equal, tolerating nils.
func Equals(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}
