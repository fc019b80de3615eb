package object

import (
	"github.com/cloudcmds/funcbox/errz"
)

func AsBool(obj Object) (bool, error) {
	b, ok := obj.(*Bool)
	if !ok {
		return false, errz.TypeErrorf("expected a bool (got %v)", obj.Type())
	}
	return b.value, nil
}

func AsString(obj Object) (string, error) {
	switch obj := obj.(type) {
	case *String:
		return obj.value, nil
	case *Bytes:
		return string(obj.value), nil
	default:
		return "", errz.TypeErrorf("expected a string (got %v)", obj.Type())
	}
}

func AsInt(obj Object) (int64, error) {
	i, ok := obj.(*Int)
	if !ok {
		return 0, errz.TypeErrorf("expected an int (got %v)", obj.Type())
	}
	return i.value, nil
}

func AsFloat(obj Object) (float64, error) {
	switch obj := obj.(type) {
	case *Int:
		return float64(obj.value), nil
	case *Float:
		return obj.value, nil
	default:
		return 0, errz.TypeErrorf("expected a number (got %v)", obj.Type())
	}
}

func AsBytes(obj Object) ([]byte, error) {
	switch obj := obj.(type) {
	case *Bytes:
		return obj.value, nil
	case *String:
		return []byte(obj.value), nil
	default:
		return nil, errz.TypeErrorf("expected bytes (got %v)", obj.Type())
	}
}

func AsList(obj Object) (*List, error) {
	l, ok := obj.(*List)
	if !ok {
		return nil, errz.TypeErrorf("expected a list (got %v)", obj.Type())
	}
	return l, nil
}

func AsMap(obj Object) (*Map, error) {
	m, ok := obj.(*Map)
	if !ok {
		return nil, errz.TypeErrorf("expected a map (got %v)", obj.Type())
	}
	return m, nil
}

// FromGoType converts a native Go value produced by encoding/json style
// decoding into the corresponding Object. Returns an *Error object for
// unsupported types.
func FromGoType(obj interface{}) Object {
	switch obj := obj.(type) {
	case nil:
		return Nil
	case bool:
		return NewBool(obj)
	case int:
		return NewInt(int64(obj))
	case int32:
		return NewInt(int64(obj))
	case int64:
		return NewInt(obj)
	case float32:
		return NewFloat(float64(obj))
	case float64:
		return NewFloat(obj)
	case string:
		return NewString(obj)
	case []byte:
		return NewBytes(obj)
	case []interface{}:
		items := make([]Object, 0, len(obj))
		for _, item := range obj {
			items = append(items, FromGoType(item))
		}
		return NewList(items)
	case map[string]interface{}:
		items := make(map[string]Object, len(obj))
		for k, v := range obj {
			items[k] = FromGoType(v)
		}
		return NewMap(items)
	default:
		return Errorf("type error: unsupported type (%T)", obj)
	}
}
