package uri

import (
	"strconv"

	"github.com/cloudcmds/funcbox/errz"
	"github.com/cloudcmds/funcbox/object"
)

// paramValue renders one query parameter value. Strings and numbers are the
// only scalar types a parameter accepts.
func paramValue(obj object.Object) (string, error) {
	switch obj := obj.(type) {
	case *object.String:
		return obj.Value(), nil
	case *object.Int:
		return obj.Inspect(), nil
	case *object.Float:
		return strconv.FormatFloat(obj.Value(), 'f', -1, 64), nil
	default:
		return "", errz.IllegalParamsf("Incorrect type for URI query " +
			"parameter value: should be string or number")
	}
}

// addParamFromObject adds the query parameter name with the given value,
// which may be a scalar or a list of scalars.
func addParamFromObject(u *URI, name string, value object.Object, overwrite bool) error {
	if overwrite {
		u.Params.Del(name)
	} else if len(u.Params[name]) != 0 {
		return nil
	}
	switch value := value.(type) {
	case *object.String, *object.Int, *object.Float:
		v, err := paramValue(value)
		if err != nil {
			return err
		}
		u.Params.Add(name, v)
	case *object.List:
		for _, item := range value.Value() {
			v, err := paramValue(item)
			if err != nil {
				return err
			}
			u.Params.Add(name, v)
		}
	default:
		return errz.IllegalParamsf("Incorrect type for URI query " +
			"parameter: should be string, number or list")
	}
	return nil
}

// addParamsFromObject merges a map of query parameters into u. A Nil object
// is accepted and adds nothing.
func addParamsFromObject(u *URI, params object.Object, overwrite bool) error {
	if _, ok := params.(*object.NilType); ok || params == nil {
		return nil
	}
	m, ok := params.(*object.Map)
	if !ok {
		return errz.IllegalParamsf("Incorrect type for URI query " +
			"parameters: should be a map")
	}
	for _, name := range m.SortedKeys() {
		value, _ := m.Get(name)
		if err := addParamFromObject(u, name, value, overwrite); err != nil {
			return err
		}
	}
	return nil
}

// fromMap builds a single URI from its map form: {uri: string, params: map}.
func fromMap(m *object.Map) (*URI, error) {
	if _, ok := m.Get("default_params"); ok {
		return nil, errz.IllegalParamsf("Default URI query parameters are " +
			"not allowed for single URI")
	}
	uriObj, ok := m.Get("uri")
	if !ok {
		return nil, errz.IllegalParamsf("Invalid URI map: " +
			"expected {uri = string, params = map}")
	}
	s, err := object.AsString(uriObj)
	if err != nil {
		return nil, errz.IllegalParamsf("Incorrect type for URI in nested " +
			"map: should be a string")
	}
	u, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if params, ok := m.Get("params"); ok {
		if err := addParamsFromObject(u, params, true); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// FromObject builds a single URI from a scripting value: a string, a map of
// the form {uri: string, params: map}, or nil (an empty URI).
func FromObject(obj object.Object) (*URI, error) {
	switch obj := obj.(type) {
	case nil, *object.NilType:
		return &URI{Params: map[string][]string{}}, nil
	case *object.String:
		return Parse(obj.Value())
	case *object.Map:
		return fromMap(obj)
	default:
		return nil, errz.IllegalParamsf("Incorrect type for URI: " +
			"should be string, map or nil")
	}
}

// setFromMap builds a multi-URI set from its map form:
// {uris: list, default_params: map}. The single-URI map form is also
// accepted and produces a one-element set.
func setFromMap(m *object.Map) (*Set, error) {
	urisObj, ok := m.Get("uris")
	if !ok {
		u, err := fromMap(m)
		if err != nil {
			return nil, err
		}
		return &Set{URIs: []*URI{u}}, nil
	}
	if _, ok := m.Get("uri"); ok {
		return nil, errz.IllegalParamsf("Invalid URI map: expected " +
			"{uri = string, params = map} or {uris = list, default_params = map}")
	}
	if _, ok := m.Get("params"); ok {
		return nil, errz.IllegalParamsf("URI query parameters are " +
			"not allowed for multiple URIs")
	}
	uris, err := object.AsList(urisObj)
	if err != nil {
		return nil, errz.IllegalParamsf("Incorrect type for URI list: " +
			"should be a list")
	}
	set := &Set{}
	for _, item := range uris.Value() {
		u, err := FromObject(item)
		if err != nil {
			return nil, err
		}
		set.Add(u)
	}
	if defaults, ok := m.Get("default_params"); ok {
		for _, u := range set.URIs {
			// Defaults never overwrite parameters a member already has.
			if err := addParamsFromObject(u, defaults, false); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

// SetFromObject builds a URI set from a scripting value: a string or map
// (one URI), a list of strings/maps, a map of the form
// {uris: list, default_params: map}, or nil (an empty set).
func SetFromObject(obj object.Object) (*Set, error) {
	switch obj := obj.(type) {
	case nil, *object.NilType:
		return &Set{}, nil
	case *object.String:
		u, err := Parse(obj.Value())
		if err != nil {
			return nil, err
		}
		return &Set{URIs: []*URI{u}}, nil
	case *object.List:
		set := &Set{}
		for _, item := range obj.Value() {
			u, err := FromObject(item)
			if err != nil {
				return nil, err
			}
			set.Add(u)
		}
		return set, nil
	case *object.Map:
		return setFromMap(obj)
	default:
		return nil, errz.IllegalParamsf("Incorrect type for URI: " +
			"should be string, map, list or nil")
	}
}
