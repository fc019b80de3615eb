package object

import (
	"fmt"
	"sort"
	"strings"
)

// Map wraps a map of string keys to objects and implements Object.
type Map struct {
	items map[string]Object
}

func (m *Map) Type() Type {
	return MAP
}

func (m *Map) Value() map[string]Object {
	return m.items
}

func (m *Map) Size() int {
	return len(m.items)
}

// Get returns the value stored at key. The second return value is false if
// the key is absent.
func (m *Map) Get(key string) (Object, bool) {
	obj, ok := m.items[key]
	return obj, ok
}

// GetWithDefault returns the value stored at key, or def if absent.
func (m *Map) GetWithDefault(key string, def Object) Object {
	if obj, ok := m.items[key]; ok {
		return obj
	}
	return def
}

func (m *Map) Set(key string, value Object) {
	m.items[key] = value
}

func (m *Map) Delete(key string) {
	delete(m.items, key)
}

// StringKeys returns the map's keys in unspecified order.
func (m *Map) StringKeys() []string {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the map's keys in sorted order.
func (m *Map) SortedKeys() []string {
	keys := m.StringKeys()
	sort.Strings(keys)
	return keys
}

func (m *Map) Inspect() string {
	var out strings.Builder
	out.WriteString("{")
	parts := make([]string, 0, len(m.items))
	for _, k := range m.SortedKeys() {
		parts = append(parts, fmt.Sprintf("%q: %s", k, m.items[k].Inspect()))
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString("}")
	return out.String()
}

func (m *Map) Interface() interface{} {
	result := make(map[string]interface{}, len(m.items))
	for k, v := range m.items {
		result[k] = v.Interface()
	}
	return result
}

func (m *Map) String() string {
	return fmt.Sprintf("map(%s)", m.Inspect())
}

func (m *Map) IsTruthy() bool {
	return len(m.items) > 0
}

func (m *Map) Equals(other Object) bool {
	o, ok := other.(*Map)
	if !ok || len(m.items) != len(o.items) {
		return false
	}
	for k, v := range m.items {
		ov, ok := o.items[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}

func NewMap(items map[string]Object) *Map {
	if items == nil {
		items = map[string]Object{}
	}
	return &Map{items: items}
}
