package object

import (
	"fmt"
	"strings"
)

// List wraps a slice of objects and implements Object.
type List struct {
	items []Object
}

func (l *List) Type() Type {
	return LIST
}

func (l *List) Value() []Object {
	return l.items
}

func (l *List) Size() int {
	return len(l.items)
}

func (l *List) Inspect() string {
	var out strings.Builder
	items := make([]string, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, item.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(items, ", "))
	out.WriteString("]")
	return out.String()
}

func (l *List) Interface() interface{} {
	items := make([]interface{}, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, item.Interface())
	}
	return items
}

func (l *List) String() string {
	return fmt.Sprintf("list(%s)", l.Inspect())
}

func (l *List) IsTruthy() bool {
	return len(l.items) > 0
}

func (l *List) Equals(other Object) bool {
	o, ok := other.(*List)
	if !ok || len(l.items) != len(o.items) {
		return false
	}
	for i, item := range l.items {
		if !item.Equals(o.items[i]) {
			return false
		}
	}
	return true
}

func (l *List) Append(obj Object) {
	l.items = append(l.items, obj)
}

func NewList(items []Object) *List {
	return &List{items: items}
}

// NewStringList creates a List of Strings from the given Go strings.
func NewStringList(s []string) *List {
	items := make([]Object, 0, len(s))
	for _, item := range s {
		items = append(items, NewString(item))
	}
	return &List{items: items}
}
