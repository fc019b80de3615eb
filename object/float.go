package object

import "strconv"

// Float wraps float64 and implements Object.
type Float struct {
	value float64
}

func (f *Float) Type() Type {
	return FLOAT
}

func (f *Float) Value() float64 {
	return f.value
}

func (f *Float) Inspect() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *Float) Interface() interface{} {
	return f.value
}

func (f *Float) String() string {
	return f.Inspect()
}

func (f *Float) IsTruthy() bool {
	return f.value != 0
}

func (f *Float) Equals(other Object) bool {
	switch o := other.(type) {
	case *Float:
		return f.value == o.value
	case *Int:
		return f.value == float64(o.value)
	}
	return false
}

func NewFloat(v float64) *Float {
	return &Float{value: v}
}
