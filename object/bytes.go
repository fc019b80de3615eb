package object

import (
	"bytes"
	"fmt"
)

// Bytes wraps []byte and implements Object.
type Bytes struct {
	value []byte
}

func (b *Bytes) Type() Type {
	return BYTES
}

func (b *Bytes) Value() []byte {
	return b.value
}

func (b *Bytes) Inspect() string {
	return fmt.Sprintf("bytes(%q)", string(b.value))
}

func (b *Bytes) Interface() interface{} {
	return b.value
}

func (b *Bytes) String() string {
	return string(b.value)
}

func (b *Bytes) IsTruthy() bool {
	return len(b.value) > 0
}

func (b *Bytes) Equals(other Object) bool {
	o, ok := other.(*Bytes)
	return ok && bytes.Equal(b.value, o.value)
}

func NewBytes(v []byte) *Bytes {
	return &Bytes{value: v}
}
