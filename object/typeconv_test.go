package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/funcbox/errz"
)

func TestAsString(t *testing.T) {
	s, err := AsString(NewString("hi"))
	require.Nil(t, err)
	require.Equal(t, "hi", s)

	s, err = AsString(NewBytes([]byte("hi")))
	require.Nil(t, err)
	require.Equal(t, "hi", s)

	_, err = AsString(NewInt(1))
	require.NotNil(t, err)
	kind, ok := errz.Kind(err)
	require.True(t, ok)
	require.Equal(t, errz.ErrType, kind)
}

func TestAsInt(t *testing.T) {
	n, err := AsInt(NewInt(7))
	require.Nil(t, err)
	require.Equal(t, int64(7), n)

	_, err = AsInt(NewFloat(7))
	require.NotNil(t, err)
}

func TestAsFloat(t *testing.T) {
	f, err := AsFloat(NewFloat(1.5))
	require.Nil(t, err)
	require.Equal(t, 1.5, f)

	f, err = AsFloat(NewInt(2))
	require.Nil(t, err)
	require.Equal(t, 2.0, f)
}

func TestAsBytes(t *testing.T) {
	b, err := AsBytes(NewString("hi"))
	require.Nil(t, err)
	require.Equal(t, []byte("hi"), b)
}

func TestFromGoType(t *testing.T) {
	tests := []struct {
		input interface{}
		want  Object
	}{
		{nil, Nil},
		{true, True},
		{42, NewInt(42)},
		{int64(42), NewInt(42)},
		{1.5, NewFloat(1.5)},
		{"hi", NewString("hi")},
		{[]interface{}{1, "x"}, NewList([]Object{NewInt(1), NewString("x")})},
		{map[string]interface{}{"a": 1.0}, NewMap(map[string]Object{"a": NewFloat(1)})},
	}
	for _, tt := range tests {
		got := FromGoType(tt.input)
		require.True(t, Equals(got, tt.want), "input %v: got %s", tt.input, got.Inspect())
	}
}

func TestFromGoTypeUnsupported(t *testing.T) {
	got := FromGoType(struct{}{})
	_, ok := got.(*Error)
	require.True(t, ok)
}
