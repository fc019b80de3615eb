package object

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		obj  Object
		want string
	}{
		{NewString("hello"), `"hello"`},
		{NewInt(42), "42"},
		{NewFloat(1.5), "1.5"},
		{True, "true"},
		{False, "false"},
		{Nil, "nil"},
		{NewBytes([]byte("ab")), `bytes("ab")`},
		{NewList([]Object{NewInt(1), NewString("x")}), `[1, "x"]`},
		{NewMap(map[string]Object{"b": NewInt(2), "a": NewInt(1)}), `{"a": 1, "b": 2}`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.obj.Inspect())
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		obj  Object
		want bool
	}{
		{NewString(""), false},
		{NewString("x"), true},
		{NewInt(0), false},
		{NewInt(-1), true},
		{NewFloat(0), false},
		{True, true},
		{False, false},
		{Nil, false},
		{NewList(nil), false},
		{NewList([]Object{Nil}), true},
		{NewMap(nil), false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.obj.IsTruthy(), tt.obj.Inspect())
	}
}

func TestEquals(t *testing.T) {
	require.True(t, NewString("a").Equals(NewString("a")))
	require.False(t, NewString("a").Equals(NewString("b")))
	require.False(t, NewString("1").Equals(NewInt(1)))
	require.True(t, NewInt(1).Equals(NewFloat(1)))
	require.True(t, Nil.Equals(Nil))
	require.True(t, NewList([]Object{NewInt(1)}).Equals(NewList([]Object{NewInt(1)})))
	require.False(t, NewList([]Object{NewInt(1)}).Equals(NewList(nil)))
	require.True(t, NewMap(map[string]Object{"a": NewInt(1)}).
		Equals(NewMap(map[string]Object{"a": NewInt(1)})))
}

func TestBuiltinCall(t *testing.T) {
	b := NewBuiltin("upper", func(ctx context.Context, args ...Object) (Object, error) {
		return NewString("HELLO"), nil
	})
	require.Equal(t, BUILTIN, b.Type())
	require.Equal(t, "upper", b.Name())
	require.Equal(t, "builtin(upper)", b.Inspect())

	got, err := b.Call(context.Background())
	require.Nil(t, err)
	require.Equal(t, NewString("HELLO"), got)
}

func TestNewBoolReturnsSingletons(t *testing.T) {
	require.Same(t, True, NewBool(true))
	require.Same(t, False, NewBool(false))
}
