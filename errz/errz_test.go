package errz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrContract, "contract violation"},
		{ErrIllegalParams, "illegal params"},
		{ErrType, "type error"},
		{ErrValue, "value error"},
		{ErrorKind(99), "error"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}
}

func TestErrorMessage(t *testing.T) {
	err := Contractf("function %q is pinned by %s", "sum", "constraint")
	require.Equal(t, `contract violation: function "sum" is pinned by constraint`, err.Error())
}

func TestKind(t *testing.T) {
	err := IllegalParamsf("bad uri")
	kind, ok := Kind(err)
	require.True(t, ok)
	require.Equal(t, ErrIllegalParams, kind)

	_, ok = Kind(errors.New("plain"))
	require.False(t, ok)
}

func TestKindThroughWrapping(t *testing.T) {
	inner := Contractf("pinned")
	wrapped := fmt.Errorf("delete failed: %w", inner)
	require.True(t, IsContract(wrapped))
	require.False(t, IsIllegalParams(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("bad body")
	err := Wrap(ErrValue, cause, "cannot compile")
	require.ErrorIs(t, err, cause)
	kind, ok := Kind(err)
	require.True(t, ok)
	require.Equal(t, ErrValue, kind)
}
