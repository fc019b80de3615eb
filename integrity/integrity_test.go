package integrity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/funcbox"
	"github.com/cloudcmds/funcbox/object"
)

// newVerifier returns a verifier entry that records calls and reports pass
// or fail per the given function.
func newVerifier(id uint32, verdict func(path string, data []byte) bool, calls *int) *funcbox.Entry {
	fn := object.NewBuiltin(VerifierName, func(ctx context.Context, args ...object.Object) (object.Object, error) {
		*calls++
		path, err := object.AsString(args[0])
		if err != nil {
			return nil, err
		}
		var data []byte
		if _, isNil := args[1].(*object.NilType); !isNil {
			if data, err = object.AsBytes(args[1]); err != nil {
				return nil, err
			}
		}
		return object.NewBool(verdict(path, data)), nil
	})
	return funcbox.NewEntry(id, VerifierName, fn)
}

func TestVerifyFileWithBoundVerifier(t *testing.T) {
	cache := funcbox.New()
	calls := 0
	require.Nil(t, cache.Insert(newVerifier(1, func(path string, data []byte) bool {
		return path == "good.txt"
	}, &calls)))

	checker, err := NewChecker(cache)
	require.Nil(t, err)
	require.True(t, checker.Bound())

	require.True(t, checker.VerifyFile(context.Background(), "good.txt", []byte("hello")))
	require.False(t, checker.VerifyFile(context.Background(), "bad.txt", nil))
	require.Equal(t, 2, calls)

	require.Nil(t, checker.Close())
}

func TestCheckerBindsWhenVerifierArrives(t *testing.T) {
	cache := funcbox.New()
	checker, err := NewChecker(cache)
	require.Nil(t, err)
	require.False(t, checker.Bound())

	// Unverified because there is nothing to ask yet.
	require.True(t, checker.VerifyFile(context.Background(), "any.txt", nil))

	calls := 0
	require.Nil(t, cache.Insert(newVerifier(1, func(string, []byte) bool {
		return false
	}, &calls)))
	require.True(t, checker.Bound())

	require.False(t, checker.VerifyFile(context.Background(), "any.txt", nil))
	require.Equal(t, 1, calls)

	require.Nil(t, checker.Close())
}

func TestCheckerPinsVerifier(t *testing.T) {
	cache := funcbox.New()
	calls := 0
	entry := newVerifier(1, func(string, []byte) bool { return true }, &calls)
	require.Nil(t, cache.Insert(entry))

	checker, err := NewChecker(cache)
	require.Nil(t, err)

	kind, pinned := cache.IsPinned(entry)
	require.True(t, pinned)
	require.Equal(t, KindIntegrity, kind)
	require.NotNil(t, cache.Delete(1))

	require.Nil(t, checker.Close())
	require.Nil(t, cache.Delete(1))
}

func TestCheckerCloseCancelsSubscription(t *testing.T) {
	cache := funcbox.New()
	checker, err := NewChecker(cache)
	require.Nil(t, err)
	require.Nil(t, checker.Close())

	// The verifier arriving later must not bind a closed checker.
	calls := 0
	require.Nil(t, cache.Insert(newVerifier(1, func(string, []byte) bool {
		return true
	}, &calls)))
	require.False(t, checker.Bound())
}

func TestVerifierErrorFailsCheck(t *testing.T) {
	cache := funcbox.New()
	fn := object.NewBuiltin(VerifierName, func(ctx context.Context, args ...object.Object) (object.Object, error) {
		return nil, context.Canceled
	})
	require.Nil(t, cache.Insert(funcbox.NewEntry(1, VerifierName, fn)))

	checker, err := NewChecker(cache)
	require.Nil(t, err)
	require.False(t, checker.VerifyFile(context.Background(), "any.txt", nil))
	require.Nil(t, checker.Close())
}
