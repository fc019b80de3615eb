package funcbox

import (
	"context"

	"github.com/cloudcmds/funcbox/internal/ring"
	"github.com/cloudcmds/funcbox/object"
)

// Entry wraps an externally-owned callable function object for indexing in a
// Cache. The entry references the function object; it never owns it. Create
// entries with NewEntry and hand them to Cache.Insert.
type Entry struct {
	id      uint32
	name    string
	fn      object.Callable
	holders ring.Head[*Holder]
}

// NewEntry creates an entry wrapping the given function object. The id must
// be unique among live entries, as must the name.
func NewEntry(id uint32, name string, fn object.Callable) *Entry {
	return &Entry{id: id, name: name, fn: fn}
}

// ID returns the entry's numeric identifier.
func (e *Entry) ID() uint32 {
	return e.id
}

// Name returns the entry's name.
func (e *Entry) Name() string {
	return e.name
}

// Callable returns the wrapped function object.
func (e *Entry) Callable() object.Callable {
	return e.fn
}

// Call invokes the wrapped function object.
func (e *Entry) Call(ctx context.Context, args ...object.Object) (object.Object, error) {
	return e.fn.Call(ctx, args...)
}

// Pinned returns true if at least one holder is attached to the entry.
func (e *Entry) Pinned() bool {
	return !e.holders.Empty()
}

// HolderCount returns the number of holders attached to the entry. O(k);
// diagnostics only.
func (e *Entry) HolderCount() int {
	return e.holders.Len()
}
