// Package ring implements an intrusive circular doubly-linked list.
//
// A Link is embedded in the record that wants list membership and carries a
// typed reference back to its owner; the list head holds the sentinel.
// Insert and remove are O(1) and iteration visits owners in insertion order.
// A record may remove itself while a caller is walking the list, because the
// walker captures the next link before handing control to the owner (see
// Head.Each).
package ring

// Link is one node of a circular doubly-linked list. Embed it by value in
// the record that should be linkable. The zero value is detached.
type Link[T any] struct {
	next, prev *Link[T]
	owner      T
}

// Owner returns the record this link was bound to on insertion.
func (l *Link[T]) Owner() T {
	return l.owner
}

// Detached returns true if the link is not on any list. A zero-value link is
// detached.
func (l *Link[T]) Detached() bool {
	return l.next == nil || l.next == l
}

// Remove unlinks l from its list and leaves it detached. Removing an already
// detached link is a no-op.
func (l *Link[T]) Remove() {
	if l.Detached() {
		l.init()
		return
	}
	l.prev.next = l.next
	l.next.prev = l.prev
	l.init()
}

func (l *Link[T]) init() {
	l.next = l
	l.prev = l
}

// Head is a list head. The zero value is an empty list.
type Head[T any] struct {
	sentinel Link[T]
}

func (h *Head[T]) lazyInit() {
	if h.sentinel.next == nil {
		h.sentinel.init()
	}
}

// Empty returns true if no links are attached to the head.
func (h *Head[T]) Empty() bool {
	return h.sentinel.next == nil || h.sentinel.next == &h.sentinel
}

// PushBack links l at the tail of the list, binding it to owner.
func (h *Head[T]) PushBack(l *Link[T], owner T) {
	h.lazyInit()
	l.owner = owner
	last := h.sentinel.prev
	l.prev = last
	l.next = &h.sentinel
	last.next = l
	h.sentinel.prev = l
}

// Front returns the owner of the first link. The second return value is
// false if the list is empty.
func (h *Head[T]) Front() (T, bool) {
	var zero T
	if h.Empty() {
		return zero, false
	}
	return h.sentinel.next.owner, true
}

// Each walks the list in insertion order, calling fn with every owner. The
// next link is captured before fn runs, so fn may unlink the current record
// without breaking the walk. Returning false stops early.
func (h *Head[T]) Each(fn func(owner T) bool) {
	if h.sentinel.next == nil {
		return
	}
	for l := h.sentinel.next; l != &h.sentinel; {
		next := l.next
		if !fn(l.owner) {
			return
		}
		l = next
	}
}

// Contains reports whether target is currently linked on this list.
func (h *Head[T]) Contains(target *Link[T]) bool {
	if h.sentinel.next == nil {
		return false
	}
	for l := h.sentinel.next; l != &h.sentinel; l = l.next {
		if l == target {
			return true
		}
	}
	return false
}

// Len returns the number of links on the list. O(n); diagnostics only.
func (h *Head[T]) Len() int {
	n := 0
	h.Each(func(T) bool {
		n++
		return true
	})
	return n
}
