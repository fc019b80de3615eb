package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	name string
	link Link[*rec]
}

func collect(h *Head[*rec]) []string {
	var names []string
	h.Each(func(r *rec) bool {
		names = append(names, r.name)
		return true
	})
	return names
}

func TestEmptyHead(t *testing.T) {
	var h Head[*rec]
	require.True(t, h.Empty())
	require.Equal(t, 0, h.Len())
	_, ok := h.Front()
	require.False(t, ok)
}

func TestPushBackOrder(t *testing.T) {
	var h Head[*rec]
	a := &rec{name: "a"}
	b := &rec{name: "b"}
	c := &rec{name: "c"}
	h.PushBack(&a.link, a)
	h.PushBack(&b.link, b)
	h.PushBack(&c.link, c)
	require.Equal(t, []string{"a", "b", "c"}, collect(&h))

	front, ok := h.Front()
	require.True(t, ok)
	require.Equal(t, "a", front.name)
}

func TestRemove(t *testing.T) {
	var h Head[*rec]
	a := &rec{name: "a"}
	b := &rec{name: "b"}
	c := &rec{name: "c"}
	h.PushBack(&a.link, a)
	h.PushBack(&b.link, b)
	h.PushBack(&c.link, c)

	b.link.Remove()
	require.Equal(t, []string{"a", "c"}, collect(&h))
	require.True(t, b.link.Detached())

	a.link.Remove()
	c.link.Remove()
	require.True(t, h.Empty())
}

func TestRemoveDetachedIsNoop(t *testing.T) {
	a := &rec{name: "a"}
	require.True(t, a.link.Detached())
	a.link.Remove()
	require.True(t, a.link.Detached())
}

func TestContains(t *testing.T) {
	var h Head[*rec]
	a := &rec{name: "a"}
	b := &rec{name: "b"}
	h.PushBack(&a.link, a)
	require.True(t, h.Contains(&a.link))
	require.False(t, h.Contains(&b.link))
	a.link.Remove()
	require.False(t, h.Contains(&a.link))
}

func TestEachAllowsSelfRemoval(t *testing.T) {
	var h Head[*rec]
	a := &rec{name: "a"}
	b := &rec{name: "b"}
	c := &rec{name: "c"}
	h.PushBack(&a.link, a)
	h.PushBack(&b.link, b)
	h.PushBack(&c.link, c)

	var visited []string
	h.Each(func(r *rec) bool {
		visited = append(visited, r.name)
		r.link.Remove()
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, visited)
	require.True(t, h.Empty())
}

func TestEachEarlyStop(t *testing.T) {
	var h Head[*rec]
	a := &rec{name: "a"}
	b := &rec{name: "b"}
	h.PushBack(&a.link, a)
	h.PushBack(&b.link, b)

	var visited []string
	h.Each(func(r *rec) bool {
		visited = append(visited, r.name)
		return false
	})
	require.Equal(t, []string{"a"}, visited)
}
