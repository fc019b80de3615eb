package funcbox

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/cloudcmds/funcbox/errz"
	"github.com/cloudcmds/funcbox/internal/ring"
)

// Cache is a dual-indexed store of function entries. Lookups that find
// nothing return nil; breaking a stated precondition returns a contract
// violation error (errz.ErrContract) and leaves the cache unchanged.
//
// A Cache must not be mutated from more than one goroutine at a time.
type Cache struct {
	byID   map[uint32]*Entry
	byName map[string]*Entry
	subs   map[string]*ring.Head[*Subscription]
	log    zerolog.Logger
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		byID:   map[uint32]*Entry{},
		byName: map[string]*Entry{},
		subs:   map[string]*ring.Head[*Subscription]{},
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Close tears down the cache. Entries that are still pinned are reported,
// one error per entry, aggregated into the returned error; the cache is
// emptied regardless. All other methods must not be called after Close.
func (c *Cache) Close() error {
	var result error
	for _, e := range c.Entries() {
		if kind, pinned := c.IsPinned(e); pinned {
			result = multierror.Append(result, errz.Contractf(
				"function %q (id %d) is still pinned by %s on close",
				e.name, e.id, kind))
		}
	}
	c.byID = map[uint32]*Entry{}
	c.byName = map[string]*Entry{}
	c.subs = map[string]*ring.Head[*Subscription]{}
	return result
}

// Insert adds entry to both indices. Preconditions: no live entry has the
// same id and no live entry has the same name. After indexing, every pending
// subscription on the entry's name fires, in registration order.
func (c *Cache) Insert(entry *Entry) error {
	if existing, ok := c.byID[entry.id]; ok {
		return errz.Contractf("function id %d is already cached (%q)",
			entry.id, existing.name)
	}
	if _, ok := c.byName[entry.name]; ok {
		return errz.Contractf("function name %q is already cached", entry.name)
	}
	c.byID[entry.id] = entry
	c.byName[entry.name] = entry
	c.log.Debug().Uint32("id", entry.id).Str("name", entry.name).
		Msg("function cached")
	c.fire(entry)
	return nil
}

// Delete removes the entry with the given id from both indices. If no such
// entry exists this is a no-op, not an error. Precondition: the entry has no
// holders; check with IsPinned first when in doubt.
func (c *Cache) Delete(id uint32) error {
	entry, ok := c.byID[id]
	if !ok {
		return nil
	}
	if kind, pinned := c.IsPinned(entry); pinned {
		return errz.Contractf("function %q (id %d) is pinned by %s",
			entry.name, entry.id, kind)
	}
	delete(c.byID, id)
	delete(c.byName, entry.name)
	c.log.Debug().Uint32("id", entry.id).Str("name", entry.name).
		Msg("function dropped from cache")
	return nil
}

// Get returns the entry with the given id, or nil if there is none.
func (c *Cache) Get(id uint32) *Entry {
	return c.byID[id]
}

// GetByName returns the entry with the given name, or nil if there is none.
func (c *Cache) GetByName(name string) *Entry {
	return c.byName[name]
}

// Size returns the number of live entries.
func (c *Cache) Size() int {
	return len(c.byID)
}

// Entries returns all live entries ordered by id.
func (c *Cache) Entries() []*Entry {
	entries := make([]*Entry, 0, len(c.byID))
	for _, e := range c.byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].id < entries[j].id
	})
	return entries
}

// Pin attaches holder to entry, tagged with kind. While any holder is
// attached the entry cannot be deleted. Preconditions: the entry is
// currently cached and the holder is not attached to anything.
func (c *Cache) Pin(entry *Entry, holder *Holder, kind Kind) error {
	if c.byID[entry.id] != entry {
		return errz.Contractf("cannot pin function %q (id %d): not cached",
			entry.name, entry.id)
	}
	if holder.Attached() {
		return errz.Contractf("holder (%s) is already attached", holder.kind)
	}
	holder.kind = kind
	entry.holders.PushBack(&holder.link, holder)
	c.log.Debug().Uint32("id", entry.id).Str("name", entry.name).
		Stringer("kind", kind).Msg("function pinned")
	return nil
}

// Unpin detaches holder from entry. Once the last holder is detached the
// entry becomes deletable again. Preconditions: the entry is currently
// cached and the holder is attached to it.
func (c *Cache) Unpin(entry *Entry, holder *Holder) error {
	if c.byID[entry.id] != entry {
		return errz.Contractf("cannot unpin function %q (id %d): not cached",
			entry.name, entry.id)
	}
	if !entry.holders.Contains(&holder.link) {
		return errz.Contractf("holder (%s) is not attached to function %q",
			holder.kind, entry.name)
	}
	holder.link.Remove()
	c.log.Debug().Uint32("id", entry.id).Str("name", entry.name).
		Stringer("kind", holder.kind).Msg("function unpinned")
	return nil
}

// IsPinned reports whether the entry has any holders attached. If it has,
// the returned kind belongs to the earliest still-attached holder, in
// insertion order, so the caller can report what blocks a deletion.
func (c *Cache) IsPinned(entry *Entry) (Kind, bool) {
	holder, ok := entry.holders.Front()
	if !ok {
		return 0, false
	}
	return holder.kind, true
}

// Subscribe registers sub to be notified, once, when a function named name
// is inserted. Preconditions: no live entry currently has the name
// (subscribing on a present name is a contract violation, not a miss) and
// sub is not already registered.
func (c *Cache) Subscribe(name string, sub *Subscription, fn SubscriptionFunc) error {
	if _, ok := c.byName[name]; ok {
		return errz.Contractf("cannot subscribe on %q: function is already cached", name)
	}
	if sub.Pending() {
		return errz.Contractf("subscription on %q is already registered", sub.name)
	}
	sub.name = name
	sub.fn = fn
	head, ok := c.subs[name]
	if !ok {
		head = &ring.Head[*Subscription]{}
		c.subs[name] = head
	}
	head.PushBack(&sub.link, sub)
	c.log.Debug().Str("name", name).Msg("subscribed on function insertion")
	return nil
}

// Unsubscribe removes a pending subscription before it fires. Precondition:
// sub is currently registered under name and has not fired.
func (c *Cache) Unsubscribe(name string, sub *Subscription) error {
	head, ok := c.subs[name]
	if !ok || !head.Contains(&sub.link) {
		return errz.Contractf("subscription on %q is not registered", name)
	}
	sub.link.Remove()
	if head.Empty() {
		delete(c.subs, name)
	}
	c.log.Debug().Str("name", name).Msg("unsubscribed from function insertion")
	return nil
}

// fire notifies every subscription pending on the inserted entry's name, in
// registration order. Each record is unlinked before its callback runs, so
// the callback owns the record from that point and may discard or reuse it.
func (c *Cache) fire(entry *Entry) {
	head, ok := c.subs[entry.name]
	if !ok {
		return
	}
	delete(c.subs, entry.name)
	head.Each(func(sub *Subscription) bool {
		sub.link.Remove()
		fn := sub.fn
		c.log.Debug().Str("name", entry.name).Uint32("id", entry.id).
			Msg("firing function subscription")
		fn(sub, entry)
		return true
	})
}
