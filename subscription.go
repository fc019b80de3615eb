package funcbox

import "github.com/cloudcmds/funcbox/internal/ring"

// SubscriptionFunc is called when the awaited function is inserted into the
// cache. The callback receives its own subscription record and the new
// entry. The callback may reinitialize or discard the record; the cache does
// not touch the record after invoking the callback.
type SubscriptionFunc func(sub *Subscription, entry *Entry)

// Subscription is a one-shot request to be notified when a function with a
// given name is inserted into the cache. The record is owned by the waiting
// subsystem; the cache only links and unlinks it. A zero-value Subscription
// is ready to be passed to Cache.Subscribe, and a fired or cancelled record
// must not be reused without passing it to Subscribe again.
type Subscription struct {
	name string
	fn   SubscriptionFunc
	link ring.Link[*Subscription]
}

// Name returns the function name the subscription is waiting on.
func (s *Subscription) Name() string {
	return s.name
}

// Pending returns true if the subscription is registered and has not yet
// fired or been cancelled.
func (s *Subscription) Pending() bool {
	return !s.link.Detached()
}
