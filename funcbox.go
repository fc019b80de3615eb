// Package funcbox implements an in-process catalog of callable function
// objects, indexed by numeric id and by name.
//
// The cache is a pure index: it never owns the function objects it stores.
// Deletion of a cached function is guarded by a pinning mechanism, where any
// subsystem that depends on a function staying cached attaches a tagged
// Holder to it. A one-shot subscription mechanism lets a consumer register
// interest in a function name before that function exists and be notified
// exactly once when it is inserted.
//
// The cache performs no locking. It assumes a single logical execution
// context performs all mutations; a multi-threaded host must serialize
// access before entry.
package funcbox

import "github.com/rs/zerolog"

// Option configures a Cache.
type Option func(*Cache)

// WithLogger provides a logger for the cache's debug events. By default the
// cache does not log.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) {
		c.log = logger
	}
}
