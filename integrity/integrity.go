// Package integrity forwards file-verification requests to a verifier
// function registered in a function cache.
//
// The verifier is a host-defined function named "integrity.verify_file"
// taking (path, data) and returning a truthy value when the file passes. A
// Checker may be created before the verifier is defined: it subscribes on
// the name and binds as soon as the function is inserted. While bound, the
// Checker pins the verifier so it cannot be dropped out from under it.
package integrity

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cloudcmds/funcbox"
	"github.com/cloudcmds/funcbox/object"
)

// VerifierName is the cache name of the verifier function.
const VerifierName = "integrity.verify_file"

// KindIntegrity tags the holder the Checker pins the verifier with.
var KindIntegrity = funcbox.RegisterKind("integrity")

// Option configures a Checker.
type Option func(*Checker)

// WithLogger provides a logger for the checker. By default the checker does
// not log.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Checker) {
		c.log = logger
	}
}

// Checker verifies files through the verifier function in a cache. Not safe
// for concurrent use; it follows the cache's single-context contract.
type Checker struct {
	cache  *funcbox.Cache
	entry  *funcbox.Entry
	holder funcbox.Holder
	sub    funcbox.Subscription
	log    zerolog.Logger
}

// NewChecker creates a Checker bound to cache. If the verifier function is
// not cached yet, the Checker subscribes on its name and binds when it
// arrives.
func NewChecker(cache *funcbox.Cache, opts ...Option) (*Checker, error) {
	c := &Checker{cache: cache, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if entry := cache.GetByName(VerifierName); entry != nil {
		if err := c.bind(entry); err != nil {
			return nil, err
		}
		return c, nil
	}
	err := cache.Subscribe(VerifierName, &c.sub, func(_ *funcbox.Subscription, entry *funcbox.Entry) {
		if err := c.bind(entry); err != nil {
			c.log.Error().Err(err).Msg("failed to bind integrity verifier")
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Checker) bind(entry *funcbox.Entry) error {
	if err := c.cache.Pin(entry, &c.holder, KindIntegrity); err != nil {
		return err
	}
	c.entry = entry
	c.log.Debug().Str("name", VerifierName).Uint32("id", entry.ID()).
		Msg("integrity verifier bound")
	return nil
}

// Bound returns true if the verifier function is currently bound.
func (c *Checker) Bound() bool {
	return c.entry != nil
}

// VerifyFile asks the verifier whether the file at path, with the given
// content, passes the integrity check. A nil or empty data slice is passed
// to the verifier as nil. If no verifier is bound yet the check is
// permissive and returns true; if the verifier itself fails, the check
// returns false.
func (c *Checker) VerifyFile(ctx context.Context, path string, data []byte) bool {
	if c.entry == nil {
		c.log.Warn().Str("path", path).
			Msg("integrity verifier not defined, skipping check")
		return true
	}
	var dataArg object.Object = object.Nil
	if len(data) > 0 {
		dataArg = object.NewBytes(data)
	}
	result, err := c.entry.Call(ctx, object.NewString(path), dataArg)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).
			Msg("integrity verifier failed")
		return false
	}
	return result.IsTruthy()
}

// Close releases the Checker's hold on the verifier: the pin is dropped and
// a still-pending subscription is cancelled. The Checker must not be used
// after Close.
func (c *Checker) Close() error {
	if c.sub.Pending() {
		if err := c.cache.Unsubscribe(VerifierName, &c.sub); err != nil {
			return err
		}
	}
	if c.entry != nil {
		if err := c.cache.Unpin(c.entry, &c.holder); err != nil {
			return err
		}
		c.entry = nil
	}
	return nil
}
