package ctxt

import (
	"github.com/gencore/gencam/cache"
	"github.com/gencore/gencam/value"
)

// Ctxt is the per-call cursor capability methods receive: a value.Store and
// a cache.Store[K] held by reference, never owned or copied. Exactly one
// Ctxt exists per logical device session; it carries no lock or channel of
// its own, so no suspension point may occur while a Ctxt method runs (the
// suspension points (Device I/O, memory-lock acquisition) live one level
// up, in code that also holds a Device and a memevent.Handler).
//
// Not safe for concurrent use: one goroutine owns a Ctxt for the duration
// of a logical device session.
type Ctxt[K comparable] struct {
	values value.Store
	caches cache.Store[K]
}

// New constructs a Ctxt over the given value and cache stores.
func New[K comparable](values value.Store, caches cache.Store[K]) *Ctxt[K] {
	return &Ctxt[K]{values: values, caches: caches}
}

// Values returns the bound value.Store.
func (c *Ctxt[K]) Values() value.Store { return c.values }

// Caches returns the bound cache.Store.
func (c *Ctxt[K]) Caches() cache.Store[K] { return c.caches }

// InvalidateCacheOf clears id's own cache entries.
func (c *Ctxt[K]) InvalidateCacheOf(id K) { c.caches.InvalidateOf(id) }

// InvalidateCacheBy clears the cache of every node that depends on id.
// Capability methods call this before a value write takes effect, so a
// dependent never serves bytes that predate the write.
func (c *Ctxt[K]) InvalidateCacheBy(id K) { c.caches.InvalidateBy(id) }
