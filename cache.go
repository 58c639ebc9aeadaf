package funcz

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the storage contract of the Memoizer. A cache maps derived keys
// to previously computed results; for a given key it holds at most one
// entry, and a Lookup hit guarantees the wrapped callable is not
// re-invoked.
//
// Callers may supply their own Cache to share entries between wrappers or
// to impose an eviction policy; the toolkit-allocated default is an
// unbounded map that lives and dies with the wrapper.
type Cache interface {
	// Lookup returns the stored value for key and whether one exists.
	Lookup(key any) (any, bool)

	// Store records value under key, replacing any previous entry.
	Store(key any, value any)
}

// mapCache is the default unbounded, unsynchronized cache.
type mapCache map[any]any

// NewMapCache returns the toolkit's default cache: an unbounded map with no
// eviction and no internal locking. Safe for the single-threaded synchronous
// use the toolkit is designed around; for shared use across goroutines, wrap
// it in NewLockedCache or enable Memo's WithLocking.
func NewMapCache() Cache {
	return make(mapCache)
}

func (c mapCache) Lookup(key any) (any, bool) {
	v, ok := c[key]
	return v, ok
}

func (c mapCache) Store(key, value any) {
	c[key] = value
}

// lockedCache guards an inner Cache with a mutex.
type lockedCache struct {
	inner Cache
	mu    sync.Mutex
}

// NewLockedCache wraps a Cache with a mutex, making Lookup and Store safe
// for concurrent use. Note that locking at the cache level alone does not
// prevent duplicate computation on a concurrent miss; Memo's WithLocking
// provides the at-most-once guarantee.
func NewLockedCache(inner Cache) Cache {
	return &lockedCache{inner: inner}
}

func (c *lockedCache) Lookup(key any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Lookup(key)
}

func (c *lockedCache) Store(key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Store(key, value)
}

// ttlCache adapts patrickmn/go-cache as a Cache with entry expiry.
type ttlCache struct {
	inner *gocache.Cache
}

// NewTTLCache returns a Cache whose entries expire after defaultTTL, swept
// every cleanupInterval. It adapts the patrickmn/go-cache store, giving
// memoized callables an external eviction policy without the wrapper
// knowing about it.
//
// go-cache keys are strings: string keys (such as those produced by
// HashKey) are used directly, any other key is rendered with %#v. Pair
// TTLCache with a string-producing KeyFunc when key fidelity matters.
//
// Example:
//
//	memo := funcz.NewMemo("geo-lookup", lookup).
//	    WithKeyFunc(funcz.HashKey).
//	    WithCache(funcz.NewTTLCache(5*time.Minute, time.Minute))
func NewTTLCache(defaultTTL, cleanupInterval time.Duration) Cache {
	return &ttlCache{inner: gocache.New(defaultTTL, cleanupInterval)}
}

func (c *ttlCache) Lookup(key any) (any, bool) {
	return c.inner.Get(cacheKeyString(key))
}

func (c *ttlCache) Store(key, value any) {
	c.inner.Set(cacheKeyString(key), value, gocache.DefaultExpiration)
}

// cacheKeyString renders a derived key for string-keyed stores.
func cacheKeyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprintf("%#v", key)
}
