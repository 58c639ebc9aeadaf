package funcz

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Memo observability.
const (
	MemoLookupsTotal = metricz.Key("memo.lookups.total")
	MemoHitsTotal    = metricz.Key("memo.hits.total")
	MemoMissesTotal  = metricz.Key("memo.misses.total")
	MemoErrorsTotal  = metricz.Key("memo.errors.total")
)

// Span names for Memo.
const (
	MemoLookupSpan = tracez.Key("memo.lookup")
)

// Span tags for Memo.
const (
	MemoTagWrapper = tracez.Tag("memo.wrapper")
	MemoTagHit     = tracez.Tag("memo.hit")
	MemoTagError   = tracez.Tag("memo.error")

	// Hook event keys.
	MemoEventHit  = hookz.Key("memo.hit")
	MemoEventMiss = hookz.Key("memo.miss")
)

// MemoEvent represents a cache decision event. It is emitted via hookz on
// every lookup that resolves, allowing external systems to track hit rates
// and compute costs without the wrapper logging anything itself.
type MemoEvent struct {
	Name      Name          // Wrapper name
	Key       any           // Derived cache key
	Hit       bool          // Whether the lookup hit
	Err       error         // Error from the base callable (miss only)
	Duration  time.Duration // Base compute time (miss only)
	Timestamp time.Time     // When the event occurred
}

// Memo wraps a Callable with a cache keyed by a deterministic encoding of
// its arguments, suppressing duplicate computation. On each invocation the
// key is derived first; a hit returns the stored result without invoking
// the base, a miss invokes the base and stores the result. Only successful
// results are memoized - a base error is returned and never cached.
//
// By default the key is the tuple of positional arguments used directly
// (TupleKey); a non-comparable argument fails with ErrUnhashableArguments
// before the base is invoked. Supply WithKeyFunc to take over key
// derivation, and WithCache to share a cache or impose an eviction policy.
//
// Memo is ideal for:
//   - Pure functions with expensive computation
//   - Lookups against slow or rate-limited sources
//   - Recursive algorithms with overlapping subproblems
//
// # Concurrency
//
// The cache is the only mutable state. By default there is no internal
// locking - the single-threaded synchronous contract makes the caller
// responsible for synchronization when a Memo is shared across goroutines.
// WithLocking opts in to internal locking that guarantees at-most-once
// computation per key under concurrent access.
//
// # Observability
//
// Memo provides comprehensive observability through metrics, tracing, and
// events:
//
// Metrics:
//   - memo.lookups.total: Counter of invocations
//   - memo.hits.total: Counter of cache hits
//   - memo.misses.total: Counter of cache misses that computed and stored
//   - memo.errors.total: Counter of key-derivation and base failures
//
// Traces:
//   - memo.lookup: Span covering key derivation, lookup, and any compute
//
// Events (via hooks):
//   - memo.hit: Fired when a lookup returns a stored result
//   - memo.miss: Fired after the base computes (successfully or not)
//
// Example:
//
//	fib := funcz.NewMemo("fib", fibCallable)
//	fib.OnMiss(func(ctx context.Context, e funcz.MemoEvent) error {
//	    log.Printf("computed %v in %v", e.Key, e.Duration)
//	    return nil
//	})
type Memo struct {
	base    Callable
	key     KeyFunc
	cache   Cache
	clock   clockz.Clock
	name    Name
	locking bool
	mu      sync.Mutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[MemoEvent]
}

// NewMemo creates a Memo wrapping the given Callable with a fresh unbounded
// cache and the default TupleKey derivation. Configuration is chained:
//
//	memo := funcz.NewMemo("lookup", base).
//	    WithKeyFunc(funcz.HashKey).
//	    WithCache(funcz.NewTTLCache(time.Minute, 10*time.Second)).
//	    WithLocking()
func NewMemo(name Name, base Callable) *Memo {
	registry := metricz.New()
	tracer := tracez.New()

	registry.Counter(MemoLookupsTotal)
	registry.Counter(MemoHitsTotal)
	registry.Counter(MemoMissesTotal)
	registry.Counter(MemoErrorsTotal)

	return &Memo{
		name:    name,
		base:    base,
		key:     TupleKey,
		cache:   NewMapCache(),
		metrics: registry,
		tracer:  tracer,
		hooks:   hookz.New[MemoEvent](),
	}
}

// Call implements the Callable interface.
func (m *Memo) Call(args ...any) (any, error) {
	ctx, span := m.tracer.StartSpan(context.Background(), MemoLookupSpan)
	defer span.Finish()
	span.SetTag(MemoTagWrapper, string(m.name))

	m.metrics.Counter(MemoLookupsTotal).Inc()

	key, err := m.key(args)
	if err != nil {
		m.metrics.Counter(MemoErrorsTotal).Inc()
		span.SetTag(MemoTagError, err.Error())
		return nil, prependPath(m.name, err)
	}

	if m.locking {
		m.mu.Lock()
		defer m.mu.Unlock()
	}

	if v, ok := m.cache.Lookup(key); ok {
		m.metrics.Counter(MemoHitsTotal).Inc()
		span.SetTag(MemoTagHit, "true")

		_ = m.hooks.Emit(ctx, MemoEventHit, MemoEvent{ //nolint:errcheck
			Name:      m.name,
			Key:       key,
			Hit:       true,
			Timestamp: m.getClock().Now(),
		})

		return v, nil
	}
	span.SetTag(MemoTagHit, "false")

	start := m.getClock().Now()
	v, err := m.base.Call(args...)
	duration := m.getClock().Now().Sub(start)

	_ = m.hooks.Emit(ctx, MemoEventMiss, MemoEvent{ //nolint:errcheck
		Name:      m.name,
		Key:       key,
		Hit:       false,
		Err:       err,
		Duration:  duration,
		Timestamp: m.getClock().Now(),
	})

	if err != nil {
		// Failures are never cached.
		m.metrics.Counter(MemoErrorsTotal).Inc()
		span.SetTag(MemoTagError, err.Error())
		return v, prependPath(m.name, err)
	}

	m.cache.Store(key, v)
	m.metrics.Counter(MemoMissesTotal).Inc()
	return v, nil
}

// Signature implements the Callable interface, reporting the base's arity.
func (m *Memo) Signature() Signature {
	return m.base.Signature()
}

// Name implements the Callable interface.
func (m *Memo) Name() Name {
	return m.name
}

// WithKeyFunc replaces the key derivation function. The caller's function
// takes over the hashability guarantee: whatever it returns is used as a
// map key directly.
func (m *Memo) WithKeyFunc(key KeyFunc) *Memo {
	m.key = key
	return m
}

// WithCache replaces the cache, allowing sharing between wrappers or an
// external eviction policy such as NewTTLCache.
func (m *Memo) WithCache(cache Cache) *Memo {
	m.cache = cache
	return m
}

// WithLocking enables internal locking: under concurrent access, at most
// one computation runs per key and every other caller observes the stored
// result. Without it the caller is responsible for synchronization.
func (m *Memo) WithLocking() *Memo {
	m.locking = true
	return m
}

// WithClock sets a custom clock for event timestamps and durations,
// primarily for testing with a fake clock.
func (m *Memo) WithClock(clock clockz.Clock) *Memo {
	m.clock = clock
	return m
}

// getClock returns the clock to use.
func (m *Memo) getClock() clockz.Clock {
	if m.clock == nil {
		return clockz.RealClock
	}
	return m.clock
}

// Metrics returns the metrics registry for this wrapper.
func (m *Memo) Metrics() *metricz.Registry {
	return m.metrics
}

// Tracer returns the tracer for this wrapper.
func (m *Memo) Tracer() *tracez.Tracer {
	return m.tracer
}

// OnHit registers a handler fired when a lookup returns a stored result.
func (m *Memo) OnHit(handler func(ctx context.Context, event MemoEvent) error) error {
	_, err := m.hooks.Hook(MemoEventHit, handler)
	return err
}

// OnMiss registers a handler fired after the base computes, whether it
// succeeded or failed.
func (m *Memo) OnMiss(handler func(ctx context.Context, event MemoEvent) error) error {
	_, err := m.hooks.Hook(MemoEventMiss, handler)
	return err
}

// Close gracefully shuts down observability components.
func (m *Memo) Close() error {
	if m.tracer != nil {
		m.tracer.Close()
	}
	m.hooks.Close()
	return nil
}

// Memoize1 memoizes a pure unary function over a comparable argument type
// with a plain map, no reflection and no observability. It is the typed
// fast path for the common case.
//
//	fib = funcz.Memoize1(fib)
func Memoize1[A comparable, R any](f func(A) R) func(A) R {
	cache := make(map[A]R)
	return func(a A) R {
		if r, ok := cache[a]; ok {
			return r
		}
		r := f(a)
		cache[a] = r
		return r
	}
}

// Memoize2 memoizes a pure binary function over comparable argument types.
func Memoize2[A, B comparable, R any](f func(A, B) R) func(A, B) R {
	type key struct {
		a A
		b B
	}
	cache := make(map[key]R)
	return func(a A, b B) R {
		k := key{a, b}
		if r, ok := cache[k]; ok {
			return r
		}
		r := f(a, b)
		cache[k] = r
		return r
	}
}
