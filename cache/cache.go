// SPDX-License-Identifier: MIT

package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/compat"
)

// DefaultMaxEntries is the capacity used when none is configured.
const DefaultMaxEntries = 256

// Comparer is the computation a Cache memoizes.
type Comparer interface {
	Compare(a, b chart.Chart, s compat.Scenario) (compat.Result, error)
}

// Options configures a Cache.
type Options struct {
	// MaxEntries bounds the number of cached results. Default: 256.
	MaxEntries int

	// Registerer receives the cache counters. Default: none.
	Registerer prometheus.Registerer
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{MaxEntries: DefaultMaxEntries}
}

// WithMaxEntries sets the capacity. Non-positive values are ignored.
func WithMaxEntries(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxEntries = n
		}
	}
}

// WithRegisterer registers the cache counters on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

type entry struct {
	key    string
	result compat.Result
}

// Cache is an LRU of compatibility results in front of a Comparer.
type Cache struct {
	next Comparer
	max  int

	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List
	flight  singleflight.Group

	hits, misses, evictions int64
	metrics                 counters
}

type counters struct {
	hits, misses, evictions prometheus.Counter
}

func newCounters() counters {
	c := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "baziscore",
			Subsystem: "cache",
			Name:      name,
			Help:      help,
		})
	}
	return counters{
		hits:      c("hits_total", "Compatibility results served from the cache."),
		misses:    c("misses_total", "Compatibility lookups not found in the cache."),
		evictions: c("evictions_total", "Compatibility results evicted by the LRU."),
	}
}

// New wraps next. It fails only when the counters cannot be registered.
func New(next Comparer, opts ...Option) (*Cache, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Cache{
		next:    next,
		max:     o.MaxEntries,
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		metrics: newCounters(),
	}
	if o.Registerer != nil {
		for _, m := range []prometheus.Collector{c.metrics.hits, c.metrics.misses, c.metrics.evictions} {
			if err := o.Registerer.Register(m); err != nil {
				return nil, fmt.Errorf("cache: register metrics: %w", err)
			}
		}
	}
	return c, nil
}

// Compare returns the cached result for (a, b, s) or computes it once.
// Invalid inputs bypass the cache so the wrapped error surfaces unchanged.
func (c *Cache) Compare(a, b chart.Chart, s compat.Scenario) (compat.Result, error) {
	if !a.Valid() || !b.Valid() || !s.Valid() {
		return c.next.Compare(a, b, s)
	}
	key := Key(a, b, s)

	if r, ok := c.get(key); ok {
		return r, nil
	}

	v, err, _ := c.flight.Do(key, func() (any, error) {
		// Populated while waiting for the flight slot.
		if r, ok := c.peek(key); ok {
			return r, nil
		}
		r, err := c.next.Compare(a, b, s)
		if err != nil {
			return compat.Result{}, err
		}
		c.put(key, r)
		return r, nil
	})
	if err != nil {
		return compat.Result{}, err
	}
	return v.(compat.Result).Clone(), nil
}

// Key returns the cache key for a comparison.
func Key(a, b chart.Chart, s compat.Scenario) string {
	h := sha256.Sum256([]byte(a.Key() + "\x00" + b.Key() + "\x00" + s.String()))
	return hex.EncodeToString(h[:16])
}

func (c *Cache) get(key string) (compat.Result, bool) {
	c.mu.Lock()
	el, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		c.metrics.misses.Inc()
		return compat.Result{}, false
	}
	c.lru.MoveToFront(el)
	r := el.Value.(*entry).result.Clone()
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	c.metrics.hits.Inc()
	return r, true
}

// peek is get without touching the statistics.
func (c *Cache) peek(key string) (compat.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		return compat.Result{}, false
	}
	return el.Value.(*entry).result.Clone(), true
}

func (c *Cache) put(key string, r compat.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}
	for len(c.entries) >= c.max {
		if !c.evictLRULocked() {
			break
		}
	}
	c.entries[key] = c.lru.PushFront(&entry{key: key, result: r.Clone()})
}

// evictLRULocked drops the least recently used entry (must hold lock).
func (c *Cache) evictLRULocked() bool {
	el := c.lru.Back()
	if el == nil {
		return false
	}
	c.lru.Remove(el)
	delete(c.entries, el.Value.(*entry).key)
	atomic.AddInt64(&c.evictions, 1)
	c.metrics.evictions.Inc()
	return true
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes every entry. Statistics are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
}

// Stats is a snapshot of cache statistics.
type Stats struct {
	Entries   int
	Hits      int64
	Misses    int64
	Evictions int64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns current statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:   c.Len(),
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
	}
}
