// SPDX-License-Identifier: MIT

// Package cache memoizes compatibility results.
//
// Cache wraps any Comparer (normally *compat.Engine) with a bounded LRU keyed
// on both chart keys and the scenario. Concurrent identical requests are
// collapsed with singleflight so one computation serves every waiter.
//
// The cache never changes results: Compare through a Cache returns exactly
// what the wrapped Comparer returns. Results are deep-copied on the way in
// and out, so callers may mutate what they receive. Errors are never cached.
//
// Metrics:
//
//	baziscore_cache_hits_total
//	baziscore_cache_misses_total
//	baziscore_cache_evictions_total
//
// are registered on the Registerer given with WithRegisterer; without one
// the counters exist but are not exported.
//
// Thread safety:
//
//	Safe for concurrent use.
package cache
