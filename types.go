/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

// EvictCallback is called when an entry is dropped from the cache: evicted by
// capacity, evicted by SetCapacity, removed, replaced by Put or cleared.
//
// The callback runs synchronously inside the mutating call and must not call
// back into the cache.
type EvictCallback[K comparable, V any] func(key K, value V)

// Cumulative cache counters. See ICache.Stats.
type Stats struct {
	// Promoting lookups (Get, GetPtr, MustGet) that found the key
	Hits uint64

	// Promoting lookups that missed. Peek and Has do not count
	Misses uint64

	// Entries dropped by capacity pressure, including SetCapacity shrinking.
	// Explicit removals and Clear do not count
	Evictions uint64

	// Put calls, both fresh insertions and replacements
	Puts uint64
}
