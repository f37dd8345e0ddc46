/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

// Package lrucache implements a fixed-capacity, in-memory LRU cache.
//
// The cache keeps a bounded number of entries and evicts the least recently
// used entry when an insertion grows it beyond the capacity. Lookup, insert
// and evict are O(1): a map indexes keys into a slice backed slot arena, and
// the recency order is a doubly linked list threaded through the slots.
// Dropped slots are reused, so a long lived cache settles at one allocation
// per capacity slot plus the index.
//
// # Usage
//
//	cache := lrucache.New[string, int](100)
//	cache.Put("answer", 42)
//	if v, ok := cache.Get("answer"); ok {
//		fmt.Println(v)
//	}
//
// Get, GetPtr and MustGet promote the entry to most recently used. Peek and
// Has read without promoting. NewWithEvict registers a callback fired for
// every dropped value, and NewReleasing builds a cache that manages reference
// counted values (see Ref).
//
// # References into the cache
//
// Put and GetPtr return pointers to the stored value. Such a pointer stays
// valid only until the next mutating call on the same cache: a later Put,
// Remove, Clear or SetCapacity may reuse or drop the slot the pointer refers
// to. Callers must not retain these pointers across calls.
//
// # Concurrency
//
// The cache performs no internal locking and is not safe for concurrent use.
// Callers requiring concurrent access must guard the cache with their own
// mutual exclusion or shard it externally.
package lrucache
