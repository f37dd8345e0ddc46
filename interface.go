/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

// Fixed-capacity LRU cache with K key type and V value type.
//
// Not safe for concurrent use. Callers requiring concurrent access must wrap
// the cache with their own mutual exclusion.
type ICache[K comparable, V any] interface {
	// Stores value under key and returns a pointer to the stored value.
	//
	// If key is already resident, the old entry is dropped (the eviction
	// callback fires for its value) and a fresh entry is created at the
	// most recently used position. If the insertion exceeds the capacity,
	// least recently used entries are evicted until the count fits.
	//
	// The returned pointer is valid until the next mutating call.
	Put(key K, value V) *V

	// Gets value by key and updates the "recently used"-ness of the entry.
	// Returns true and value if key exists, false and zero value otherwise
	Get(key K) (value V, ok bool)

	// Gets a pointer to the stored value and updates the "recently used"-ness
	// of the entry. Returns nil if key is absent.
	//
	// The returned pointer is valid until the next mutating call.
	GetPtr(key K) *V

	// Gets value by key and updates the "recently used"-ness of the entry.
	// Panics with ErrKeyNotFound if key is absent. Callers uncertain of
	// presence should use Get or GetPtr.
	MustGet(key K) V

	// Gets value by key without updating the "recently used"-ness of the entry
	Peek(key K) (value V, ok bool)

	// Reports whether key is resident. Does not affect the recency order
	Has(key K) bool

	// Removes key from the cache. Returns true if key was resident.
	// The eviction callback fires for the removed value
	Remove(key K) bool

	// Removes and returns the least recently used entry.
	// The eviction callback fires for the removed value
	RemoveOldest() (key K, value V, ok bool)

	// Returns the least recently used entry without removing or promoting it
	GetOldest() (key K, value V, ok bool)

	// Returns resident keys, from least to most recently used
	Keys() []K

	// Returns resident values, from least to most recently used
	Values() []V

	// Returns the number of resident entries
	Len() int

	// Returns the capacity
	Cap() int

	// Updates the capacity. If the new capacity is below the resident count,
	// least recently used entries are evicted until the count fits; the
	// number of evicted entries is returned.
	// Panics with ErrInvalidCapacity if capacity is not positive.
	SetCapacity(capacity int) (evicted int)

	// Removes all entries. The eviction callback fires for every value
	Clear()

	// Returns a snapshot of the cumulative cache counters
	Stats() Stats
}

// Values managed by a releasing cache (see NewReleasing) count references.
// Ref is the ready-made implementation to embed
type IRefCounted interface {
	// Increases the reference count. Returns false if the value is already released
	AddRef() bool

	// Decreases the reference count, releasing the value when it drops to zero
	Release()
}

// Object cache for reference counted values.
//
// The cache holds one reference per resident value: Put acquires it, any drop
// (eviction, removal, replacement, clear) releases it. Get acquires a reference
// for the caller, who must call Release after use.
//
// Not safe for concurrent use.
type IRefCache[K comparable, V IRefCounted] interface {
	// Gets value by key and updates the "recently used"-ness of the entry.
	// On success a reference is acquired for the caller
	Get(key K) (value V, ok bool)

	// Stores value under key, acquiring the cache's reference.
	// Replacing a resident key releases the previous value
	Put(key K, value V)

	// Reports whether key is resident. Does not affect the recency order
	Has(key K) bool

	// Removes key from the cache, releasing the cache's reference
	Remove(key K) bool

	// Removes all entries, releasing the cache's reference to each
	Clear()

	// Returns the number of resident entries
	Len() int

	// Returns the capacity
	Cap() int
}
