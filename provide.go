/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

// Creates and returns a new LRU cache with K key type and V value type.
//
// Maximum resident count is limited by the capacity param. Panics with
// ErrInvalidCapacity if capacity is not positive.
func New[K comparable, V any](capacity int) ICache[K, V] {
	return newCache[K, V](capacity, nil)
}

// Creates and returns a new LRU cache with DefaultCapacity
func NewDefault[K comparable, V any]() ICache[K, V] {
	return newCache[K, V](DefaultCapacity, nil)
}

// Creates and returns a new LRU cache. Optional onEvict cb is called when an
// entry is dropped from the cache, see EvictCallback for the exact conditions.
//
// Panics with ErrInvalidCapacity if capacity is not positive.
func NewWithEvict[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) ICache[K, V] {
	return newCache[K, V](capacity, onEvict)
}

// Creates and returns a new releasing LRU cache for reference counted values.
//
// The cache owns one reference per resident value and releases it when the
// value is dropped. Values can embed Ref to get the IRefCounted contract.
//
// Panics with ErrInvalidCapacity if capacity is not positive.
func NewReleasing[K comparable, V IRefCounted](capacity int) IRefCache[K, V] {
	return &refCache[K, V]{
		c: newCache[K, V](capacity, func(_ K, value V) { value.Release() }),
	}
}
