/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package floatdrop

import (
	lru "github.com/floatdrop/lru"
)

// LRU cache implemented by floatdrop LRU cache
type Cache[K comparable, V any] struct {
	lru *lru.LRU[K, V]
}

func new[K comparable, V any](size int) *Cache[K, V] {
	return &Cache[K, V]{
		lru: lru.New[K, V](size),
	}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if v := c.lru.Get(key); v != nil {
		return *v, true
	}
	return value, false
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.lru.Set(key, value)
}
