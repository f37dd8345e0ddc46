/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

// Releasing cache over the arena cache. The arena's eviction callback releases
// the cache's reference whenever an entry is dropped; this wrapper acquires
// references on the way in and on the way out.
type refCache[K comparable, V IRefCounted] struct {
	c *cache[K, V]
}

func (rc *refCache[K, V]) Get(key K) (value V, ok bool) {
	value, ok = rc.c.Get(key)
	if ok {
		value.AddRef()
	}
	return value, ok
}

func (rc *refCache[K, V]) Put(key K, value V) {
	value.AddRef()
	rc.c.Put(key, value)
}

func (rc *refCache[K, V]) Has(key K) bool {
	return rc.c.Has(key)
}

func (rc *refCache[K, V]) Remove(key K) bool {
	return rc.c.Remove(key)
}

func (rc *refCache[K, V]) Clear() {
	rc.c.Clear()
}

func (rc *refCache[K, V]) Len() int {
	return rc.c.Len()
}

func (rc *refCache[K, V]) Cap() int {
	return rc.c.Cap()
}
