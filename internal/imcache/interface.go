/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imcache

import "github.com/erni27/imcache"

// LRU cache implemented by imcache with entries limit
type Cache[K comparable, V any] struct {
	cache *imcache.Cache[K, V]
}

func New[K comparable, V any](size int) *Cache[K, V] {
	return &Cache[K, V]{
		cache: imcache.New[K, V](imcache.WithMaxEntriesOption[K, V](size)),
	}
}
