/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package hashicorp

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU cache backed by the hashicorp LRU cache
type Cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

func New[K comparable, V any](size int) (c *Cache[K, V]) {
	c = &Cache[K, V]{}

	var err error
	if c.lru, err = lru.New[K, V](size); err != nil {
		panic(err)
	}
	return c
}
