/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package theine

import (
	theine "github.com/Yiling-J/theine-go"
)

// LRU cache implemented by theine-go hybrid cache
type Cache[K comparable, V any] struct {
	c *theine.Cache[K, V]
}

func New[K comparable, V any](size int) (c *Cache[K, V]) {
	c = &Cache[K, V]{}

	var err error
	if c.c, err = theine.NewBuilder[K, V](int64(size)).Build(); err != nil {
		panic(err)
	}
	return c
}
