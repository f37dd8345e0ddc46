/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package fastcache

import (
	"github.com/VictoriaMetrics/fastcache"
)

// Byte cache implemented by VictoriaMetrics fastcache.
//
// Unlike the other backends the cache is limited by total bytes, not by
// entries count, and keys and values are raw bytes.
type Cache struct {
	c *fastcache.Cache
}

func New(maxBytes int) *Cache {
	return &Cache{
		c: fastcache.New(maxBytes),
	}
}
