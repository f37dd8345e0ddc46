/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package fastcache

func (c *Cache) Get(key string) (value []byte, ok bool) {
	return c.c.HasGet(nil, []byte(key))
}

func (c *Cache) Put(key string, value []byte) {
	c.c.Set([]byte(key), value)
}
