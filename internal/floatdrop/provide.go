/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package floatdrop

func New[K comparable, V any](size int) *Cache[K, V] {
	return new[K, V](size)
}
