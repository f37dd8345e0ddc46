/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

import "errors"

// Panic values raised on contract violations wrap these errors
var (
	// Raised by New and SetCapacity on non-positive capacity
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// Raised by MustGet on an absent key
	ErrKeyNotFound = errors.New("key not found in cache")
)
