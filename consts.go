/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

// DefaultCapacity is the capacity of caches constructed by NewDefault
const DefaultCapacity = 64
