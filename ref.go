/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

import (
	"sync/atomic"
)

// Cache values can embed this structure to automate value references and
// value releasing.
//
// # Automation:
//  1. The value should have a Released() method that frees its resources.
//  2. Ref must be embedded into the value and Ref.Value must be assigned
//     to the value itself.
//
// A releasing cache (see NewReleasing) increments the reference counter when
// you put a value into the cache and when you get a value from it, so you do
// not need to call AddRef() manually. Every time you finish using a value you
// should call Release(); when the value is dropped from the cache, the cache
// calls Release() too. When the reference counter decreases to zero, the
// Released() method of the value is called.
type Ref struct {
	count atomic.Int32
	Value interface{ Released() }
}

// Increases reference count by 1. Returns false if reference count is zero
// and the value is about to be released
func (r *Ref) AddRef() bool {
	for cnt := r.count.Load(); cnt >= 0; cnt = r.count.Load() {
		if new := cnt + 1; r.count.CompareAndSwap(cnt, new) {
			return true
		}
	}
	// notest
	return false
}

// Returns current reference count
func (r *Ref) RefCount() int {
	return int(r.count.Load() + 1)
}

// Decreases reference count by 1. If the counter decreases to zero then the
// value Released() method is called
func (r *Ref) Release() {
	for cnt := r.count.Load(); cnt >= 0; cnt = r.count.Load() {
		if new := cnt - 1; r.count.CompareAndSwap(cnt, new) {
			if new == -1 {
				if r.Value != nil {
					r.Value.Released()
				}
			}
			break
		}
	}
}
