/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package lrucache

import "fmt"

// nilSlot terminates slot links
const nilSlot = -1

type slot[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// LRU cache over a slice backed slot arena.
//
// The index maps keys to slot numbers. The recency order is a doubly linked
// list threaded through the slots, most recently used at head, least recently
// used at tail. Dropped slots are zeroed and chained into the free list
// through next, so a long lived cache allocates at most capacity slots and
// never hands slot memory back between entries.
type cache[K comparable, V any] struct {
	index    map[K]int
	slots    []slot[K, V]
	head     int
	tail     int
	free     int
	capacity int
	onEvict  EvictCallback[K, V]
	stats    Stats
}

func newCache[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) *cache[K, V] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity))
	}
	return &cache[K, V]{
		index:    make(map[K]int, capacity),
		slots:    make([]slot[K, V], 0, capacity),
		head:     nilSlot,
		tail:     nilSlot,
		free:     nilSlot,
		capacity: capacity,
		onEvict:  onEvict,
	}
}

func (c *cache[K, V]) Put(key K, value V) *V {
	c.stats.Puts++
	if id, ok := c.index[key]; ok {
		// erase and recreate, value identity is not preserved across re-insertion
		c.drop(id)
	}
	id := c.alloc()
	c.slots[id].key = key
	c.slots[id].value = value
	c.pushFront(id)
	c.index[key] = id
	for len(c.index) > c.capacity {
		c.stats.Evictions++
		c.drop(c.tail)
	}
	return &c.slots[id].value
}

func (c *cache[K, V]) Get(key K) (value V, ok bool) {
	id, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		return value, false
	}
	c.stats.Hits++
	c.promote(id)
	return c.slots[id].value, true
}

func (c *cache[K, V]) GetPtr(key K) *V {
	id, ok := c.index[key]
	if !ok {
		c.stats.Misses++
		return nil
	}
	c.stats.Hits++
	c.promote(id)
	return &c.slots[id].value
}

func (c *cache[K, V]) MustGet(key K) V {
	p := c.GetPtr(key)
	if p == nil {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, key))
	}
	return *p
}

func (c *cache[K, V]) Peek(key K) (value V, ok bool) {
	id, ok := c.index[key]
	if !ok {
		return value, false
	}
	return c.slots[id].value, true
}

func (c *cache[K, V]) Has(key K) bool {
	_, ok := c.index[key]
	return ok
}

func (c *cache[K, V]) Remove(key K) bool {
	id, ok := c.index[key]
	if !ok {
		return false
	}
	c.drop(id)
	return true
}

func (c *cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if c.tail == nilSlot {
		return key, value, false
	}
	key, value = c.drop(c.tail)
	return key, value, true
}

func (c *cache[K, V]) GetOldest() (key K, value V, ok bool) {
	if c.tail == nilSlot {
		return key, value, false
	}
	return c.slots[c.tail].key, c.slots[c.tail].value, true
}

func (c *cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for id := c.tail; id != nilSlot; id = c.slots[id].prev {
		keys = append(keys, c.slots[id].key)
	}
	return keys
}

func (c *cache[K, V]) Values() []V {
	values := make([]V, 0, len(c.index))
	for id := c.tail; id != nilSlot; id = c.slots[id].prev {
		values = append(values, c.slots[id].value)
	}
	return values
}

func (c *cache[K, V]) Len() int {
	return len(c.index)
}

func (c *cache[K, V]) Cap() int {
	return c.capacity
}

func (c *cache[K, V]) SetCapacity(capacity int) (evicted int) {
	if capacity < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity))
	}
	c.capacity = capacity
	for len(c.index) > c.capacity {
		c.stats.Evictions++
		c.drop(c.tail)
		evicted++
	}
	return evicted
}

func (c *cache[K, V]) Clear() {
	if c.onEvict != nil {
		// oldest first, same order the entries would be evicted in
		for id := c.tail; id != nilSlot; id = c.slots[id].prev {
			c.onEvict(c.slots[id].key, c.slots[id].value)
		}
	}
	for i := range c.slots {
		c.slots[i] = slot[K, V]{}
	}
	c.index = make(map[K]int, c.capacity)
	c.slots = c.slots[:0]
	c.head, c.tail, c.free = nilSlot, nilSlot, nilSlot
}

func (c *cache[K, V]) Stats() Stats {
	return c.stats
}

// Detaches slot id from the index and the recency order, zeroes the slot and
// chains it into the free list. The eviction callback fires after the cache
// state is consistent again.
func (c *cache[K, V]) drop(id int) (key K, value V) {
	key, value = c.slots[id].key, c.slots[id].value
	delete(c.index, key)
	c.unlink(id)
	c.slots[id] = slot[K, V]{}
	c.slots[id].prev = nilSlot
	c.slots[id].next = c.free
	c.free = id
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
	return key, value
}

// Returns a free slot number, growing the arena when the free list is empty
func (c *cache[K, V]) alloc() int {
	if id := c.free; id != nilSlot {
		c.free = c.slots[id].next
		return id
	}
	c.slots = append(c.slots, slot[K, V]{})
	return len(c.slots) - 1
}

func (c *cache[K, V]) unlink(id int) {
	prev, next := c.slots[id].prev, c.slots[id].next
	if prev == nilSlot {
		c.head = next
	} else {
		c.slots[prev].next = next
	}
	if next == nilSlot {
		c.tail = prev
	} else {
		c.slots[next].prev = prev
	}
}

func (c *cache[K, V]) pushFront(id int) {
	c.slots[id].prev = nilSlot
	c.slots[id].next = c.head
	if c.head != nilSlot {
		c.slots[c.head].prev = id
	}
	c.head = id
	if c.tail == nilSlot {
		c.tail = id
	}
}

func (c *cache[K, V]) promote(id int) {
	if c.head == id {
		return
	}
	c.unlink(id)
	c.pushFront(id)
}
