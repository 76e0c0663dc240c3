package cachekit

import "sync"

// Slot table layout: handles 0 and 1 are permanent sentinels bounding the
// recency sequence. They are never evicted and never visible to callers.
const (
	mruSentinel = 0 // most recently used end
	lruSentinel = 1 // least recently used end, eviction side
	noSlot      = -1
)

// slot is one cell of the entry table. Live slots form a doubly linked
// recency sequence threaded through prev/next handles; freed slots are
// chained through next into the free list.
type slot[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// Cache is a thread-safe fixed-capacity LRU cache.
// When the cache reaches its capacity, the least recently used item is evicted.
//
// Entries are stored in a flat slot table and linked by integer handles
// rather than node pointers, so the key index and the recency order are two
// views over the same table with no pointer aliasing between them.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	slots    []slot[K, V] // slots[0] and slots[1] are the sentinels
	index    map[K]int    // key -> slot handle
	free     int          // head of the freed-slot chain, noSlot when empty
	onEvict  func(key K, value V)
	stats    Stats
}

// New creates an LRU cache holding at most capacity entries.
// Returns ErrInvalidCapacity if capacity is below 1.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	c := &Cache[K, V]{
		capacity: capacity,
		slots:    newSlotTable[K, V](capacity),
		index:    make(map[K]int, capacity),
		free:     noSlot,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// newSlotTable allocates the entry table with the two sentinels linked to
// each other, representing an empty recency sequence.
func newSlotTable[K comparable, V any](capacity int) []slot[K, V] {
	slots := make([]slot[K, V], 2, capacity+2)
	slots[mruSentinel] = slot[K, V]{prev: noSlot, next: lruSentinel}
	slots[lruSentinel] = slot[K, V]{prev: mruSentinel, next: noSlot}
	return slots
}

// Get retrieves a value from the cache and marks it as recently used.
// Returns the value and true if found, zero value and false otherwise.
// A miss changes neither size nor ordering.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.index[key]; ok {
		c.moveToFront(h)
		c.stats.Hits++
		return c.slots[h].value, true
	}

	c.stats.Misses++
	var zero V
	return zero, false
}

// Put adds or updates a value in the cache and marks it as recently used.
// If the cache is at capacity, the least recently used item is evicted first.
// Returns the previous value if the key existed, and whether it existed.
func (c *Cache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.index[key]; ok {
		old := c.slots[h].value
		c.slots[h].value = value
		c.moveToFront(h)
		return old, true
	}

	if len(c.index) == c.capacity {
		c.evictOldest()
	}

	h := c.alloc()
	c.slots[h].key = key
	c.slots[h].value = value
	c.pushFront(h)
	c.index[key] = h

	var zero V
	return zero, false
}

// Peek returns the value for key without updating recency order or counters.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.index[key]; ok {
		return c.slots[h].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is in the cache without updating recency order.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.index[key]
	return ok
}

// Remove removes an item from the cache, firing the eviction callback if set.
// Returns the removed value and true if it existed, zero value and false
// otherwise.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	value := c.slots[h].value
	c.deleteSlot(h)
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
	return value, true
}

// Len returns the number of entries currently in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns the cached keys ordered from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.index))
	for h := c.slots[lruSentinel].prev; h != mruSentinel; h = c.slots[h].prev {
		keys = append(keys, c.slots[h].key)
	}
	return keys
}

// Clear removes all items from the cache.
// If an evict callback is set, it's called for each item.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for h := c.slots[mruSentinel].next; h != lruSentinel; h = c.slots[h].next {
			c.onEvict(c.slots[h].key, c.slots[h].value)
		}
	}

	c.slots = newSlotTable[K, V](c.capacity)
	c.index = make(map[K]int, c.capacity)
	c.free = noSlot
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Must be called with lock held.
func (c *Cache[K, V]) evictOldest() {
	h := c.slots[lruSentinel].prev
	if h == mruSentinel {
		return
	}

	key, value := c.slots[h].key, c.slots[h].value
	c.deleteSlot(h)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}

// deleteSlot unlinks slot h, drops its key from the index, and recycles the
// slot. Must be called with lock held.
func (c *Cache[K, V]) deleteSlot(h int) {
	c.unlink(h)
	delete(c.index, c.slots[h].key)
	c.release(h)
}

// unlink detaches slot h from the recency sequence. The sentinels guarantee
// both neighbour handles are valid.
func (c *Cache[K, V]) unlink(h int) {
	p, n := c.slots[h].prev, c.slots[h].next
	c.slots[p].next = n
	c.slots[n].prev = p
}

// pushFront inserts slot h at the most recently used position.
func (c *Cache[K, V]) pushFront(h int) {
	n := c.slots[mruSentinel].next
	c.slots[h].prev = mruSentinel
	c.slots[h].next = n
	c.slots[mruSentinel].next = h
	c.slots[n].prev = h
}

// Must be called with lock held.
func (c *Cache[K, V]) moveToFront(h int) {
	c.unlink(h)
	c.pushFront(h)
}

// alloc returns a free slot handle, growing the table when the free chain is
// empty. The table never exceeds capacity+2 cells because eviction precedes
// insertion at capacity.
func (c *Cache[K, V]) alloc() int {
	if c.free != noSlot {
		h := c.free
		c.free = c.slots[h].next
		return h
	}
	c.slots = append(c.slots, slot[K, V]{})
	return len(c.slots) - 1
}

// release zeroes slot h and chains it into the free list, so evicted keys
// and values are not pinned by the table.
func (c *Cache[K, V]) release(h int) {
	c.slots[h] = slot[K, V]{prev: noSlot, next: c.free}
	c.free = h
}
