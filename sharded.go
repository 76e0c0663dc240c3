package cachekit

import "github.com/cespare/xxhash/v2"

// Sharded spreads a string-keyed LRU cache across independent shards to
// reduce lock contention. Each shard is a Cache with its own lock; the shard
// for a key is chosen by hashing the key with xxhash.
//
// The capacity bound holds globally (total entries never exceed capacity),
// but recency ordering is tracked per shard: under a skewed key distribution
// a shard may evict earlier than a single cache of the same total capacity
// would. Callers that need strict global LRU ordering should use Cache.
type Sharded[V any] struct {
	shards []*Cache[string, V]
}

// NewSharded creates a sharded cache holding at most capacity entries in
// total, split as evenly as possible across shardCount shards. A shard count
// above capacity is clamped so no shard ends up with zero capacity.
// Returns ErrInvalidCapacity or ErrInvalidShardCount on bad arguments.
func NewSharded[V any](capacity, shardCount int, opts ...Option[string, V]) (*Sharded[V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if shardCount < 1 {
		return nil, ErrInvalidShardCount
	}
	if shardCount > capacity {
		shardCount = capacity
	}

	shards := make([]*Cache[string, V], shardCount)
	base, extra := capacity/shardCount, capacity%shardCount
	for i := range shards {
		n := base
		if i < extra {
			n++
		}
		shard, err := New(n, opts...)
		if err != nil {
			return nil, err
		}
		shards[i] = shard
	}
	return &Sharded[V]{shards: shards}, nil
}

func (s *Sharded[V]) shard(key string) *Cache[string, V] {
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

// Get retrieves a value and marks it as recently used within its shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Put adds or updates a value, evicting within the owning shard if needed.
// Returns the previous value if the key existed, and whether it existed.
func (s *Sharded[V]) Put(key string, value V) (V, bool) {
	return s.shard(key).Put(key, value)
}

// Peek returns the value for key without updating recency order.
func (s *Sharded[V]) Peek(key string) (V, bool) {
	return s.shard(key).Peek(key)
}

// Contains reports whether key is cached without updating recency order.
func (s *Sharded[V]) Contains(key string) bool {
	return s.shard(key).Contains(key)
}

// Remove removes an item from its shard.
// Returns the removed value and whether it existed.
func (s *Sharded[V]) Remove(key string) (V, bool) {
	return s.shard(key).Remove(key)
}

// Len returns the total number of entries across all shards.
func (s *Sharded[V]) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}

// Cap returns the total capacity across all shards.
func (s *Sharded[V]) Cap() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Cap()
	}
	return total
}

// Clear removes all items from every shard.
func (s *Sharded[V]) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
}

// Stats returns counters aggregated across all shards. The aggregate is not
// a single atomic snapshot: shards are read one at a time.
func (s *Sharded[V]) Stats() Stats {
	var total Stats
	for _, shard := range s.shards {
		st := shard.Stats()
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Evictions += st.Evictions
	}
	return total
}
