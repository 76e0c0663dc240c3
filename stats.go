package cachekit

// Stats holds cumulative cache counters. Fields are mutated under the cache
// lock; the Stats method returns a consistent snapshot.
//
// Only Get touches Hits and Misses, and only capacity-driven removal counts
// as an eviction. Manual Remove and Clear are caller decisions, not evictions,
// and Peek/Contains are not accesses in the recency sense.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
