package cachekit

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// LoadFunc fetches the value for a missing key from the backing source.
type LoadFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Loader is a read-through front for a Cache. Cache misses are resolved by
// the load function, and concurrent misses for the same key are collapsed
// into a single load call via singleflight.
type Loader[K comparable, V any] struct {
	cache *Cache[K, V]
	load  LoadFunc[K, V]
	group singleflight.Group
}

// NewLoader creates a read-through loader over cache.
// Returns ErrNilCache or ErrNilLoadFunc on nil arguments.
func NewLoader[K comparable, V any](cache *Cache[K, V], load LoadFunc[K, V]) (*Loader[K, V], error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	if load == nil {
		return nil, ErrNilLoadFunc
	}
	return &Loader[K, V]{cache: cache, load: load}, nil
}

// Get returns the cached value for key, loading and caching it on a miss.
// While a load for key is in flight, concurrent callers wait for and share
// its result. Failed loads cache nothing and the error reaches every waiting
// caller, so the next Get retries the source.
func (l *Loader[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	v, err, _ := l.group.Do(flightKey(key), func() (any, error) {
		// A racing caller may have completed the load between our miss and
		// entering the flight.
		if v, ok := l.cache.Get(key); ok {
			return v, nil
		}
		v, err := l.load(ctx, key)
		if err != nil {
			return nil, err
		}
		l.cache.Put(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Forget drops key from the cache and from any in-flight dedup, so the next
// Get hits the backing source again.
func (l *Loader[K, V]) Forget(key K) {
	l.group.Forget(flightKey(key))
	l.cache.Remove(key)
}

// flightKey renders a cache key for singleflight, whose keys are strings.
// Distinct keys with identical renderings only widen dedup; cache contents
// stay keyed by K.
func flightKey[K comparable](key K) string {
	return fmt.Sprint(key)
}
