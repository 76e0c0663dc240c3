package cachekit

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvictCallback sets a callback invoked whenever an entry leaves the
// cache: capacity eviction, Remove, or Clear. Useful for cleanup operations
// like closing resources.
//
// The callback runs while the cache lock is held, so it must not call back
// into the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}
