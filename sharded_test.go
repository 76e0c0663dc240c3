package cachekit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/cachekit"
)

func TestSharded_Basic(t *testing.T) {
	t.Run("put and get across shards", func(t *testing.T) {
		// Per-shard capacity stays well above the key count so an uneven
		// hash split cannot evict anything mid-test.
		s, err := cachekit.NewSharded[int](256, 4)
		require.NoError(t, err)

		for i := 0; i < 32; i++ {
			s.Put(fmt.Sprintf("key-%d", i), i)
		}
		assert.Equal(t, 32, s.Len())

		for i := 0; i < 32; i++ {
			val, ok := s.Get(fmt.Sprintf("key-%d", i))
			assert.True(t, ok)
			assert.Equal(t, i, val)
		}
	})

	t.Run("get non-existent", func(t *testing.T) {
		s, err := cachekit.NewSharded[int](64, 4)
		require.NoError(t, err)

		val, ok := s.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("update existing", func(t *testing.T) {
		s, err := cachekit.NewSharded[int](64, 4)
		require.NoError(t, err)

		s.Put("a", 1)
		oldVal, existed := s.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, oldVal)
		assert.Equal(t, 1, s.Len())
	})
}

func TestSharded_CapacityBound(t *testing.T) {
	s, err := cachekit.NewSharded[int](10, 3)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Cap(), "shard capacities must sum to the requested total")

	// Overfill well past capacity; the global bound must hold.
	for i := 0; i < 200; i++ {
		s.Put(fmt.Sprintf("key-%d", i), i)
		assert.LessOrEqual(t, s.Len(), 10)
	}
}

func TestSharded_RemoveClearContains(t *testing.T) {
	s, err := cachekit.NewSharded[int](16, 4)
	require.NoError(t, err)

	s.Put("a", 1)
	s.Put("b", 2)

	assert.True(t, s.Contains("a"))

	val, ok := s.Peek("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = s.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)
	assert.False(t, s.Contains("a"))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("b"))
}

func TestSharded_Stats(t *testing.T) {
	s, err := cachekit.NewSharded[int](16, 4)
	require.NoError(t, err)

	s.Put("a", 1)
	s.Get("a")       // hit
	s.Get("missing") // miss

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
}

func TestSharded_InvalidConfig(t *testing.T) {
	t.Run("zero capacity", func(t *testing.T) {
		s, err := cachekit.NewSharded[int](0, 4)
		require.ErrorIs(t, err, cachekit.ErrInvalidCapacity)
		assert.Nil(t, s)
	})

	t.Run("zero shards", func(t *testing.T) {
		s, err := cachekit.NewSharded[int](16, 0)
		require.ErrorIs(t, err, cachekit.ErrInvalidShardCount)
		assert.Nil(t, s)
	})

	t.Run("more shards than capacity", func(t *testing.T) {
		// Shard count is clamped so no shard has zero capacity.
		s, err := cachekit.NewSharded[int](2, 8)
		require.NoError(t, err)
		assert.Equal(t, 2, s.Cap())

		s.Put("a", 1)
		s.Put("b", 2)
		s.Put("c", 3)
		assert.LessOrEqual(t, s.Len(), 2)
	})
}

func TestSharded_Concurrent(t *testing.T) {
	s, err := cachekit.NewSharded[int](1024, 8)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		i := i
		g.Go(func() error {
			key := fmt.Sprintf("key-%d", i)
			s.Put(key, i)
			if val, ok := s.Get(key); !ok || val != i {
				return fmt.Errorf("lost write for %s", key)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 64, s.Len())
}

func BenchmarkSharded_Mixed(b *testing.B) {
	s, _ := cachekit.NewSharded[int](1000, 16)
	keys := make([]string, 2000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			s.Put(keys[i%2000], i)
		} else {
			s.Get(keys[i%2000])
		}
	}
}
