package cachekit

import "errors"

// Package-specific errors
var (
	// ErrInvalidCapacity is returned when a cache is constructed with a capacity below 1
	ErrInvalidCapacity = errors.New("cache capacity must be at least 1")

	// ErrInvalidShardCount is returned when a sharded cache is constructed with a shard count below 1
	ErrInvalidShardCount = errors.New("shard count must be at least 1")

	// ErrNilCache is returned when a nil cache is provided to a loader
	ErrNilCache = errors.New("nil cache provided to loader")

	// ErrNilLoadFunc is returned when a nil load function is provided to a loader
	ErrNilLoadFunc = errors.New("nil load function provided to loader")
)
