// SPDX-License-Identifier: MIT
//
// Package hashmap provides a generic chained hash table with dynamic growth.
//
// Map[K,V] stores each key at most once. Keys are spread over a bucket array
// by a caller-supplied Hasher; each bucket owns a small slice of entries.
// Whenever an insert leaves occupancy/capacity ≥ LoadFactor (0.8), the bucket
// array doubles and every entry is rehashed before Put returns.
//
// Complexity:
//
//   - Put, Get, ContainsKey, Remove: O(1) amortized, O(chain length) worst case.
//   - Growth: O(n) per doubling, amortized O(1) per Put.
//   - Size, Capacity: O(1).
//
// The zero value of K is reserved as the absent sentinel: Put rejects it with
// ErrInvalidKey, ContainsKey reports false, Get/Remove report ErrKeyNotFound.
//
// Errors:
//
//	ErrInvalidCapacity - initial capacity is not a positive integer.
//	ErrNilHasher       - no hash function supplied.
//	ErrInvalidKey      - key is the zero value of K.
//	ErrDuplicateKey    - Put on a key that is already present.
//	ErrKeyNotFound     - Get/Remove on an absent key.
//
// All methods are safe for concurrent use; mutations hold an exclusive lock
// for their whole duration, so a rehash is never observed half done.
package hashmap

import (
	"errors"
	"sync"
)

const (
	// DefaultCapacity is the bucket count used when WithCapacity is not given.
	DefaultCapacity = 64

	// LoadFactor is the occupancy ratio at which the table doubles.
	LoadFactor = 0.8
)

// Sentinel errors for map operations.
var (
	// ErrInvalidCapacity indicates a non-positive initial capacity.
	ErrInvalidCapacity = errors.New("hashmap: capacity must be greater than 0")

	// ErrNilHasher indicates that New was called without a hash function.
	ErrNilHasher = errors.New("hashmap: hasher is nil")

	// ErrInvalidKey indicates the zero-value key, which the map treats as absent.
	ErrInvalidKey = errors.New("hashmap: key is the zero value")

	// ErrDuplicateKey indicates Put was called for a key that already maps to a value.
	ErrDuplicateKey = errors.New("hashmap: key already present")

	// ErrKeyNotFound indicates the key is not stored in the map.
	ErrKeyNotFound = errors.New("hashmap: key not found")
)

// Hasher maps a key to a 64-bit hash. It must be deterministic for the
// lifetime of the map.
type Hasher[K comparable] func(K) uint64

// entry is one key/value pair inside a bucket.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a chained hash table keyed by K.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	hash    Hasher[K]
	buckets [][]entry[K, V] // bucket index → owned chain
	size    int             // number of stored entries
}

// Option configures a Map at construction time.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial bucket count. New rejects values ≤ 0
// with ErrInvalidCapacity.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}
