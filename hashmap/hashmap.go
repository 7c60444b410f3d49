// SPDX-License-Identifier: MIT

package hashmap

import (
	"fmt"
	"slices"
)

// New creates an empty Map using hash to place keys.
//
// Returns ErrNilHasher if hash is nil and ErrInvalidCapacity if
// WithCapacity supplied a value ≤ 0.
// Complexity: O(capacity).
func New[K comparable, V any](hash Hasher[K], opts ...Option) (*Map[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, o.capacity)
	}

	return &Map[K, V]{
		hash:    hash,
		buckets: make([][]entry[K, V], o.capacity),
	}, nil
}

// NewString creates a string-keyed Map hashed with StringHasher.
func NewString[V any](opts ...Option) (*Map[string, V], error) {
	return New[string, V](StringHasher, opts...)
}

// Put adds a new key/value mapping.
//
// Implementation:
//   - Stage 1: Reject the zero key (ErrInvalidKey).
//   - Stage 2: Scan the key's bucket; an existing key yields ErrDuplicateKey.
//   - Stage 3: Append to the bucket and increment size.
//   - Stage 4: If size/capacity ≥ LoadFactor, double and rehash every entry.
//
// Errors:
//   - ErrInvalidKey, ErrDuplicateKey.
//
// Complexity:
//   - O(1) amortized; O(n) on the insert that triggers growth.
func (m *Map[K, V]) Put(key K, value V) error {
	if isZero(key) {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.index(key, len(m.buckets))
	for _, e := range m.buckets[idx] {
		if e.key == key {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}
	m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
	m.size++

	if float64(m.size)/float64(len(m.buckets)) >= LoadFactor {
		m.grow()
	}

	return nil
}

// ContainsKey reports whether key maps to a value. The zero key is never present.
// Complexity: O(chain length).
func (m *Map[K, V]) ContainsKey(key K) bool {
	if isZero(key) {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.find(key)

	return ok
}

// Get returns the value key maps to, or ErrKeyNotFound.
// Complexity: O(chain length).
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if isZero(key) {
		return zero, ErrKeyNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	pos, ok := m.find(key)
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return m.buckets[pos.bucket][pos.slot].value, nil
}

// Remove deletes the mapping for key and returns the value it held.
// Capacity never shrinks.
//
// Errors:
//   - ErrKeyNotFound if key is absent (including the zero key).
//
// Complexity: O(chain length).
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	if isZero(key) {
		return zero, ErrKeyNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, ok := m.find(key)
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	chain := m.buckets[pos.bucket]
	value := chain[pos.slot].value
	m.buckets[pos.bucket] = slices.Delete(chain, pos.slot, pos.slot+1)
	m.size--

	return value, nil
}

// Clear removes every mapping while keeping the current capacity.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Size returns the number of stored keys.
func (m *Map[K, V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.size
}

// Capacity returns the length of the bucket array.
func (m *Map[K, V]) Capacity() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.buckets)
}

// Keys returns every stored key in bucket order. The order is unspecified
// and changes after growth.
// Complexity: O(capacity + n).
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]K, 0, m.size)
	for _, chain := range m.buckets {
		for _, e := range chain {
			out = append(out, e.key)
		}
	}

	return out
}

// Range calls fn for each mapping until fn returns false.
// fn runs under the read lock and must not mutate m.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, chain := range m.buckets {
		for _, e := range chain {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// position locates an entry inside the bucket array.
type position struct {
	bucket int
	slot   int
}

// find scans the key's chain. Caller holds mu.
func (m *Map[K, V]) find(key K) (position, bool) {
	idx := m.index(key, len(m.buckets))
	for slot, e := range m.buckets[idx] {
		if e.key == key {
			return position{bucket: idx, slot: slot}, true
		}
	}

	return position{}, false
}

// index reduces the hash modulo n. Unsigned arithmetic keeps it non-negative.
func (m *Map[K, V]) index(key K, n int) int {
	return int(m.hash(key) % uint64(n))
}

// grow doubles the bucket array and rehashes every entry. Caller holds mu.
func (m *Map[K, V]) grow() {
	next := make([][]entry[K, V], len(m.buckets)*2)
	for _, chain := range m.buckets {
		for _, e := range chain {
			idx := m.index(e.key, len(next))
			next[idx] = append(next[idx], e)
		}
	}
	m.buckets = next
}

func isZero[K comparable](key K) bool {
	var zero K
	return key == zero
}
