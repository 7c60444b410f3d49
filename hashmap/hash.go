package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// StringHasher hashes strings with xxHash64. It is seedless, so the bucket
// layout of a string map is identical across runs.
func StringHasher(s string) uint64 {
	return xxhash.Sum64String(s)
}

// ComparableHasher returns a Hasher for any comparable K backed by
// hash/maphash. Each returned Hasher carries its own random seed; keep one
// per Map.
func ComparableHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 { return maphash.Comparable(seed, k) }
}
