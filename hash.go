package probemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to its hash. Equal keys must hash equally for the
// lifetime of a map.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a maphash based hash function bound to seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHashString hashes string-like keys with xxhash. Unlike the default hash
// it isn't seeded, so slot layouts are reproducible across processes.
func XXHashString[K ~string](k K) uint64 {
	return xxhash.Sum64String(string(k))
}

// Returns the home slot of a hash.
func indexOf(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}
