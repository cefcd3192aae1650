package hashmap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

// Returns a hash function built on maphash.Comparable with the given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
