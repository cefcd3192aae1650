package hashmap

import "iter"

// HashSet is a key-only view of the same engine as HashMap: dense key
// storage, chained bucket index, identical resize policy. It just
// doesn't store values.
//
// Not safe for concurrent use.
type HashSet[K comparable] struct {
	table[K, struct{}]
}

// Returns a new empty set.
func NewSet[K comparable](opts ...Option[K, struct{}]) *HashSet[K] {
	var hs HashSet[K]
	hs.init(opts...)

	return &hs
}

// Returns a set holding the given keys.
func NewSetOf[K comparable](keys []K, opts ...Option[K, struct{}]) *HashSet[K] {
	hs := NewSet[K](opts...)
	for _, k := range keys {
		hs.insert(k, struct{}{})
	}

	return hs
}

// Adds a key. Reports whether it was absent.
func (hs *HashSet[K]) Insert(key K) bool {
	_, inserted := hs.insert(key, struct{}{})

	return inserted
}

// Checks whether a key is in the set.
func (hs *HashSet[K]) Has(key K) bool {
	return hs.find(key) >= 0
}

// Removes a key and reports whether it was present.
func (hs *HashSet[K]) Erase(key K) bool {
	return hs.erase(key)
}

// Drops every key and resets capacity to its initial value.
func (hs *HashSet[K]) Clear() {
	hs.reset()
}

// Number of keys.
func (hs *HashSet[K]) Len() int {
	return len(hs.entries)
}

func (hs *HashSet[K]) Empty() bool {
	return len(hs.entries) == 0
}

// HashFunc returns the configured hash function.
func (hs *HashSet[K]) HashFunc() HashFunc[K] {
	return hs.hashFunc
}

// All returns a sequence of keys in storage order. Mutating the set
// mid-iteration panics at the next step.
func (hs *HashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		gen := hs.gen
		for pos := 0; pos < len(hs.entries); pos++ {
			if hs.gen != gen {
				panic("hashmap: set mutated during iteration")
			}

			if !yield(hs.entries[pos].Key) {
				return
			}
		}
	}
}
