package hashmap

import (
	"errors"
	"iter"
)

// ErrKeyNotFound is returned by At for keys with no entry.
var ErrKeyNotFound = errors.New("hashmap: key not found")

// HashMap is an unordered associative container with amortized O(1)
// lookup, insertion and deletion, built on separate chaining over
// densely packed entry storage.
// https://en.wikipedia.org/wiki/Hash_table#Separate_chaining
//
// Resize policy: capacity starts at zero, is multiplied by the growth
// factor plus one once the entry count reaches it, and divided by the
// growth factor once count*minLoadFactor falls to it. Either direction
// rebuilds the whole bucket index.
//
// Not safe for concurrent use. Any operation that moves entries
// (Erase, Clear, a resizing Insert) invalidates issued iterators and
// Ref pointers; see Iterator.
type HashMap[K comparable, V any] struct {
	table[K, V]
}

// Returns a new empty map.
func New[K comparable, V any](opts ...Option[K, V]) *HashMap[K, V] {
	var hm HashMap[K, V]
	hm.init(opts...)

	return &hm
}

// Returns a map holding the given pairs, inserted in order.
// On duplicate keys the first pair wins.
func NewFromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) *HashMap[K, V] {
	hm := New[K, V](opts...)
	for _, p := range pairs {
		hm.insert(p.Key, p.Value)
	}

	return hm
}

// Returns a map collected from a key/value sequence, first-wins on
// duplicate keys.
func Collect[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *HashMap[K, V] {
	hm := New[K, V](opts...)
	for k, v := range seq {
		hm.insert(k, v)
	}

	return hm
}

// Looks up a key.
func (hm *HashMap[K, V]) Get(key K) (V, bool) {
	if pos := hm.find(key); pos >= 0 {
		return hm.entries[pos].Value, true
	}

	var zero V
	return zero, false
}

// Returns an iterator positioned at the key's entry, or End() if
// there is none.
func (hm *HashMap[K, V]) Find(key K) Iterator[K, V] {
	pos := hm.find(key)
	if pos < 0 {
		return hm.End()
	}

	return Iterator[K, V]{t: &hm.table, pos: pos, gen: hm.gen}
}

// Inserts the pair unless the key is already present; an existing
// entry's value is never overwritten. Returns an iterator at the new
// or existing entry.
func (hm *HashMap[K, V]) Insert(key K, value V) Iterator[K, V] {
	pos, _ := hm.insert(key, value)

	return Iterator[K, V]{t: &hm.table, pos: pos, gen: hm.gen}
}

// Removes the key's entry and reports whether one was removed.
func (hm *HashMap[K, V]) Erase(key K) bool {
	return hm.erase(key)
}

// Drops every entry and resets capacity to its initial value.
func (hm *HashMap[K, V]) Clear() {
	hm.reset()
}

// Number of entries.
func (hm *HashMap[K, V]) Len() int {
	return len(hm.entries)
}

func (hm *HashMap[K, V]) Empty() bool {
	return len(hm.entries) == 0
}

// Ref returns a pointer to the key's value, inserting a zero value
// first if the key is absent. The pointer stays valid until the next
// operation that moves entries.
func (hm *HashMap[K, V]) Ref(key K) *V {
	var zero V
	pos, _ := hm.insert(key, zero)

	return &hm.entries[pos].Value
}

// At returns the key's value, or ErrKeyNotFound if there is no entry.
func (hm *HashMap[K, V]) At(key K) (V, error) {
	if pos := hm.find(key); pos >= 0 {
		return hm.entries[pos].Value, nil
	}

	var zero V
	return zero, ErrKeyNotFound
}

// HashFunc returns the configured hash function.
func (hm *HashMap[K, V]) HashFunc() HashFunc[K] {
	return hm.hashFunc
}
