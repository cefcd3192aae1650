package hashmap

import "iter"

// Iterator walks live entries in storage order: insertion order until
// a resize rebuild or an erase reshuffles positions. It carries the
// generation it was issued at; once the table moves or drops entries
// the iterator is stale and every use panics instead of silently
// reading relocated data. Inserts that don't trigger a resize keep
// existing iterators valid.
//
// Iterators compare with ==, so the usual loop is
//
//	for it := m.Begin(); it != m.End(); it = it.Next() { ... }
type Iterator[K comparable, V any] struct {
	t   *table[K, V]
	pos int
	gen uint64
}

// Reports whether the iterator points at a live entry.
// False for End().
func (it Iterator[K, V]) Ok() bool {
	it.check()

	return it.pos < len(it.t.entries)
}

// Next returns the iterator advanced by one position.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.check()
	it.pos++

	return it
}

// Key of the current entry. Keys are immutable once stored; there is
// no mutable accessor on either iterator variant.
func (it Iterator[K, V]) Key() K {
	it.deref()

	return it.t.entries[it.pos].Key
}

// Value of the current entry.
func (it Iterator[K, V]) Value() V {
	it.deref()

	return it.t.entries[it.pos].Value
}

// SetValue overwrites the current entry's value in place.
func (it Iterator[K, V]) SetValue(value V) {
	it.deref()

	it.t.entries[it.pos].Value = value
}

func (it Iterator[K, V]) check() {
	if it.t == nil || it.gen != it.t.gen {
		panic("hashmap: use of iterator invalidated by map mutation")
	}
}

func (it Iterator[K, V]) deref() {
	it.check()

	if it.pos >= len(it.t.entries) {
		panic("hashmap: dereference of end iterator")
	}
}

// ConstIterator is the read-only iterator variant: same position and
// staleness semantics, no SetValue.
type ConstIterator[K comparable, V any] struct {
	it Iterator[K, V]
}

func (ci ConstIterator[K, V]) Ok() bool {
	return ci.it.Ok()
}

func (ci ConstIterator[K, V]) Next() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: ci.it.Next()}
}

func (ci ConstIterator[K, V]) Key() K {
	return ci.it.Key()
}

func (ci ConstIterator[K, V]) Value() V {
	return ci.it.Value()
}

// Begin returns an iterator at the first entry in storage order.
func (hm *HashMap[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{t: &hm.table, pos: 0, gen: hm.gen}
}

// End returns the past-the-end marker.
func (hm *HashMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{t: &hm.table, pos: len(hm.entries), gen: hm.gen}
}

// CBegin returns a read-only iterator at the first entry.
func (hm *HashMap[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: hm.Begin()}
}

// CEnd returns the read-only past-the-end marker.
func (hm *HashMap[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: hm.End()}
}

// All returns a key/value sequence over the map in storage order.
// Mutating the map mid-iteration panics at the next step, same as a
// stale Iterator would.
func (hm *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := hm.gen
		for pos := 0; pos < len(hm.entries); pos++ {
			if hm.gen != gen {
				panic("hashmap: map mutated during iteration")
			}

			if !yield(hm.entries[pos].Key, hm.entries[pos].Value) {
				return
			}
		}
	}
}

// Keys returns a sequence of keys in storage order.
func (hm *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		gen := hm.gen
		for pos := 0; pos < len(hm.entries); pos++ {
			if hm.gen != gen {
				panic("hashmap: map mutated during iteration")
			}

			if !yield(hm.entries[pos].Key) {
				return
			}
		}
	}
}

// Values returns a sequence of values in storage order.
func (hm *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		gen := hm.gen
		for pos := 0; pos < len(hm.entries); pos++ {
			if hm.gen != gen {
				panic("hashmap: map mutated during iteration")
			}

			if !yield(hm.entries[pos].Value) {
				return
			}
		}
	}
}
