package hashmap

import "hash/maphash"

const (
	// How many times the capacity changes on a grow or shrink rebuild.
	defaultGrowthFactor = 2

	// Minimum capacity-to-count ratio that triggers a shrink rebuild.
	defaultMinLoadFactor = 4
)

// Pair is a single key/value association.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// table is the separate-chaining engine shared by HashMap and HashSet.
//
// Entries live densely packed in a single slice, append- and
// pop-at-end only; positions 0..len-1 never have holes. On top sits
// the bucket index: capacity chains of storage positions, where an
// entry's chain is hash(key) mod capacity. Every chain position is
// chained exactly once, so the index is a permutation-by-bucket of
// live positions.
//
// Capacity starts at zero and lookups short-circuit on an empty
// index, so bucket math never divides by zero.
type table[K comparable, V any] struct {
	entries []Pair[K, V]
	buckets [][]int

	capacity int
	initial  int

	growthFactor  int
	minLoadFactor int

	// Bumped whenever entries move or die (erase, clear, rebuild).
	// Iterators snapshot it and refuse to work once it changes.
	gen uint64

	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Pre-size the bucket index. This is also the capacity Clear resets to.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.initial = max(capacity, 0)
	}
}

// Override the grow/shrink capacity multiplier.
func WithGrowthFactor[K comparable, V any](factor int) Option[K, V] {
	return func(t *table[K, V]) {
		t.growthFactor = factor
	}
}

// Override the shrink threshold: a shrink rebuild runs once
// count*factor <= capacity.
func WithMinLoadFactor[K comparable, V any](factor int) Option[K, V] {
	return func(t *table[K, V]) {
		t.minLoadFactor = factor
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.growthFactor = defaultGrowthFactor
	t.minLoadFactor = defaultMinLoadFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.growthFactor < 2 {
		t.growthFactor = defaultGrowthFactor
	}

	// A shrink to capacity/growth must leave count strictly below the
	// new capacity, or it would immediately re-trigger a grow.
	if t.minLoadFactor < t.growthFactor*t.growthFactor {
		t.minLoadFactor = t.growthFactor * t.growthFactor
	}

	t.reset()
}

// reset drops every entry and restores the initial capacity.
func (t *table[K, V]) reset() {
	t.entries = nil
	t.capacity = t.initial
	t.buckets = make([][]int, t.capacity)
	t.gen++
}

// Requires capacity > 0.
func (t *table[K, V]) bucketOf(key K) int {
	return int(t.hashFunc(key) % uint64(t.capacity))
}

// find returns the storage position of the key's entry, or -1.
func (t *table[K, V]) find(key K) int {
	if t.capacity == 0 {
		return -1
	}

	for _, pos := range t.buckets[t.bucketOf(key)] {
		if t.entries[pos].Key == key {
			return pos
		}
	}

	return -1
}

// insert places the pair unless the key is already present; an
// existing entry's value is left untouched. Returns the entry's
// storage position and whether a new entry was created.
func (t *table[K, V]) insert(key K, value V) (int, bool) {
	if pos := t.find(key); pos >= 0 {
		return pos, false
	}

	// Grow before placing, so the new entry is chained under the
	// final capacity.
	if len(t.entries) >= t.capacity {
		t.rebuild(t.capacity*t.growthFactor + 1)
	}

	pos := len(t.entries)
	t.entries = append(t.entries, Pair[K, V]{Key: key, Value: value})

	b := t.bucketOf(key)
	t.buckets[b] = append(t.buckets[b], pos)

	return pos, true
}

// erase removes the key's entry, keeping storage dense by moving the
// last entry into the vacated position. No-op if the key is absent.
func (t *table[K, V]) erase(key K) bool {
	if t.capacity == 0 {
		return false
	}

	b := t.bucketOf(key)

	at := -1
	for i, pos := range t.buckets[b] {
		if t.entries[pos].Key == key {
			at = i
			break
		}
	}
	if at < 0 {
		return false
	}

	pos := t.buckets[b][at]
	last := len(t.entries) - 1

	if pos != last {
		// Retarget the chain reference to the last slot by position,
		// not by key: the last entry's bucket may coincide with b or
		// not, and only the position identifies the right link.
		lb := t.bucketOf(t.entries[last].Key)
		for i, p := range t.buckets[lb] {
			if p == last {
				t.buckets[lb][i] = pos
				break
			}
		}

		t.entries[pos] = t.entries[last]
	}

	t.buckets[b] = append(t.buckets[b][:at], t.buckets[b][at+1:]...)

	t.entries[last] = Pair[K, V]{}
	t.entries = t.entries[:last]
	t.gen++

	if len(t.entries)*t.minLoadFactor <= t.capacity {
		t.rebuild(t.capacity / t.growthFactor)
	}

	return true
}

// rebuild re-chains every live entry under the given capacity. Entry
// storage keeps its order and the bucket index is allocated at its
// final size up front, so a rebuild never cascades into another one.
func (t *table[K, V]) rebuild(capacity int) {
	t.capacity = capacity
	t.buckets = make([][]int, capacity)
	t.gen++

	for pos := range t.entries {
		b := t.bucketOf(t.entries[pos].Key)
		t.buckets[b] = append(t.buckets[b], pos)
	}
}
