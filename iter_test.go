package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Walk(t *testing.T) {
	hm := New[int, int]()

	for i := range 10 {
		hm.Insert(i, i*10)
	}

	seen := map[int]int{}
	for it := hm.Begin(); it != hm.End(); it = it.Next() {
		require.True(t, it.Ok())

		_, dup := seen[it.Key()]
		require.False(t, dup, "key %d yielded twice", it.Key())
		seen[it.Key()] = it.Value()
	}

	require.Len(t, seen, hm.Len())
	for i := range 10 {
		assert.Equal(t, i*10, seen[i])
	}
}

func TestIterator_Empty(t *testing.T) {
	hm := New[int, int]()

	assert.Equal(t, hm.Begin(), hm.End())
	assert.False(t, hm.Begin().Ok())
}

func TestIterator_SetValue(t *testing.T) {
	hm := New[string, int]()

	hm.Insert("foo", 1)

	it := hm.Find("foo")
	it.SetValue(42)

	v, ok := hm.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestIterator_DerefEnd(t *testing.T) {
	hm := New[string, int]()

	hm.Insert("foo", 1)

	end := hm.End()

	require.Panics(t, func() { end.Key() })
	require.Panics(t, func() { end.Value() })
	require.Panics(t, func() { end.SetValue(0) })
}

func TestIterator_InvalidatedByErase(t *testing.T) {
	hm := New[int, int]()

	for i := range 5 {
		hm.Insert(i, i)
	}

	it := hm.Begin()
	require.True(t, it.Ok())

	hm.Erase(3)

	require.Panics(t, func() { it.Ok() })
	require.Panics(t, func() { it.Key() })
	require.Panics(t, func() { it.Next() })
}

func TestIterator_InvalidatedByClear(t *testing.T) {
	hm := New[int, int]()

	hm.Insert(1, 1)
	it := hm.Find(1)

	hm.Clear()

	require.Panics(t, func() { it.Value() })
}

func TestIterator_SurvivesPlainInsert(t *testing.T) {
	hm := New[int, int]()

	for i := range 4 {
		hm.Insert(i, i)
	}

	// Capacity is 7 here, so the next few inserts append without a
	// rebuild and existing iterators stay usable.
	it := hm.Begin()

	hm.Insert(4, 4)

	require.True(t, it.Ok())
	assert.Equal(t, 0, it.Key())

	// Filling up to capacity forces the next insert to rebuild, which
	// does invalidate.
	hm.Insert(5, 5)
	hm.Insert(6, 6)
	hm.Insert(7, 7)

	require.Panics(t, func() { it.Ok() })
}

func TestConstIterator_Walk(t *testing.T) {
	hm := New[int, int]()

	for i := range 5 {
		hm.Insert(i, i)
	}

	count := 0
	for it := hm.CBegin(); it != hm.CEnd(); it = it.Next() {
		require.True(t, it.Ok())
		assert.Equal(t, it.Key(), it.Value())
		count++
	}

	assert.Equal(t, 5, count)
}

func TestHashMap_All(t *testing.T) {
	hm := New[string, int]()

	want := map[string]int{"one": 1, "two": 2, "three": 3}
	for k, v := range want {
		hm.Insert(k, v)
	}

	seen := map[string]int{}
	for k, v := range hm.All() {
		seen[k] = v
	}

	assert.Equal(t, want, seen)
}

func TestHashMap_All_EarlyExit(t *testing.T) {
	hm := New[int, int]()

	for i := range 10 {
		hm.Insert(i, i)
	}

	count := 0
	for range hm.All() {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestHashMap_All_MutationPanics(t *testing.T) {
	hm := New[int, int]()

	for i := range 10 {
		hm.Insert(i, i)
	}

	require.Panics(t, func() {
		for k := range hm.All() {
			hm.Erase(k)
		}
	})
}

func TestHashMap_KeysValues(t *testing.T) {
	hm := New[int, int]()

	for i := range 5 {
		hm.Insert(i, i*100)
	}

	keys := map[int]bool{}
	for k := range hm.Keys() {
		keys[k] = true
	}
	require.Len(t, keys, 5)

	values := map[int]bool{}
	for v := range hm.Values() {
		values[v] = true
	}
	require.Len(t, values, 5)
	assert.True(t, values[400])
}
