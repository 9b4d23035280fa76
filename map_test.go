package automaton

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	part1 int
	part2 string
}

func (k testKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k testKey) Equals(other Hashable) bool {
	o, ok := other.(testKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

type anotherKey int

func (k anotherKey) Hash() uint64 {
	return uint64(k)
}

func (k anotherKey) Equals(other Hashable) bool {
	o, ok := other.(anotherKey)
	return ok && k == o
}

func TestHashMapBasic(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(testKey{2, "b"})
		assert.False(t, exists)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})
}

func TestHashCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(16))

	key1 := testKey{1, "a"}  // 2
	key2 := testKey{0, "bb"} // 2
	key3 := testKey{2, "a"}  // 3

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")
	hm.Set(key3, "value3")

	assert.Equal(t, 3, hm.Size())

	t.Run("GetCollisionKeys", func(t *testing.T) {
		val, exists := hm.Get(key1)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		val, exists = hm.Get(key2)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
	})

	t.Run("DistinctKeysSameBucket", func(t *testing.T) {
		_, exists := hm.Get(testKey{2, ""})
		assert.False(t, exists)
		val, exists := hm.Get(key3)
		assert.True(t, exists)
		assert.Equal(t, "value3", val)
	})
}

func TestAutoResize(t *testing.T) {
	initialCap := 16
	hm := NewHashMap[int](WithCapacity(initialCap))

	// 16 * 0.75 = 12
	for i := 0; i < 13; i++ {
		hm.Set(testKey{i, ""}, i)
	}

	assert.Greater(t, len(hm.buckets), initialCap)

	for i := 0; i < 13; i++ {
		val, exists := hm.Get(testKey{i, ""})
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
}

func TestTypeSafety(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(8))

	key1 := testKey{1, "a"} // 2
	key2 := anotherKey(2)   // 2

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")

	val, exists := hm.Get(key1)
	assert.True(t, exists)
	assert.Equal(t, "value1", val)

	val, exists = hm.Get(key2)
	assert.True(t, exists)
	assert.Equal(t, "value2", val)
}

func TestHashMapKey(t *testing.T) {
	hm := NewHashMap[int]()

	first := freeze(bitset.New(4).Set(1).Set(3))
	hm.Set(first, 1)

	// equal set built the other way round
	second := freeze(bitset.New(4).Set(3).Set(1))
	key, ok := hm.Key(second)
	require.True(t, ok)
	assert.Same(t, first, key)

	_, ok = hm.Key(freeze(bitset.New(4).Set(1)))
	assert.False(t, ok)
}

func TestHashMapIterator(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(2))
	for i := 0; i < 10; i++ {
		hm.Set(anotherKey(i), i*i)
	}

	got := make(map[anotherKey]int)
	for k, v := range hm.Iterator() {
		got[k.(anotherKey)] = v
	}
	assert.Len(t, got, 10)
	assert.Equal(t, 81, got[9])

	count := 0
	for range hm.Iterator() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestEdgeCases(t *testing.T) {
	t.Run("NilKey", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		assert.Panics(t, func() {
			hm.Set(nil, "value")
		})
	})

	t.Run("ZeroCapacity", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(0))
		assert.Equal(t, 1, len(hm.buckets))
	})

	t.Run("DuplicateInsert", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "v1")
		hm.Set(key, "v2")
		assert.Equal(t, 1, hm.Size())
	})
}
