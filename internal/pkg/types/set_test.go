package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewSet[int]()
		assert.Empty(t, set)
	})

	t.Run("duplicate elements collapse", func(t *testing.T) {
		set := NewSet(1, 2, 2, 3, 3, 3)
		assert.Len(t, set, 3)
		for i := 1; i <= 3; i++ {
			assert.Contains(t, set, i)
		}
	})
}

func TestSet_Insert(t *testing.T) {
	t.Run("first insert reports true", func(t *testing.T) {
		set := NewSet[string]()
		assert.True(t, set.Insert("abc"))
		assert.True(t, set.Has("abc"))
	})

	t.Run("repeated insert reports false and keeps one entry", func(t *testing.T) {
		set := NewSet("abc")
		assert.False(t, set.Insert("abc"))
		assert.Len(t, set, 1)
	})
}

func TestSet_Delete(t *testing.T) {
	set := NewSet(1, 2, 3)
	set.Delete(2, 42)

	assert.Len(t, set, 2)
	assert.False(t, set.Has(2))
	assert.True(t, set.Has(1))
}

func TestSet_ToSlice(t *testing.T) {
	set := NewSet(3, 1, 2)
	assert.ElementsMatch(t, []int{1, 2, 3}, set.ToSlice())
}

func TestSorted(t *testing.T) {
	set := NewSet[uint64](100, 98, 99)
	assert.Equal(t, []uint64{98, 99, 100}, Sorted(set))
}
