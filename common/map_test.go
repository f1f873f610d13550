package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMergeStrict(t *testing.T) {
	a := NewMap[string, int]()
	a.Add("x", 1)
	b := NewMap[string, int]()
	b.Add("y", 2)

	require.NoError(t, a.MergeStrict(b))
	assert.Equal(t, 2, a["y"])

	c := NewMap[string, int]()
	c.Add("x", 3)
	assert.Error(t, a.MergeStrict(c))
}

func TestOrderedMap(t *testing.T) {
	t.Run("PreservesInsertionOrder", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		m.Set("c", 1)
		m.Set("a", 2)
		m.Set("b", 3)

		assert.Equal(t, []string{"c", "a", "b"}, m.Keys())

		var seen []string
		m.Iter(func(k string, v int) {
			seen = append(seen, k)
		})
		assert.Equal(t, []string{"c", "a", "b"}, seen)
	})

	t.Run("OverwriteKeepsPosition", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("a", 10)

		assert.Equal(t, []string{"a", "b"}, m.Keys())
		v, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, 10, v)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("GetMissing", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		_, ok := m.Get("nope")
		assert.False(t, ok)
		assert.False(t, m.Contains("nope"))
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		m := NewOrderedMap[string, int]()
		m.Set("a", 1)

		clone := m.Clone()
		clone.Set("b", 2)
		clone.Set("a", 10)

		assert.Equal(t, []string{"a"}, m.Keys())
		v, _ := m.Get("a")
		assert.Equal(t, 1, v)
		assert.Equal(t, []string{"a", "b"}, clone.Keys())
	})
}
