package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet_InsertionOrderPreserved(t *testing.T) {
	s := NewOrderedSet[string]()
	for _, v := range []string{"c", "a", "b", "a"} {
		s.Add(v)
	}
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"c", "a", "b"}, s.Slice())
}

func TestOrderedSet_RemoveSkipsSlot(t *testing.T) {
	s := NewOrderedSet[int]()
	s.Add(1)
	s.Add(2)
	s.Add(3)
	s.Remove(2)

	assert.False(t, s.Has(2))
	assert.Equal(t, []int{1, 3}, s.Slice())
	assert.Equal(t, 2, s.Len())
}

func TestOrderedSet_RangeEarlyStop(t *testing.T) {
	s := NewOrderedSet[int]()
	for i := 0; i < 5; i++ {
		s.Add(i)
	}
	var seen []int
	s.Range(func(v int) bool {
		seen = append(seen, v)
		return v < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}
