package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendConsecutiveWithinSingleKey(t *testing.T) {
	rb := New()
	rb.ExtendConsecutive(10, 20)

	assert.Equal(t, uint64(11), rb.Len())
	for v := uint32(10); v <= 20; v++ {
		assert.True(t, rb.Contains(v))
	}
	assert.False(t, rb.Contains(9))
	assert.False(t, rb.Contains(21))
}

func TestExtendConsecutiveAcrossKeys(t *testing.T) {
	rb := New()
	lo := uint32(65530)
	hi := uint32(65540)
	rb.ExtendConsecutive(lo, hi)

	assert.Equal(t, uint64(hi-lo+1), rb.Len())
	for v := lo; v <= hi; v++ {
		assert.True(t, rb.Contains(v))
	}
}

func TestExtendConsecutiveEmptyRangeIsNoOp(t *testing.T) {
	rb := New()
	rb.ExtendConsecutive(20, 10) // lo > hi
	assert.True(t, rb.IsEmpty())
}

func TestExtendConsecutiveMergesIntoExistingContainer(t *testing.T) {
	rb := New()
	rb.Insert(5)
	rb.Insert(15)

	rb.ExtendConsecutive(0, 20)
	assert.Equal(t, uint64(21), rb.Len())
	for v := uint32(0); v <= 20; v++ {
		assert.True(t, rb.Contains(v))
	}
}

func TestRemoveRangeDropsEmptyContainers(t *testing.T) {
	rb := New()
	rb.Insert(5)
	rb.Insert((1 << 16) | 5)

	rb.RemoveRange(0, 0xFFFF)

	assert.False(t, rb.Contains(5))
	assert.True(t, rb.Contains((1<<16)|5))
	_, ok := rb.ContainerType(0)
	assert.False(t, ok, "container emptied by RemoveRange must be dropped")
}

func TestRemoveRangePartial(t *testing.T) {
	rb := New()
	rb.ExtendConsecutive(0, 100)
	rb.RemoveRange(10, 20)

	assert.Equal(t, uint64(90), rb.Len())
	for v := uint32(10); v <= 20; v++ {
		assert.False(t, rb.Contains(v))
	}
	assert.True(t, rb.Contains(9))
	assert.True(t, rb.Contains(21))
}

func TestExtendSparseAndRemoveSparse(t *testing.T) {
	rb := New()
	vals := []uint32{3, 1, 4, 1, 5, 9, 2, 6}
	rb.ExtendSparse(vals)

	for _, v := range vals {
		assert.True(t, rb.Contains(v))
	}
	assert.Equal(t, uint64(7), rb.Len()) // duplicates collapse

	rb.RemoveSparse([]uint32{1, 4})
	assert.False(t, rb.Contains(1))
	assert.False(t, rb.Contains(4))
	assert.True(t, rb.Contains(9))
}

func TestExtendDenseIsSugarOverExtendSparse(t *testing.T) {
	rb := New()
	rb.ExtendDense([]uint32{10, 11, 12})
	assert.Equal(t, uint64(3), rb.Len())
	assert.True(t, rb.Contains(10))
	assert.True(t, rb.Contains(11))
	assert.True(t, rb.Contains(12))
}
