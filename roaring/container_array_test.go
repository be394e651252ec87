package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrInsertRemoveContains(t *testing.T) {
	c := newArrayContainer()

	assert.True(t, c.insert(5))
	assert.False(t, c.insert(5))
	assert.True(t, c.contains(5))
	assert.False(t, c.contains(6))

	assert.True(t, c.insert(1))
	assert.True(t, c.insert(9))
	assert.Equal(t, []uint16{1, 5, 9}, c.Data)

	assert.True(t, c.remove(5))
	assert.False(t, c.remove(5))
	assert.Equal(t, []uint16{1, 9}, c.Data)
}

// TestArrConvertsToBitmapAtThreshold: every even value in [0, 8190] is
// sparse enough (not run-compressible) that crossing the threshold
// lands on Bitmap, not Run; removing a value demotes back to Array.
func TestArrConvertsToBitmapAtThreshold(t *testing.T) {
	c := newArrayContainer()
	for i := 0; i <= 8188; i += 2 {
		c.insert(uint16(i))
	}
	assert.Equal(t, typeArray, c.Type)
	assert.Equal(t, arrayToBitmapThreshold-1, c.cardinality())

	c.insert(8190)
	assert.Equal(t, typeBitmap, c.Type)
	assert.Equal(t, arrayToBitmapThreshold, c.cardinality())
	for i := 0; i <= 8190; i += 2 {
		assert.True(t, c.contains(uint16(i)))
	}

	assert.True(t, c.remove(0))
	assert.Equal(t, typeArray, c.Type)
}

// TestArrConvertsToRunWhenHighlyCompressible shows the automatic
// conversion decision at the threshold picking Run over Bitmap when the
// array is a single dense run (run_bytes << bitmap_bytes).
func TestArrConvertsToRunWhenHighlyCompressible(t *testing.T) {
	c := newArrayContainer()
	for i := 0; i < arrayToBitmapThreshold; i++ {
		c.insert(uint16(i))
	}
	assert.Equal(t, typeRun, c.Type)
	assert.Equal(t, arrayToBitmapThreshold, c.cardinality())
	assert.Equal(t, []uint16{0, arrayToBitmapThreshold - 1}, c.Data)
}

// TestOptimizeRecoversRunFromArray exercises optimize()'s Array->Run
// transition for a small, highly compressible array that never crosses
// the automatic-conversion threshold on its own.
func TestOptimizeRecoversRunFromArray(t *testing.T) {
	c := newArrayContainer()
	for i := uint16(0); i < 20; i++ {
		c.insert(i)
	}
	assert.Equal(t, typeArray, c.Type)

	c.optimize()
	assert.Equal(t, typeRun, c.Type)
	assert.Equal(t, 20, c.cardinality())
	assert.Equal(t, []uint16{0, 19}, c.Data)
}

func TestArrSetAlgebra(t *testing.T) {
	a := []uint16{1, 2, 3, 7}
	b := []uint16{2, 3, 5}

	assert.Equal(t, []uint16{1, 2, 3, 5, 7}, arrUnion(a, b))
	assert.Equal(t, []uint16{2, 3}, arrIntersection(a, b))
	assert.Equal(t, []uint16{1, 7}, arrDifference(a, b))
	assert.Equal(t, []uint16{1, 5, 7}, arrSymmetricDifference(a, b))
}
