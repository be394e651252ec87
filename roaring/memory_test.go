package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryUsageDetailedTotalsAgree(t *testing.T) {
	rb := New()
	for v := uint32(0); v < 10; v++ {
		rb.Insert(v)
	}
	for v := uint32(0); v <= 8190; v += 2 {
		rb.Insert((1 << 16) | v)
	}
	rb.ExtendConsecutive(2<<16, 2<<16+999)

	detail := rb.MemoryUsageDetailed()
	assert.Equal(t, detail.Stack+detail.Heap, detail.Total)
	assert.Equal(t, rb.MemoryUsage(), detail.Total)
	assert.Len(t, detail.PerContainer, 3)
}

func TestContainerStatsReflectRepresentation(t *testing.T) {
	rb := New()
	rb.Insert(1) // array
	for v := uint32(0); v <= 8190; v += 2 {
		rb.Insert((1 << 16) | v) // bitmap
	}
	rb.ExtendConsecutive(2<<16, 2<<16+999) // run

	stats := rb.ContainerStats()
	assert.Len(t, stats, 3)
	assert.Equal(t, KindArray, stats[0].Kind)
	assert.Equal(t, KindBitmap, stats[1].Kind)
	assert.Equal(t, KindRun, stats[2].Kind)

	assert.Equal(t, uint64(bitmapWords)*8, stats[1].Bytes)
	assert.Equal(t, uint64(4), stats[2].Bytes) // one run, 4 bytes
}

func TestContainerTypeMissingKey(t *testing.T) {
	rb := New()
	rb.Insert(1)
	_, ok := rb.ContainerType(5)
	assert.False(t, ok)
}
