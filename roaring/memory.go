package roaring

// ContainerKind mirrors ctype for callers outside the package; it is
// exposed purely for test and debug introspection.
type ContainerKind byte

const (
	KindArray ContainerKind = iota
	KindBitmap
	KindRun
)

// ContainerStat reports the representation and memory footprint of a
// single container, keyed by its high 16 bits.
type ContainerStat struct {
	Key         uint16
	Kind        ContainerKind
	Cardinality int
	Bytes       uint64
}

// ContainerType reports which representation currently backs the
// container addressing key, if one exists. Test/debug-only: production
// code should never branch on a container's representation.
func (rb *Bitmap) ContainerType(key uint16) (ContainerKind, bool) {
	idx, ok := find16(rb.index, key)
	if !ok {
		return 0, false
	}
	return ContainerKind(rb.containers[idx].Type), true
}

// ContainerStats returns a per-container breakdown in key order.
// Test/debug-only: exposed so callers (and tests) can decide when
// Optimize is worth calling, per the memory_usage_detailed contract.
func (rb *Bitmap) ContainerStats() []ContainerStat {
	stats := make([]ContainerStat, len(rb.containers))
	for i := range rb.containers {
		c := &rb.containers[i]
		stats[i] = ContainerStat{
			Key:         rb.index[i],
			Kind:        ContainerKind(c.Type),
			Cardinality: c.cardinality(),
			Bytes:       containerBytes(c),
		}
	}
	return stats
}

// MemoryUsageDetailed breaks down a bitmap's memory footprint.
type MemoryUsageDetailed struct {
	Total        uint64
	Stack        uint64
	Heap         uint64
	PerContainer []ContainerStat
}

// containerStructBytes is the size of the container struct's own fixed
// fields (the Type tag, the cached Size, and the header words of the
// Data slice and Bits slice), independent of what either points at.
const containerStructBytes = 1 + 4 + 24 + 24

// containerBytes reports the bytes a single container's chosen
// representation occupies, using only sizes intrinsic to that
// representation: 2 bytes per array value, a fixed 8 KiB per bitmap,
// 4 bytes per run.
func containerBytes(c *container) uint64 {
	switch c.Type {
	case typeArray:
		return uint64(len(c.Data)) * 2
	case typeBitmap:
		return uint64(bitmapWords) * 8
	case typeRun:
		return uint64(len(c.Data)/2) * 4
	}
	return 0
}

// MemoryUsage returns the total number of bytes the bitmap occupies:
// the stack-resident Bitmap header plus every container's heap-resident
// payload. It is part of the contract users rely on to decide when to
// call Optimize.
func (rb *Bitmap) MemoryUsage() uint64 {
	d := rb.MemoryUsageDetailed()
	return d.Total
}

// MemoryUsageDetailed reports stack vs. heap accounting and a
// per-container breakdown. Total always equals Stack + Heap.
func (rb *Bitmap) MemoryUsageDetailed() MemoryUsageDetailed {
	const bitmapHeaderBytes = 24 + 24 // index and containers slice headers

	stats := rb.ContainerStats()

	var heap uint64
	heap += uint64(len(rb.index)) * 2
	heap += uint64(len(rb.containers)) * containerStructBytes
	for _, s := range stats {
		heap += s.Bytes
	}

	return MemoryUsageDetailed{
		Total:        bitmapHeaderBytes + heap,
		Stack:        bitmapHeaderBytes,
		Heap:         heap,
		PerContainer: stats,
	}
}
