package roaring

// newArr builds an ArrayContainer holding the given 16-bit values.
func newArr(vals ...uint16) *container {
	c := newArrayContainer()
	for _, v := range vals {
		c.insert(v)
	}
	return &c
}

// newBmp builds a BitmapContainer holding the given 16-bit values.
func newBmp(vals ...uint16) *container {
	bits := borrowBitmap()
	for _, v := range vals {
		bits.Set(uint32(v))
	}
	c := &container{Type: typeBitmap, Bits: bits, Size: uint32(len(vals))}
	return c
}

// newRun builds a RunContainer holding the given 16-bit values, which
// must already be supplied in a run-friendly (sorted) order.
func newRun(vals ...uint16) *container {
	c := newArr(vals...)
	c.Data = arrToRunData(c.Data, countRunsInArray(c.Data))
	c.Type = typeRun
	return c
}

// valuesOf drains a container's values through its own insert-order
// representation into a sorted plain slice, for assertion convenience.
func valuesOf(c *container) []uint16 {
	out := []uint16{}
	switch c.Type {
	case typeArray:
		out = append(out, c.Data...)
	case typeBitmap:
		c.Bits.Range(func(v uint32) { out = append(out, uint16(v)) })
	case typeRun:
		out = append(out, runToArrayData(c.Data, int(c.Size))...)
	}
	return out
}
